package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AgroHub-Uni-RV/Ypetec/database"
	"github.com/AgroHub-Uni-RV/Ypetec/dto"
	"github.com/AgroHub-Uni-RV/Ypetec/mappers"
	"github.com/AgroHub-Uni-RV/Ypetec/models"
	"github.com/AgroHub-Uni-RV/Ypetec/services"
	"github.com/AgroHub-Uni-RV/Ypetec/utils"
)

// CreateProject creates a project in PRE_SUBMISSAO with its team members,
// owned by the authenticated student.
func CreateProject(c *gin.Context) {
	var req dto.CreateProjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, 1001, "invalid request: "+err.Error())
		return
	}

	actor := actorFrom(c)
	project := models.Project{
		OwnerID: actor.ID,
		Title:   req.Title,
		Summary: req.Summary,
		Area:    req.Area,
		Status:  models.ProjectStatusPreSubmission,
	}
	for _, m := range req.Team {
		if m.MemberName == "" || m.RoleInTeam == "" {
			continue
		}
		project.Members = append(project.Members, models.TeamMember{
			Name:       m.MemberName,
			Email:      m.MemberEmail,
			RoleInTeam: m.RoleInTeam,
		})
	}

	if err := database.DB.Create(&project).Error; err != nil {
		failService(c, err)
		return
	}

	services.RecordAuditBestEffort(database.DB, actor, models.AuditCreate,
		"Projeto", project.ID, auditMeta(c))

	utils.Created(c, "project created", mappers.ToProjectResp(&project))
}

// GetMyProjects lists the student's projects with the latest submission and
// evaluation flattened in.
func GetMyProjects(c *gin.Context) {
	actor := actorFrom(c)

	var projects []models.Project
	if err := database.DB.
		Where("owner_id = ?", actor.ID).
		Preload("Submissions.Call").
		Preload("Submissions.Evaluations").
		Order("created_at desc").
		Find(&projects).Error; err != nil {
		failService(c, err)
		return
	}

	items := make([]dto.MyProjectItem, 0, len(projects))
	for i := range projects {
		items = append(items, mappers.ToMyProjectItem(&projects[i]))
	}
	utils.Success(c, "success", items)
}

// GetMyIncubatedProjects feeds the mentorship-request dropdown.
func GetMyIncubatedProjects(c *gin.Context) {
	actor := actorFrom(c)

	var projects []models.Project
	if err := database.DB.
		Where("owner_id = ? AND status = ?", actor.ID, models.ProjectStatusIncubated).
		Order("title").
		Find(&projects).Error; err != nil {
		failService(c, err)
		return
	}

	items := make([]gin.H, 0, len(projects))
	for _, p := range projects {
		items = append(items, gin.H{"id": p.ID, "title": p.Title})
	}
	utils.Success(c, "success", items)
}

func GetProjectDetail(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var project models.Project
	if err := database.DB.Preload("Members").Preload("Owner").
		First(&project, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, 4004, "project not found")
		return
	}

	actor := actorFrom(c)
	if !services.OwnerOrAdmin(actor, &project) {
		utils.Error(c, http.StatusForbidden, 4030, "insufficient permissions")
		return
	}

	utils.Success(c, "success", mappers.ToProjectResp(&project))
}

// DisengageProject is owner-only; see LifecycleService.
func DisengageProject(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := lifecycle().DisengageProject(id, actorFrom(c), auditMeta(c)); err != nil {
		failService(c, err)
		return
	}
	utils.Success(c, "project disengaged", nil)
}

// GetProjectReport is the admin overview: every project with its owner,
// submissions and evaluations.
func GetProjectReport(c *gin.Context) {
	var projects []models.Project
	if err := database.DB.
		Preload("Owner").
		Preload("Members").
		Preload("Submissions.Call").
		Preload("Submissions.Evaluations.Evaluator").
		Order("id desc").
		Find(&projects).Error; err != nil {
		failService(c, err)
		return
	}

	type reportRow struct {
		dto.ProjectResp
		Submissions []dto.SubmissionResp `json:"submissions"`
	}

	rows := make([]reportRow, 0, len(projects))
	for i := range projects {
		row := reportRow{ProjectResp: mappers.ToProjectResp(&projects[i])}
		for j := range projects[i].Submissions {
			row.Submissions = append(row.Submissions,
				mappers.ToSubmissionResp(&projects[i].Submissions[j]))
		}
		rows = append(rows, row)
	}
	utils.Success(c, "success", rows)
}

// CreateProgressReport lets the owner of an incubated project file a report.
func CreateProgressReport(c *gin.Context) {
	var req dto.CreateProgressReportReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, 1001, "invalid request: "+err.Error())
		return
	}

	var project models.Project
	if err := database.DB.First(&project, req.ProjectID).Error; err != nil {
		utils.Error(c, http.StatusNotFound, 4004, "project not found")
		return
	}

	actor := actorFrom(c)
	if !services.OwnsProject(actor, &project) {
		utils.Error(c, http.StatusForbidden, 4030, "you are not the owner of this project")
		return
	}
	if !project.IsIncubated() {
		utils.Error(c, http.StatusBadRequest, 4100, "only incubated projects can file progress reports")
		return
	}

	report := models.ProgressReport{
		ProjectID: req.ProjectID,
		Period:    models.ReportPeriod(req.Period),
		Content:   req.Content,
		AuthorID:  actor.ID,
	}
	if err := database.DB.Create(&report).Error; err != nil {
		failService(c, err)
		return
	}

	utils.Created(c, "report created", report)
}

// GetProgressReports lists reports for a project, owner or admin.
func GetProgressReports(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var project models.Project
	if err := database.DB.First(&project, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, 4004, "project not found")
		return
	}

	if !services.OwnerOrAdmin(actorFrom(c), &project) {
		utils.Error(c, http.StatusForbidden, 4030, "insufficient permissions")
		return
	}

	var reports []models.ProgressReport
	if err := database.DB.Where("project_id = ?", id).
		Preload("Author").
		Order("created_at desc").
		Find(&reports).Error; err != nil {
		failService(c, err)
		return
	}
	utils.Success(c, "success", reports)
}
