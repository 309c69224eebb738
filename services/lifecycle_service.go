package services

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/AgroHub-Uni-RV/Ypetec/logger"
	"github.com/AgroHub-Uni-RV/Ypetec/models"
)

// LifecycleService enforces the Project → Submission → Evaluation →
// Publication state machine. Every command runs as one transaction: either
// all of its entity updates and the audit row land, or none do.
type LifecycleService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewLifecycleService(db *gorm.DB) *LifecycleService {
	return &LifecycleService{db: db, now: time.Now}
}

func notFoundOr(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound(msg)
	}
	return err
}

// SubmitProject submits the actor's project to an open call. The unique
// (project, call) index backs the duplicate check, so a concurrent race
// yields exactly one submission and a Conflict for the loser.
func (s *LifecycleService) SubmitProject(projectID, callID uint64, actor Actor, meta AuditMeta) (*models.Submission, error) {
	var submission models.Submission

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var project models.Project
		if err := tx.First(&project, projectID).Error; err != nil {
			return notFoundOr(err, "project not found")
		}
		if !OwnsProject(actor, &project) {
			return Forbidden("you are not the owner of this project")
		}
		if !project.CanSubmit() {
			return InvalidState(fmt.Sprintf("project with status %q cannot be submitted", project.Status))
		}

		var call models.Call
		if err := tx.First(&call, callID).Error; err != nil {
			return notFoundOr(err, "call not found")
		}
		if !call.IsOpen(s.now()) {
			return InvalidState("call is not open for submissions")
		}

		var count int64
		if err := tx.Model(&models.Submission{}).
			Where("project_id = ? AND call_id = ?", projectID, callID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return Conflict("project already submitted to this call")
		}

		submission = models.Submission{
			ProjectID: projectID,
			CallID:    callID,
			Status:    models.SubmissionStatusSent,
		}
		if err := tx.Create(&submission).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return Conflict("project already submitted to this call")
			}
			return err
		}

		before := project
		project.Status = models.ProjectStatusSubmitted
		if err := tx.Model(&models.Project{}).Where("id = ?", project.ID).
			Update("status", models.ProjectStatusSubmitted).Error; err != nil {
			return err
		}

		return RecordAudit(tx, actor, models.AuditSubmit, "Submissao", submission.ID, &before, &project, meta)
	})
	if err != nil {
		return nil, err
	}

	logger.L.Info("project submitted",
		zap.Uint64("project_id", projectID),
		zap.Uint64("call_id", callID),
		zap.Uint64("submission_id", submission.ID))
	return &submission, nil
}

// RecordEvaluation stores an immutable evaluation and moves the submission
// and its project in lock-step, never one without the other.
func (s *LifecycleService) RecordEvaluation(submissionID uint64, result models.EvaluationResult, comments string, actor Actor, meta AuditMeta) (*models.Evaluation, error) {
	if !IsAdmin(actor) {
		return nil, Forbidden("only administrators can evaluate submissions")
	}

	subStatus, ok := SubmissionStatusForResult(result)
	if !ok {
		return nil, InvalidArgument(fmt.Sprintf("unrecognized evaluation result %q", result))
	}
	projStatus, _ := ProjectStatusForResult(result)

	var evaluation models.Evaluation

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var submission models.Submission
		if err := tx.First(&submission, submissionID).Error; err != nil {
			return notFoundOr(err, "submission not found")
		}
		var project models.Project
		if err := tx.First(&project, submission.ProjectID).Error; err != nil {
			return notFoundOr(err, "project not found")
		}
		before := struct {
			Submission models.Submission `json:"submission"`
			Project    models.Project    `json:"project"`
		}{submission, project}

		evaluation = models.Evaluation{
			SubmissionID: submissionID,
			EvaluatorID:  actor.ID,
			Result:       result,
			Comments:     comments,
		}
		if err := tx.Create(&evaluation).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Submission{}).Where("id = ?", submissionID).
			Update("status", subStatus).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Project{}).Where("id = ?", submission.ProjectID).
			Update("status", projStatus).Error; err != nil {
			return err
		}

		submission.Status = subStatus
		project.Status = projStatus
		after := struct {
			Submission models.Submission `json:"submission"`
			Project    models.Project    `json:"project"`
		}{submission, project}

		return RecordAudit(tx, actor, models.AuditEvaluate, "Avaliacao", evaluation.ID, &before, &after, meta)
	})
	if err != nil {
		return nil, err
	}

	logger.L.Info("submission evaluated",
		zap.Uint64("submission_id", submissionID),
		zap.String("result", string(result)))
	return &evaluation, nil
}

// PublishProject puts an approved project on the public showcase. An approved
// project becomes incubated; an already incubated one keeps its status.
func (s *LifecycleService) PublishProject(projectID uint64, logo, description string, actor Actor, meta AuditMeta) (*models.Publication, error) {
	if !IsAdmin(actor) {
		return nil, Forbidden("only administrators can publish projects")
	}

	var publication models.Publication

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var project models.Project
		if err := tx.First(&project, projectID).Error; err != nil {
			return notFoundOr(err, "project not found")
		}
		if !PublishableStatus(project.Status) {
			return InvalidState(fmt.Sprintf("project with status %q cannot be published", project.Status))
		}

		var count int64
		if err := tx.Model(&models.Publication{}).
			Where("project_id = ?", projectID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return Conflict("project already has a publication")
		}

		publication = models.Publication{
			ProjectID:     projectID,
			Logo:          logo,
			Description:   description,
			PublishedByID: actor.ID,
			Active:        true,
		}
		if err := tx.Create(&publication).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return Conflict("project already has a publication")
			}
			return err
		}

		before := project
		if project.Status == models.ProjectStatusApproved {
			project.Status = models.ProjectStatusIncubated
			if err := tx.Model(&models.Project{}).Where("id = ?", projectID).
				Update("status", models.ProjectStatusIncubated).Error; err != nil {
				return err
			}
		}

		return RecordAudit(tx, actor, models.AuditPublish, "Publicacao", publication.ID, &before, &project, meta)
	})
	if err != nil {
		return nil, err
	}

	logger.L.Info("project published",
		zap.Uint64("project_id", projectID),
		zap.Uint64("publication_id", publication.ID))
	return &publication, nil
}

// DisengageProject soft-deletes the actor's project, leaving it in the
// terminal DESLIGADO status.
func (s *LifecycleService) DisengageProject(projectID uint64, actor Actor, meta AuditMeta) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var project models.Project
		if err := tx.First(&project, projectID).Error; err != nil {
			return notFoundOr(err, "project not found")
		}
		if !OwnsProject(actor, &project) {
			return Forbidden("you are not the owner of this project")
		}
		if !project.CanDisengage() {
			return InvalidState(fmt.Sprintf("project with status %q cannot be disengaged", project.Status))
		}

		before := project
		project.Status = models.ProjectStatusDisengaged
		if err := tx.Model(&models.Project{}).Where("id = ?", projectID).
			Update("status", models.ProjectStatusDisengaged).Error; err != nil {
			return err
		}
		// Soft delete keeps the row with deleted_at set.
		if err := tx.Delete(&models.Project{}, projectID).Error; err != nil {
			return err
		}

		return RecordAudit(tx, actor, models.AuditDisengage, "Projeto", projectID, &before, &project, meta)
	})
	if err != nil {
		return err
	}

	logger.L.Info("project disengaged", zap.Uint64("project_id", projectID))
	return nil
}

// RequestMentorship opens a mentorship request for an incubated project. Only
// one pending request per project is allowed.
func (s *LifecycleService) RequestMentorship(projectID uint64, area, justification string, actor Actor, meta AuditMeta) (*models.MentorshipRequest, error) {
	var request models.MentorshipRequest

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var project models.Project
		if err := tx.First(&project, projectID).Error; err != nil {
			return notFoundOr(err, "project not found")
		}
		if !OwnsProject(actor, &project) {
			return Forbidden("you are not the owner of this project")
		}
		if !project.IsIncubated() {
			return InvalidState("only incubated projects can request mentorship")
		}

		var count int64
		if err := tx.Model(&models.MentorshipRequest{}).
			Where("project_id = ? AND status = ?", projectID, models.MentorshipStatusRequested).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return Conflict("project already has a pending mentorship request")
		}

		request = models.MentorshipRequest{
			ProjectID:     projectID,
			Area:          area,
			Justification: justification,
			Status:        models.MentorshipStatusRequested,
			RequesterID:   actor.ID,
		}
		if err := tx.Create(&request).Error; err != nil {
			return err
		}

		return RecordAudit(tx, actor, models.AuditCreate, "SolicitacaoMentoria", request.ID, nil, &request, meta)
	})
	if err != nil {
		return nil, err
	}

	logger.L.Info("mentorship requested",
		zap.Uint64("project_id", projectID),
		zap.Uint64("request_id", request.ID))
	return &request, nil
}

// UpdateMentorshipStatus moves a request to EM_ANDAMENTO, CONCLUIDA or NEGADA
// and optionally assigns a mentor.
func (s *LifecycleService) UpdateMentorshipStatus(requestID uint64, newStatus models.MentorshipStatus, mentorID *uint64, actor Actor, meta AuditMeta) (*models.MentorshipRequest, error) {
	if !IsAdmin(actor) {
		return nil, Forbidden("only administrators can update mentorship requests")
	}
	if !newStatus.ValidTransitionTarget() {
		return nil, InvalidArgument(fmt.Sprintf("unrecognized mentorship status %q", newStatus))
	}

	var request models.MentorshipRequest

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&request, requestID).Error; err != nil {
			return notFoundOr(err, "mentorship request not found")
		}

		before := request
		updates := map[string]interface{}{"status": newStatus}
		if mentorID != nil {
			if err := tx.First(&models.User{}, *mentorID).Error; err != nil {
				return notFoundOr(err, "mentor not found")
			}
			updates["mentor_id"] = *mentorID
		}
		if err := tx.Model(&models.MentorshipRequest{}).Where("id = ?", requestID).
			Updates(updates).Error; err != nil {
			return err
		}

		request.Status = newStatus
		if mentorID != nil {
			request.MentorID = mentorID
		}

		return RecordAudit(tx, actor, models.AuditUpdate, "SolicitacaoMentoria", requestID, &before, &request, meta)
	})
	if err != nil {
		return nil, err
	}

	logger.L.Info("mentorship status updated",
		zap.Uint64("request_id", requestID),
		zap.String("status", string(newStatus)))
	return &request, nil
}
