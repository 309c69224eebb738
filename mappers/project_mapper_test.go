package mappers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AgroHub-Uni-RV/Ypetec/models"
)

func TestToProjectResp(t *testing.T) {
	p := models.Project{
		ID:      3,
		OwnerID: 10,
		Owner:   &models.User{ID: 10, Name: "João"},
		Title:   "Horta Inteligente",
		Summary: "Sensores de umidade",
		Area:    "Agro",
		Status:  models.ProjectStatusPreSubmission,
		Members: []models.TeamMember{
			{ID: 1, Name: "Ana", Email: "ana@example.com", RoleInTeam: "Dev"},
		},
	}

	resp := ToProjectResp(&p)
	assert.Equal(t, uint64(3), resp.ID)
	assert.Equal(t, "João", resp.OwnerName)
	assert.Equal(t, "PRE_SUBMISSAO", resp.Status)
	require.Len(t, resp.Members, 1)
	assert.Equal(t, "Ana", resp.Members[0].Name)
}

func TestStatusLabelTerminalStatesWin(t *testing.T) {
	sub := &models.Submission{
		Status: models.SubmissionStatusApproved,
		Evaluations: []models.Evaluation{
			{ID: 1, Result: models.EvaluationApproved, EvaluatedAt: time.Now()},
		},
	}

	incubated := models.Project{Status: models.ProjectStatusIncubated}
	assert.Equal(t, "Incubado", statusLabel(&incubated, sub))

	disengaged := models.Project{Status: models.ProjectStatusDisengaged}
	assert.Equal(t, "Desligado", statusLabel(&disengaged, sub))
}

func TestStatusLabelEvaluationOverridesSubmission(t *testing.T) {
	p := models.Project{Status: models.ProjectStatusNeedsAdjustment}
	sub := &models.Submission{
		Status: models.SubmissionStatusAdjustmentsRequested,
		Evaluations: []models.Evaluation{
			{ID: 1, Result: models.EvaluationNeedsAdjustment, EvaluatedAt: time.Now()},
		},
	}

	assert.Equal(t, "Necessita ajustes", statusLabel(&p, sub))
}

func TestStatusLabelFallbacks(t *testing.T) {
	p := models.Project{Status: models.ProjectStatusSubmitted}
	sub := &models.Submission{Status: models.SubmissionStatusSent}
	assert.Equal(t, "Enviada", statusLabel(&p, sub))

	noSub := models.Project{Status: models.ProjectStatusSubmitted}
	assert.Equal(t, "Submetido", statusLabel(&noSub, nil))

	draft := models.Project{Status: models.ProjectStatusPreSubmission}
	assert.Equal(t, "Rascunho", statusLabel(&draft, nil))
}

func TestToMyProjectItem(t *testing.T) {
	base := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	p := models.Project{
		ID:     5,
		Title:  "Horta Inteligente",
		Area:   "Agro",
		Status: models.ProjectStatusSubmitted,
		Submissions: []models.Submission{
			{
				ID:          1,
				SubmittedAt: base,
				Call:        &models.Call{Title: "Edital antigo"},
			},
			{
				ID:          2,
				SubmittedAt: base.Add(time.Hour),
				Call:        &models.Call{Title: "Edital 2026/1"},
				Status:      models.SubmissionStatusSent,
				Evaluations: []models.Evaluation{
					{ID: 7, Result: models.EvaluationApproved, EvaluatedAt: base.Add(2 * time.Hour)},
				},
			},
		},
	}

	item := ToMyProjectItem(&p)
	assert.Equal(t, "Edital 2026/1", item.CallTitle, "latest submission decides the call")
	require.NotNil(t, item.SubmissionID)
	assert.Equal(t, uint64(2), *item.SubmissionID)
	require.NotNil(t, item.EvaluationStatus)
	assert.Equal(t, "APROVADO", *item.EvaluationStatus)
	assert.Equal(t, "Aprovado", item.StatusLabel)
}

func TestToMyProjectItemNoSubmissions(t *testing.T) {
	p := models.Project{ID: 5, Title: "x", Status: models.ProjectStatusPreSubmission}

	item := ToMyProjectItem(&p)
	assert.Equal(t, "—", item.CallTitle)
	assert.Nil(t, item.SubmissionID)
	assert.Nil(t, item.EvaluationStatus)
	assert.Equal(t, "Rascunho", item.StatusLabel)
}
