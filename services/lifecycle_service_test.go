package services

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/AgroHub-Uni-RV/Ypetec/models"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      conn,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	return db, mock
}

func fixedClock(s *LifecycleService, at time.Time) *LifecycleService {
	s.now = func() time.Time { return at }
	return s
}

func projectRows(id, ownerID uint64, status models.ProjectStatus) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "owner_id", "status"}).
		AddRow(id, ownerID, string(status))
}

func TestSubmitProjectNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewLifecycleService(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `ypetec_projeto`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id", "status"}))
	mock.ExpectRollback()

	_, err := svc.SubmitProject(99, 1, Actor{ID: 42, Role: models.RoleStudent}, AuditMeta{})
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitProjectNotOwner(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewLifecycleService(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `ypetec_projeto`").
		WillReturnRows(projectRows(1, 7, models.ProjectStatusPreSubmission))
	mock.ExpectRollback()

	_, err := svc.SubmitProject(1, 1, Actor{ID: 42, Role: models.RoleStudent}, AuditMeta{})
	assert.Equal(t, KindForbidden, KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitProjectWrongStatus(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewLifecycleService(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `ypetec_projeto`").
		WillReturnRows(projectRows(1, 42, models.ProjectStatusIncubated))
	mock.ExpectRollback()

	_, err := svc.SubmitProject(1, 1, Actor{ID: 42, Role: models.RoleStudent}, AuditMeta{})
	assert.Equal(t, KindInvalidState, KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitProjectCallClosed(t *testing.T) {
	db, mock := newMockDB(t)
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := fixedClock(NewLifecycleService(db), now)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `ypetec_projeto`").
		WillReturnRows(projectRows(1, 42, models.ProjectStatusPreSubmission))
	mock.ExpectQuery("SELECT (.+) FROM `ypetec_edital`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "opens_at", "closes_at", "status"}).
			AddRow(3, now.Add(-48*time.Hour), now.Add(-24*time.Hour), string(models.CallStatusPublished)))
	mock.ExpectRollback()

	_, err := svc.SubmitProject(1, 3, Actor{ID: 42, Role: models.RoleStudent}, AuditMeta{})
	assert.Equal(t, KindInvalidState, KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitProjectDuplicate(t *testing.T) {
	db, mock := newMockDB(t)
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := fixedClock(NewLifecycleService(db), now)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `ypetec_projeto`").
		WillReturnRows(projectRows(1, 42, models.ProjectStatusPreSubmission))
	mock.ExpectQuery("SELECT (.+) FROM `ypetec_edital`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "opens_at", "closes_at", "status"}).
			AddRow(3, now.Add(-time.Hour), now.Add(time.Hour), string(models.CallStatusPublished)))
	mock.ExpectQuery("SELECT count").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))
	mock.ExpectRollback()

	_, err := svc.SubmitProject(1, 3, Actor{ID: 42, Role: models.RoleStudent}, AuditMeta{})
	assert.Equal(t, KindConflict, KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitProjectSuccess(t *testing.T) {
	db, mock := newMockDB(t)
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := fixedClock(NewLifecycleService(db), now)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `ypetec_projeto`").
		WillReturnRows(projectRows(1, 42, models.ProjectStatusPreSubmission))
	mock.ExpectQuery("SELECT (.+) FROM `ypetec_edital`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "opens_at", "closes_at", "status"}).
			AddRow(3, now.Add(-time.Hour), now.Add(time.Hour), string(models.CallStatusPublished)))
	mock.ExpectQuery("SELECT count").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))
	mock.ExpectExec("INSERT INTO `ypetec_submissao`").
		WillReturnResult(sqlmock.NewResult(10, 1))
	mock.ExpectExec("UPDATE `ypetec_projeto`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO `ypetec_log_auditoria`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	submission, err := svc.SubmitProject(1, 3, Actor{ID: 42, Role: models.RoleStudent}, AuditMeta{})
	require.NoError(t, err)
	assert.Equal(t, uint64(10), submission.ID)
	assert.Equal(t, models.SubmissionStatusSent, submission.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordEvaluationRequiresAdmin(t *testing.T) {
	db, _ := newMockDB(t)
	svc := NewLifecycleService(db)

	_, err := svc.RecordEvaluation(1, models.EvaluationApproved, "", Actor{ID: 42, Role: models.RoleStudent}, AuditMeta{})
	assert.Equal(t, KindForbidden, KindOf(err))
}

func TestRecordEvaluationRejectsUnknownResult(t *testing.T) {
	db, _ := newMockDB(t)
	svc := NewLifecycleService(db)

	_, err := svc.RecordEvaluation(1, "TALVEZ", "", Actor{ID: 1, Role: models.RoleAdmin}, AuditMeta{})
	assert.Equal(t, KindInvalidArgument, KindOf(err))
}

func TestRecordEvaluationSuccess(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewLifecycleService(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `ypetec_submissao`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "project_id", "call_id", "status"}).
			AddRow(5, 1, 3, string(models.SubmissionStatusSent)))
	mock.ExpectQuery("SELECT (.+) FROM `ypetec_projeto`").
		WillReturnRows(projectRows(1, 42, models.ProjectStatusSubmitted))
	mock.ExpectExec("INSERT INTO `ypetec_avaliacao`").
		WillReturnResult(sqlmock.NewResult(9, 1))
	mock.ExpectExec("UPDATE `ypetec_submissao`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE `ypetec_projeto`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO `ypetec_log_auditoria`").
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	eval, err := svc.RecordEvaluation(5, models.EvaluationApproved, "ok", Actor{ID: 1, Role: models.RoleAdmin}, AuditMeta{})
	require.NoError(t, err)
	assert.Equal(t, uint64(9), eval.ID)
	assert.Equal(t, models.EvaluationApproved, eval.Result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPublishProjectRequiresAdmin(t *testing.T) {
	db, _ := newMockDB(t)
	svc := NewLifecycleService(db)

	_, err := svc.PublishProject(1, "logo.png", "d", Actor{ID: 42, Role: models.RoleStudent}, AuditMeta{})
	assert.Equal(t, KindForbidden, KindOf(err))
}

func TestPublishProjectWrongStatus(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewLifecycleService(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `ypetec_projeto`").
		WillReturnRows(projectRows(1, 42, models.ProjectStatusSubmitted))
	mock.ExpectRollback()

	_, err := svc.PublishProject(1, "logo.png", "d", Actor{ID: 1, Role: models.RoleAdmin}, AuditMeta{})
	assert.Equal(t, KindInvalidState, KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPublishProjectAlreadyPublished(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewLifecycleService(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `ypetec_projeto`").
		WillReturnRows(projectRows(1, 42, models.ProjectStatusIncubated))
	mock.ExpectQuery("SELECT count").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))
	mock.ExpectRollback()

	_, err := svc.PublishProject(1, "logo.png", "d", Actor{ID: 1, Role: models.RoleAdmin}, AuditMeta{})
	assert.Equal(t, KindConflict, KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPublishApprovedProjectBecomesIncubated(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewLifecycleService(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `ypetec_projeto`").
		WillReturnRows(projectRows(1, 42, models.ProjectStatusApproved))
	mock.ExpectQuery("SELECT count").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))
	mock.ExpectExec("INSERT INTO `ypetec_publicacao`").
		WillReturnResult(sqlmock.NewResult(4, 1))
	mock.ExpectExec("UPDATE `ypetec_projeto`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO `ypetec_log_auditoria`").
		WillReturnResult(sqlmock.NewResult(3, 1))
	mock.ExpectCommit()

	publication, err := svc.PublishProject(1, "logo.png", "d", Actor{ID: 1, Role: models.RoleAdmin}, AuditMeta{})
	require.NoError(t, err)
	assert.Equal(t, uint64(4), publication.ID)
	assert.True(t, publication.Active)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDisengageProjectSuccess(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewLifecycleService(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `ypetec_projeto`").
		WillReturnRows(projectRows(1, 42, models.ProjectStatusIncubated))
	mock.ExpectExec("UPDATE `ypetec_projeto` SET `status`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE `ypetec_projeto` SET `deleted_at`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO `ypetec_log_auditoria`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := svc.DisengageProject(1, Actor{ID: 42, Role: models.RoleStudent}, AuditMeta{})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet(),
		"status flip, soft delete and audit row must all land in one transaction")
}

func TestDisengageProjectNotOwner(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewLifecycleService(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `ypetec_projeto`").
		WillReturnRows(projectRows(1, 7, models.ProjectStatusIncubated))
	mock.ExpectRollback()

	err := svc.DisengageProject(1, Actor{ID: 42, Role: models.RoleStudent}, AuditMeta{})
	assert.Equal(t, KindForbidden, KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDisengageProjectTerminalStatus(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewLifecycleService(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `ypetec_projeto`").
		WillReturnRows(projectRows(1, 42, models.ProjectStatusRejected))
	mock.ExpectRollback()

	err := svc.DisengageProject(1, Actor{ID: 42, Role: models.RoleStudent}, AuditMeta{})
	assert.Equal(t, KindInvalidState, KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRequestMentorshipNotIncubated(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewLifecycleService(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `ypetec_projeto`").
		WillReturnRows(projectRows(1, 42, models.ProjectStatusApproved))
	mock.ExpectRollback()

	_, err := svc.RequestMentorship(1, "Financeiro", "precisamos de ajuda", Actor{ID: 42, Role: models.RoleStudent}, AuditMeta{})
	assert.Equal(t, KindInvalidState, KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRequestMentorshipPendingConflict(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewLifecycleService(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `ypetec_projeto`").
		WillReturnRows(projectRows(1, 42, models.ProjectStatusIncubated))
	mock.ExpectQuery("SELECT count").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))
	mock.ExpectRollback()

	_, err := svc.RequestMentorship(1, "Financeiro", "precisamos de ajuda", Actor{ID: 42, Role: models.RoleStudent}, AuditMeta{})
	assert.Equal(t, KindConflict, KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateMentorshipStatusValidation(t *testing.T) {
	db, _ := newMockDB(t)
	svc := NewLifecycleService(db)

	_, err := svc.UpdateMentorshipStatus(1, models.MentorshipStatusInProgress, nil, Actor{ID: 42, Role: models.RoleStudent}, AuditMeta{})
	assert.Equal(t, KindForbidden, KindOf(err))

	_, err = svc.UpdateMentorshipStatus(1, models.MentorshipStatusRequested, nil, Actor{ID: 1, Role: models.RoleAdmin}, AuditMeta{})
	assert.Equal(t, KindInvalidArgument, KindOf(err))
}
