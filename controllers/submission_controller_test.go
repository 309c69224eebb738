package controllers

import (
	"bytes"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/AgroHub-Uni-RV/Ypetec/models"
	"github.com/AgroHub-Uni-RV/Ypetec/services"
)

func TestCreateSubmissionRespondsWhenReloadFails(t *testing.T) {
	mock := useMockDB(t)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `ypetec_projeto`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id", "status"}).
			AddRow(1, 42, string(models.ProjectStatusPreSubmission)))
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

	// Post-commit reload for the response fails; the handler must still
	// return the created submission.
	mock.ExpectQuery("SELECT (.+) FROM `ypetec_submissao`").
		WillReturnError(sql.ErrConnDone)

	r := gin.New()
	r.POST("/submissions", asActor(services.Actor{ID: 42, Role: models.RoleStudent}), CreateSubmission)

	body := bytes.NewBufferString(`{"project_id":1,"call_id":3}`)
	req := httptest.NewRequest(http.MethodPost, "/submissions", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"id":10`)
	assert.Contains(t, w.Body.String(), `"status":"ENVIADA"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}
