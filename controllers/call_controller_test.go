package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/AgroHub-Uni-RV/Ypetec/models"
	"github.com/AgroHub-Uni-RV/Ypetec/services"
)

func TestGetCallListClosedHidesDraftsFromPublic(t *testing.T) {
	mock := useMockDB(t)

	mock.ExpectQuery("SELECT (.+) FROM `ypetec_edital` WHERE \\(closes_at < \\? OR status = \\?\\) AND status <> \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	r := gin.New()
	r.GET("/calls", GetCallList)

	req := httptest.NewRequest(http.MethodGet, "/calls?status=closed", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCallListClosedShowsDraftsToAdmins(t *testing.T) {
	mock := useMockDB(t)

	mock.ExpectQuery("SELECT (.+) FROM `ypetec_edital` WHERE \\(closes_at < \\? OR status = \\?\\) AND `ypetec_edital`.`deleted_at` IS NULL").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	r := gin.New()
	r.GET("/calls", asActor(services.Actor{ID: 1, Role: models.RoleAdmin}), GetCallList)

	req := httptest.NewRequest(http.MethodGet, "/calls?status=closed", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
