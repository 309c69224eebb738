package controllers

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/AgroHub-Uni-RV/Ypetec/database"
	"github.com/AgroHub-Uni-RV/Ypetec/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// useMockDB swaps database.DB for a sqlmock-backed handle for one test.
func useMockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      conn,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{TranslateError: true, SkipDefaultTransaction: true})
	require.NoError(t, err)

	prev := database.DB
	database.DB = db
	t.Cleanup(func() { database.DB = prev })
	return mock
}

// useMockRedis swaps database.RDB for a miniredis-backed client for one test.
func useMockRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)

	prev := database.RDB
	database.RDB = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { database.RDB = prev })
	return mr
}

// asActor injects an authenticated actor the way the JWT middleware does.
func asActor(actor services.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("actor", actor)
		c.Next()
	}
}
