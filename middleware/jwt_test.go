package middlewares

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/poselab/pose-backend/config"
	"github.com/poselab/pose-backend/entity"
	"github.com/poselab/pose-backend/repository"
	"github.com/poselab/pose-backend/utils"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var gateDBSeq atomic.Int64

var gateSecret = []byte("gate-test-secret")

// newGateRouter wires the identity gate the way SetupRouter does: identity on
// every route, RequireAuth only on the protected group.
func newGateRouter(t *testing.T) (*gin.Engine, *repository.Repository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:gate_test_%d?mode=memory&cache=shared", gateDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.User{}, &entity.Video{}, &entity.Frame{}))

	repo := repository.NewRepository(db)

	cfg := &config.EnvConfig{}
	cfg.JWT.SecretKey = string(gateSecret)

	r := gin.New()
	r.Use(IdentityMiddleware(cfg, repo))
	r.GET("/public", func(c *gin.Context) {
		c.JSON(200, gin.H{"user_id": c.GetString("user_id")})
	})

	protected := r.Group("/protected")
	protected.Use(RequireAuth())
	protected.GET("/me", func(c *gin.Context) {
		c.JSON(200, gin.H{"user_id": c.GetString("user_id")})
	})

	return r, repo
}

func gateGet(r *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func createGateUser(t *testing.T, repo *repository.Repository, userID string) {
	t.Helper()
	require.NoError(t, repo.UserRepo.Create(&entity.User{ID: uuid.New(), UserID: userID}))
}

func TestGate_PublicRouteWithoutToken(t *testing.T) {
	r, _ := newGateRouter(t)

	rec := gateGet(r, "/public", "")
	require.Equal(t, 200, rec.Code)
	require.JSONEq(t, `{"user_id":""}`, rec.Body.String())
}

func TestGate_PublicRouteIgnoresGarbageToken(t *testing.T) {
	r, _ := newGateRouter(t)

	rec := gateGet(r, "/public", "Bearer not-a-token")
	require.Equal(t, 200, rec.Code)
	require.JSONEq(t, `{"user_id":""}`, rec.Body.String())
}

func TestGate_ProtectedRouteWithoutToken(t *testing.T) {
	r, _ := newGateRouter(t)

	rec := gateGet(r, "/protected/me", "")
	require.Equal(t, 401, rec.Code)
}

func TestGate_ProtectedRouteGarbageToken(t *testing.T) {
	r, _ := newGateRouter(t)

	rec := gateGet(r, "/protected/me", "Bearer not-a-token")
	require.Equal(t, 401, rec.Code)
}

func TestGate_ProtectedRouteWrongSecret(t *testing.T) {
	r, repo := newGateRouter(t)
	createGateUser(t, repo, "alice")

	token, err := utils.GenerateToken("alice", []byte("some-other-secret"), time.Hour)
	require.NoError(t, err)

	rec := gateGet(r, "/protected/me", "Bearer "+token)
	require.Equal(t, 401, rec.Code)
}

func TestGate_ProtectedRouteExpiredToken(t *testing.T) {
	r, repo := newGateRouter(t)
	createGateUser(t, repo, "alice")

	token, err := utils.GenerateToken("alice", gateSecret, -time.Minute)
	require.NoError(t, err)

	rec := gateGet(r, "/protected/me", "Bearer "+token)
	require.Equal(t, 401, rec.Code)
}

func TestGate_ValidTokenForDeletedUser(t *testing.T) {
	r, _ := newGateRouter(t)

	// Token is well-formed and correctly signed, but no user row backs it.
	token, err := utils.GenerateToken("ghost", gateSecret, time.Hour)
	require.NoError(t, err)

	rec := gateGet(r, "/protected/me", "Bearer "+token)
	require.Equal(t, 401, rec.Code)
}

func TestGate_ValidTokenEstablishesIdentity(t *testing.T) {
	r, repo := newGateRouter(t)
	createGateUser(t, repo, "alice")

	token, err := utils.GenerateToken("alice", gateSecret, time.Hour)
	require.NoError(t, err)

	rec := gateGet(r, "/protected/me", "Bearer "+token)
	require.Equal(t, 200, rec.Code)
	require.JSONEq(t, `{"user_id":"alice"}`, rec.Body.String())
}
