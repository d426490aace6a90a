package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"oficina_os/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func actorEcho() (*gin.Engine, *entities.Actor) {
	r := gin.New()
	captured := &entities.Actor{}
	r.Use(ActorAuth())
	r.GET("/whoami", func(c *gin.Context) {
		*captured = ActorFrom(c)
		c.Status(http.StatusOK)
	})
	return r, captured
}

func TestActorAuth_HeaderFallback(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "")

	r, captured := actorEcho()

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("X-Actor-Id", "user-1")
	req.Header.Set("X-Actor-Name", "Carlos")
	req.Header.Set("X-Actor-Role", "admin")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if captured.ID != "user-1" || captured.Name != "Carlos" || captured.Role != "admin" {
		t.Fatalf("unexpected actor: %+v", captured)
	}
}

func TestActorAuth_JWT(t *testing.T) {
	gin.SetMode(gin.TestMode)
	const secret = "test-secret"
	t.Setenv("JWT_SECRET", secret)

	signToken := func(t *testing.T, key string) string {
		t.Helper()
		claims := ActorClaims{
			Name: "Carlos",
			Role: "admin",
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "user-1",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
		if err != nil {
			t.Fatalf("sign token: %v", err)
		}
		return signed
	}

	t.Run("missing bearer token", func(t *testing.T) {
		r, _ := actorEcho()

		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("wrong signing key", func(t *testing.T) {
		r, _ := actorEcho()

		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "other-secret"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("valid token resolves the actor", func(t *testing.T) {
		r, captured := actorEcho()

		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, secret))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if captured.ID != "user-1" || captured.Role != "admin" {
			t.Fatalf("unexpected actor: %+v", captured)
		}
	})
}
