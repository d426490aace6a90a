package middleware

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"oficina_os/internal/domain/entities"
	"oficina_os/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const actorContextKey = "actor"

var (
	errMissingBearerToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Bearer token required", http.StatusUnauthorized)
	errInvalidToken       = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid or expired token", http.StatusUnauthorized)
)

// ActorClaims carries the authenticated user identity. The subject claim is
// the actor id.
type ActorClaims struct {
	Name string `json:"name"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// ActorAuth resolves the acting user for every request.
//
// With JWT_SECRET set, requests must carry a Bearer token signed with it.
// Without a secret the service trusts the gateway in front of it and reads
// the X-Actor-Id / X-Actor-Name / X-Actor-Role headers instead.
func ActorAuth() gin.HandlerFunc {
	secret := os.Getenv("JWT_SECRET")

	return func(c *gin.Context) {
		if secret == "" {
			c.Set(actorContextKey, entities.Actor{
				ID:   c.GetHeader("X-Actor-Id"),
				Name: c.GetHeader("X-Actor-Name"),
				Role: c.GetHeader("X-Actor-Role"),
			})
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if authHeader == "" || tokenString == authHeader {
			c.AbortWithStatusJSON(errMissingBearerToken.HTTPStatus, errMissingBearerToken.ToHTTPError())
			return
		}

		claims, err := parseActorClaims(tokenString, secret)
		if err != nil {
			c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
			return
		}

		c.Set(actorContextKey, entities.Actor{
			ID:   claims.Subject,
			Name: claims.Name,
			Role: claims.Role,
		})
		c.Next()
	}
}

func parseActorClaims(tokenString, secret string) (*ActorClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &ActorClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*ActorClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

// ActorFrom returns the actor resolved by ActorAuth for this request.
func ActorFrom(c *gin.Context) entities.Actor {
	if v, ok := c.Get(actorContextKey); ok {
		if actor, ok := v.(entities.Actor); ok {
			return actor
		}
	}
	return entities.Actor{}
}
