package middleware

import (
	"log"
	"net/http"
	"strings"

	"medipay/internal/domain/access"
	"medipay/internal/domain/entities"
	"medipay/pkg"
	"medipay/pkg/auth"

	"github.com/gin-gonic/gin"
)

const actorKey = "actor"

// JWTAuth authenticates the bearer token and stores the caller as an
// access.Actor. Authorization is left to the use cases.
func JWTAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			abortUnauthenticated(c, "missing bearer token")
			return
		}
		claims, err := auth.ParseValidate(secret, strings.TrimPrefix(h, "Bearer "))
		if err != nil {
			log.Printf("[auth][middleware] token rejected path=%s err=%v", c.FullPath(), err)
			abortUnauthenticated(c, "invalid token")
			return
		}
		role := entities.UserRole(strings.ToLower(claims.Role))
		switch role {
		case entities.UserRoleAdmin, entities.UserRoleHospital, entities.UserRolePatient:
		default:
			abortUnauthenticated(c, "unknown role")
			return
		}
		c.Set(actorKey, access.Actor{ID: claims.Sub, Role: role})
		c.Next()
	}
}

// ActorFrom returns the authenticated caller, or the zero Actor when the
// route is not behind JWTAuth.
func ActorFrom(c *gin.Context) access.Actor {
	v, ok := c.Get(actorKey)
	if !ok {
		return access.Actor{}
	}
	a, _ := v.(access.Actor)
	return a
}

// WithActor is used by tests to bypass token parsing.
func WithActor(a access.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(actorKey, a)
		c.Next()
	}
}

func abortUnauthenticated(c *gin.Context, msg string) {
	appErr := pkg.NewDomainErrorSimple("UNAUTHENTICATED", msg, http.StatusUnauthorized)
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
