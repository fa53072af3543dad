package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/restauranthjort/hjort-api/internal/config"
	"github.com/restauranthjort/hjort-api/internal/pkg/jwthelper"
)

// AdminIDKey is where VerifyJWT stores the authenticated admin's id.
const AdminIDKey = "adminID"

type Authenticator struct {
	conf *config.AuthConfig
}

func NewAuthenticator(conf *config.AuthConfig) *Authenticator {
	return &Authenticator{
		conf: conf,
	}
}

// VerifyJWT rejects requests without a valid bearer token issued by
// the auth service.
func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenString == "" {
			ctx.AbortWithStatus(http.StatusUnauthorized)

			return
		}

		claims, err := jwthelper.VerifyToken([]byte(a.conf.SigningKey), a.conf.Issuer, a.conf.Audience, tokenString)
		if err != nil {
			ctx.AbortWithStatus(http.StatusUnauthorized)

			return
		}

		ctx.Set(AdminIDKey, claims.UserID)
		ctx.Next()
	}
}
