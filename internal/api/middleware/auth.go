package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/familymap-api/internal/api/handler/v1/response"
)

const ctxTokenKey = "authToken"

var errMissingToken = errors.New("missing auth token")

// BearerToken pulls the opaque token out of the Authorization header and
// stashes it in the request context. Resolution against the store happens
// inside the service, within the operation's own transaction. A bare token
// without the "Bearer " prefix is accepted too.
func BearerToken() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := strings.TrimSpace(strings.TrimPrefix(ctx.GetHeader("Authorization"), "Bearer"))
		if token == "" {
			response.RenderErr(ctx, response.ErrUnauthorized(errMissingToken))

			return
		}

		ctx.Set(ctxTokenKey, token)
		ctx.Next()
	}
}

// TokenFromContext returns the token extracted by BearerToken.
func TokenFromContext(ctx *gin.Context) string {
	return ctx.GetString(ctxTokenKey)
}
