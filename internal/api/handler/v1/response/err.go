package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Err struct {
	StatusCode int    `json:"-"`
	Msg        string `json:"error"`
}

func (e *Err) Error() string {
	return e.Msg
}

func RenderErr(ctx *gin.Context, err *Err) {
	ctx.AbortWithStatusJSON(err.StatusCode, err)
}

func ErrBadRequest(err error) *Err {
	return &Err{
		StatusCode: http.StatusBadRequest,
		Msg:        err.Error(),
	}
}

func ErrUnauthorized(err error) *Err {
	return &Err{
		StatusCode: http.StatusUnauthorized,
		Msg:        err.Error(),
	}
}

func ErrForbidden(err error) *Err {
	return &Err{
		StatusCode: http.StatusForbidden,
		Msg:        err.Error(),
	}
}

func ErrNotFound(err error) *Err {
	return &Err{
		StatusCode: http.StatusNotFound,
		Msg:        err.Error(),
	}
}

// ErrInternalServerError logs the real error and hides it from the caller.
func ErrInternalServerError(err error) *Err {
	zap.L().Error("internal server error", zap.Error(err))

	return &Err{
		StatusCode: http.StatusInternalServerError,
		Msg:        "Internal Server Error",
	}
}
