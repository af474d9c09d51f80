package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/familymap-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/familymap-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/familymap-api/internal/domain"
	"github.com/vietanh2810/familymap-api/internal/service"
)

type AuthService interface {
	Register(ctx context.Context, user domain.User, person domain.Person) (domain.Login, error)
	Login(ctx context.Context, username, password string) (domain.Login, error)
}

type AuthHandler struct {
	svc AuthService
}

func NewAuthHandler(svc AuthService) *AuthHandler {
	return &AuthHandler{
		svc: svc,
	}
}

// HandleRegister godoc
// @Summary      Register a new user and generate their ancestor tree
// @Tags         user
// @Produce      json
// @Param        request   body      request.RegisterRequest true "request body"
// @Success      200      {object}   domain.Login
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /user/register [post]
func (h *AuthHandler) HandleRegister(ctx *gin.Context) {
	var req request.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	login, err := h.svc.Register(ctx.Request.Context(),
		domain.User{
			Username: req.UserName,
			Password: req.Password,
			Email:    req.Email,
		},
		domain.Person{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Gender:    req.Gender,
		},
	)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateUsername) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrDuplicateUsername))

			return
		}

		err = fmt.Errorf("v1.HandleRegister -> h.svc.Register -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, login)
}

// HandleLogin godoc
// @Summary      Login a user
// @Tags         user
// @Produce      json
// @Param        request   body      request.LoginRequest true "request body"
// @Success      200      {object}   domain.Login
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /user/login [post]
func (h *AuthHandler) HandleLogin(ctx *gin.Context) {
	var req request.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	login, err := h.svc.Login(ctx.Request.Context(), req.UserName, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.RenderErr(ctx, response.ErrUnauthorized(service.ErrInvalidCredentials))

			return
		}

		err = fmt.Errorf("v1.HandleLogin -> h.svc.Login -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, login)
}
