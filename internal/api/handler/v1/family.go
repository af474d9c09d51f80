package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/familymap-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/familymap-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/familymap-api/internal/domain"
	"github.com/vietanh2810/familymap-api/internal/service"
)

var errInvalidGenerationsParam = errors.New("generations must be an integer >= 0")

type FamilyService interface {
	Fill(ctx context.Context, username string, generations int) (string, error)
	Load(ctx context.Context, users []domain.User, persons []domain.Person, events []domain.Event) (string, error)
	Clear(ctx context.Context) (string, error)
}

type FamilyHandler struct {
	svc FamilyService
}

func NewFamilyHandler(svc FamilyService) *FamilyHandler {
	return &FamilyHandler{
		svc: svc,
	}
}

// HandleFill godoc
// @Summary      Regenerate a user's ancestor data
// @Tags         family
// @Produce      json
// @Param        username     path      string true  "username to fill"
// @Param        generations  path      int    false "generations to generate (default 4)"
// @Success      200      {object}   response.MessageResponse
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /fill/{username}/{generations} [post]
func (h *FamilyHandler) HandleFill(ctx *gin.Context) {
	username := ctx.Param("username")

	generations := service.DefaultGenerations
	if param := ctx.Param("generations"); param != "" {
		parsed, err := strconv.Atoi(param)
		if err != nil || parsed < 0 {
			response.RenderErr(ctx, response.ErrBadRequest(errInvalidGenerationsParam))

			return
		}
		generations = parsed
	}

	message, err := h.svc.Fill(ctx.Request.Context(), username, generations)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			response.RenderErr(ctx, response.ErrNotFound(service.ErrUserNotFound))
		case errors.Is(err, service.ErrInvalidGenerations):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrInvalidGenerations))
		default:
			err = fmt.Errorf("v1.HandleFill -> h.svc.Fill -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: message})
}

// HandleLoad godoc
// @Summary      Wipe the database and load the posted users, persons and events
// @Tags         family
// @Produce      json
// @Param        request   body      request.LoadRequest true "request body"
// @Success      200      {object}   response.MessageResponse
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /load [post]
func (h *FamilyHandler) HandleLoad(ctx *gin.Context) {
	var req request.LoadRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	message, err := h.svc.Load(ctx.Request.Context(), req.Users, req.Persons, req.Events)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateKey) || errors.Is(err, service.ErrConstraintViolation) {
			response.RenderErr(ctx, response.ErrBadRequest(err))

			return
		}

		err = fmt.Errorf("v1.HandleLoad -> h.svc.Load -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: message})
}

// HandleClear godoc
// @Summary      Drop and recreate every table
// @Tags         family
// @Produce      json
// @Success      200      {object}   response.MessageResponse
// @Failure      500      {object}   response.Err
// @Router       /clear [post]
func (h *FamilyHandler) HandleClear(ctx *gin.Context) {
	message, err := h.svc.Clear(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleClear -> h.svc.Clear -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: message})
}
