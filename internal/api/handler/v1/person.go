package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/familymap-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/familymap-api/internal/api/middleware"
	"github.com/vietanh2810/familymap-api/internal/domain"
	"github.com/vietanh2810/familymap-api/internal/service"
)

type PersonService interface {
	GetPerson(ctx context.Context, tokenValue, personID string) (domain.Person, error)
	ListPeople(ctx context.Context, tokenValue string) ([]domain.Person, error)
}

type PersonHandler struct {
	svc PersonService
}

func NewPersonHandler(svc PersonService) *PersonHandler {
	return &PersonHandler{
		svc: svc,
	}
}

// HandleGetPerson godoc
// @Summary      Get one person owned by the caller
// @Tags         person
// @Produce      json
// @Param        personID  path      string true "person id"
// @Success      200      {object}   domain.Person
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /person/{personID} [get]
func (h *PersonHandler) HandleGetPerson(ctx *gin.Context) {
	token := middleware.TokenFromContext(ctx)
	personID := ctx.Param("personID")

	person, err := h.svc.GetPerson(ctx.Request.Context(), token, personID)
	if err != nil {
		renderReadErr(ctx, fmt.Errorf("v1.HandleGetPerson -> h.svc.GetPerson -> %w", err))

		return
	}

	ctx.JSON(http.StatusOK, person)
}

// HandleListPeople godoc
// @Summary      List every person owned by the caller
// @Tags         person
// @Produce      json
// @Success      200      {object}   response.PeopleResponse
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /person [get]
func (h *PersonHandler) HandleListPeople(ctx *gin.Context) {
	token := middleware.TokenFromContext(ctx)

	people, err := h.svc.ListPeople(ctx.Request.Context(), token)
	if err != nil {
		renderReadErr(ctx, fmt.Errorf("v1.HandleListPeople -> h.svc.ListPeople -> %w", err))

		return
	}

	ctx.JSON(http.StatusOK, response.PeopleResponse{Data: people})
}

// renderReadErr maps the shared read-path sentinels; both person and event
// handlers fail the same way.
func renderReadErr(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidToken):
		response.RenderErr(ctx, response.ErrUnauthorized(service.ErrInvalidToken))
	case errors.Is(err, service.ErrOwnershipMismatch):
		response.RenderErr(ctx, response.ErrForbidden(service.ErrOwnershipMismatch))
	case errors.Is(err, service.ErrPersonNotFound):
		response.RenderErr(ctx, response.ErrNotFound(service.ErrPersonNotFound))
	case errors.Is(err, service.ErrEventNotFound):
		response.RenderErr(ctx, response.ErrNotFound(service.ErrEventNotFound))
	default:
		response.RenderErr(ctx, response.ErrInternalServerError(err))
	}
}
