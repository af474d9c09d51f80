package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/familymap-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/familymap-api/internal/api/middleware"
	"github.com/vietanh2810/familymap-api/internal/domain"
)

type EventService interface {
	GetEvent(ctx context.Context, tokenValue, eventID string) (domain.Event, error)
	ListEvents(ctx context.Context, tokenValue string) ([]domain.Event, error)
}

type EventHandler struct {
	svc EventService
}

func NewEventHandler(svc EventService) *EventHandler {
	return &EventHandler{
		svc: svc,
	}
}

// HandleGetEvent godoc
// @Summary      Get one event owned by the caller
// @Tags         event
// @Produce      json
// @Param        eventID  path      string true "event id"
// @Success      200      {object}   domain.Event
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /event/{eventID} [get]
func (h *EventHandler) HandleGetEvent(ctx *gin.Context) {
	token := middleware.TokenFromContext(ctx)
	eventID := ctx.Param("eventID")

	event, err := h.svc.GetEvent(ctx.Request.Context(), token, eventID)
	if err != nil {
		renderReadErr(ctx, fmt.Errorf("v1.HandleGetEvent -> h.svc.GetEvent -> %w", err))

		return
	}

	ctx.JSON(http.StatusOK, event)
}

// HandleListEvents godoc
// @Summary      List every event owned by the caller
// @Tags         event
// @Produce      json
// @Success      200      {object}   response.EventsResponse
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /event [get]
func (h *EventHandler) HandleListEvents(ctx *gin.Context) {
	token := middleware.TokenFromContext(ctx)

	events, err := h.svc.ListEvents(ctx.Request.Context(), token)
	if err != nil {
		renderReadErr(ctx, fmt.Errorf("v1.HandleListEvents -> h.svc.ListEvents -> %w", err))

		return
	}

	ctx.JSON(http.StatusOK, response.EventsResponse{Data: events})
}
