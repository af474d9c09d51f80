package response

import (
	"github.com/vietanh2810/familymap-api/internal/domain"
)

type MessageResponse struct {
	Message string `json:"message"`
}

type PeopleResponse struct {
	Data []domain.Person `json:"data"`
}

type EventsResponse struct {
	Data []domain.Event `json:"data"`
}
