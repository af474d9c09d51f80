package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/vietanh2810/familymap-api/internal/domain"
)

type LoadRequest struct {
	Users   []domain.User   `json:"users"`
	Persons []domain.Person `json:"persons"`
	Events  []domain.Event  `json:"events"`
}

// Validate only requires the lists to be present; empty lists are a legal
// way to wipe the database.
func (req *LoadRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Users, validation.NotNil),
		validation.Field(&req.Persons, validation.NotNil),
		validation.Field(&req.Events, validation.NotNil),
	)
}
