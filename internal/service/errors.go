package service

import (
	"errors"

	"github.com/vietanh2810/familymap-api/internal/repository"
)

var (
	// Constraint sentinels surface to callers unchanged.
	ErrDuplicateKey        = repository.ErrDuplicateKey
	ErrConstraintViolation = repository.ErrConstraintViolation

	ErrDuplicateUsername  = errors.New("username already taken by another user")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrPersonNotFound     = errors.New("person not found")
	ErrEventNotFound      = errors.New("event not found")
	ErrInvalidToken       = errors.New("invalid auth token")
	ErrOwnershipMismatch  = errors.New("requested record belongs to another user")
	ErrInvalidGenerations = errors.New("generations must be zero or greater")
)

// StoreProvider hands out one fresh Store (one transaction) per operation.
type StoreProvider interface {
	NewStore() *repository.Store
}

// closeOrRollback rolls the store back unless the operation already closed
// it. Deferred by every orchestrator so no exit path leaks an open
// transaction.
func closeOrRollback(store *repository.Store) {
	if store.IsOpen() {
		_ = store.Close(false)
	}
}
