package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/vietanh2810/familymap-api/internal/domain"
	"github.com/vietanh2810/familymap-api/internal/generator"
	"github.com/vietanh2810/familymap-api/internal/repository"
)

// DefaultGenerations is how many ancestor generations register and fill
// create when the caller does not say otherwise.
const DefaultGenerations = 4

// generateData materializes a full ancestor tree for the user's root person
// and persists it through the caller's open store: first the root's
// retrofitted links, then every generated person, then every event. The
// caller owns commit/rollback.
func generateData(ctx context.Context, store *repository.Store, gen *generator.Generator, user domain.User, generations int) (int, int, error) {
	root, err := store.Persons.FindByID(ctx, user.PersonID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, 0, ErrPersonNotFound
		}

		return 0, 0, fmt.Errorf("store.Persons.FindByID -> %w", err)
	}

	tree := gen.Generate(&root, generations)

	if err := store.Persons.UpdateLinks(ctx, root); err != nil {
		return 0, 0, fmt.Errorf("store.Persons.UpdateLinks -> %w", err)
	}

	for _, person := range tree.Persons {
		if err := store.Persons.Create(ctx, *person); err != nil {
			return 0, 0, fmt.Errorf("store.Persons.Create -> %w", err)
		}
	}

	for _, event := range tree.Events {
		if err := store.Events.Create(ctx, *event); err != nil {
			return 0, 0, fmt.Errorf("store.Events.Create -> %w", err)
		}
	}

	return len(tree.Persons), len(tree.Events), nil
}
