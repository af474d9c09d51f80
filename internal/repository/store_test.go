package repository_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/vietanh2810/familymap-api/internal/db"
	"github.com/vietanh2810/familymap-api/internal/domain"
	"github.com/vietanh2810/familymap-api/internal/repository"
)

func openTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()

	gdb, err := db.OpenSQLite(fmt.Sprintf("file:%v?mode=memory&cache=shared", name))
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))

	return gdb
}

func openStore(t *testing.T, gdb *gorm.DB) *repository.Store {
	t.Helper()

	store := repository.NewStore(gdb)
	require.NoError(t, store.Open())

	return store
}

func testUser(username string) domain.User {
	return domain.User{
		ID:       "uid-" + username,
		PersonID: "pid-" + username,
		Username: username,
		Password: "secret1234",
		Email:    username + "@example.com",
	}
}

func TestUserRepository_RoundTrip(t *testing.T) {
	gdb := openTestDB(t, "repo_user")
	ctx := context.Background()

	store := openStore(t, gdb)
	defer store.Close(false)

	user := testUser("sheila")
	require.NoError(t, store.Users.Create(ctx, user))

	byName, err := store.Users.FindByUsername(ctx, "sheila")
	require.NoError(t, err)
	assert.Equal(t, user, byName)

	byCreds, err := store.Users.FindByCredentials(ctx, "sheila", "secret1234")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byCreds.ID)

	_, err = store.Users.FindByCredentials(ctx, "sheila", "wrong")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = store.Users.FindByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUserRepository_DuplicateUsername(t *testing.T) {
	gdb := openTestDB(t, "repo_user_dup")
	ctx := context.Background()

	store := openStore(t, gdb)
	defer store.Close(false)

	require.NoError(t, store.Users.Create(ctx, testUser("sheila")))

	dup := testUser("sheila")
	dup.ID = "uid-other"
	dup.Email = "other@example.com"

	err := store.Users.Create(ctx, dup)
	assert.ErrorIs(t, err, repository.ErrDuplicateKey)
}

func TestPersonRepository_RoundTripAndLinks(t *testing.T) {
	gdb := openTestDB(t, "repo_person")
	ctx := context.Background()

	store := openStore(t, gdb)
	defer store.Close(false)

	person := domain.Person{
		ID:         "p1",
		Descendant: "sheila",
		FirstName:  "Sheila",
		LastName:   "Parker",
		Gender:     domain.GenderFemale,
	}
	require.NoError(t, store.Persons.Create(ctx, person))

	person.FatherID = "p2"
	person.MotherID = "p3"
	person.SpouseID = "p4"
	require.NoError(t, store.Persons.UpdateLinks(ctx, person))

	found, err := store.Persons.FindByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, person, found)

	assert.ErrorIs(t, store.Persons.UpdateLinks(ctx, domain.Person{ID: "missing"}), repository.ErrNotFound)
}

func TestPersonRepository_DeleteByOwnerKeepsException(t *testing.T) {
	gdb := openTestDB(t, "repo_person_del")
	ctx := context.Background()

	store := openStore(t, gdb)
	defer store.Close(false)

	for i, id := range []string{"p1", "p2", "p3"} {
		gender := domain.GenderFemale
		if i%2 == 1 {
			gender = domain.GenderMale
		}
		require.NoError(t, store.Persons.Create(ctx, domain.Person{
			ID:         id,
			Descendant: "sheila",
			FirstName:  "Name",
			LastName:   "Parker",
			Gender:     gender,
		}))
	}
	require.NoError(t, store.Persons.Create(ctx, domain.Person{
		ID:         "q1",
		Descendant: "patrick",
		FirstName:  "Patrick",
		LastName:   "Spencer",
		Gender:     domain.GenderMale,
	}))

	require.NoError(t, store.Persons.DeleteByOwner(ctx, "sheila", "p1"))

	mine, err := store.Persons.FindByOwner(ctx, "sheila")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "p1", mine[0].ID)

	// Other tenants are untouched.
	theirs, err := store.Persons.FindByOwner(ctx, "patrick")
	require.NoError(t, err)
	assert.Len(t, theirs, 1)
}

func TestEventRepository_RoundTrip(t *testing.T) {
	gdb := openTestDB(t, "repo_event")
	ctx := context.Background()

	store := openStore(t, gdb)
	defer store.Close(false)

	event := domain.Event{
		ID:         "e1",
		PersonID:   "p1",
		Descendant: "sheila",
		EventType:  domain.EventBirth,
		Latitude:   38.2682,
		Longitude:  140.8694,
		Country:    "Japan",
		City:       "Sendai",
		Year:       "1970",
	}
	require.NoError(t, store.Events.Create(ctx, event))

	found, err := store.Events.FindByID(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, event, found)

	_, err = store.Events.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	require.NoError(t, store.Events.DeleteByOwner(ctx, "sheila"))

	remaining, err := store.Events.FindByOwner(ctx, "sheila")
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestAuthTokenRepository_RoundTrip(t *testing.T) {
	gdb := openTestDB(t, "repo_token")
	ctx := context.Background()

	store := openStore(t, gdb)
	defer store.Close(false)

	token := domain.AuthToken{
		Value:  "tok-1",
		UserID: "uid-sheila",
	}
	require.NoError(t, store.Tokens.Create(ctx, token))

	found, err := store.Tokens.FindByValue(ctx, "tok-1")
	require.NoError(t, err)
	assert.Equal(t, token, found)

	_, err = store.Tokens.FindByValue(ctx, "tok-unknown")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSchemaRepository_ResetWipesEverything(t *testing.T) {
	gdb := openTestDB(t, "repo_schema")
	ctx := context.Background()

	store := openStore(t, gdb)
	require.NoError(t, store.Users.Create(ctx, testUser("sheila")))
	require.NoError(t, store.Close(true))

	store = openStore(t, gdb)
	require.NoError(t, store.Schema.Reset(ctx))
	require.NoError(t, store.Close(true))

	store = openStore(t, gdb)
	defer store.Close(false)
	_, err := store.Users.FindByUsername(ctx, "sheila")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestStore_OperationsRequireOpenTransaction(t *testing.T) {
	gdb := openTestDB(t, "repo_closed")
	ctx := context.Background()

	store := repository.NewStore(gdb)

	err := store.Users.Create(ctx, testUser("sheila"))
	assert.ErrorIs(t, err, repository.ErrNoTransaction)

	_, err = store.Persons.FindByID(ctx, "p1")
	assert.ErrorIs(t, err, repository.ErrNoTransaction)
}
