package repository

import (
	"gorm.io/gorm"

	"github.com/vietanh2810/familymap-api/internal/repository/dao"
)

// Re-exported dao sentinels so callers never import the dao package.
var (
	ErrNotFound            = dao.ErrNotFound
	ErrDuplicateKey        = dao.ErrDuplicateKey
	ErrConstraintViolation = dao.ErrConstraintViolation
	ErrNoTransaction       = dao.ErrNoTransaction
)

// Store bundles one unit of work with every repository bound to it. A service
// operation creates a Store, opens it, performs all reads and writes through
// it, and closes it exactly once — so the whole operation is atomic.
type Store struct {
	uow *dao.UnitOfWork

	Users   *UserRepository
	Persons *PersonRepository
	Events  *EventRepository
	Tokens  *AuthTokenRepository
	Schema  *SchemaRepository
}

func NewStore(db *gorm.DB) *Store {
	uow := dao.NewUnitOfWork(db)

	return &Store{
		uow:     uow,
		Users:   NewUserRepository(dao.NewUserDAO(uow)),
		Persons: NewPersonRepository(dao.NewPersonDAO(uow)),
		Events:  NewEventRepository(dao.NewEventDAO(uow)),
		Tokens:  NewAuthTokenRepository(dao.NewAuthTokenDAO(uow)),
		Schema:  NewSchemaRepository(dao.NewSchemaDAO(uow)),
	}
}

func (s *Store) Open() error {
	return s.uow.Open()
}

func (s *Store) Close(commit bool) error {
	return s.uow.Close(commit)
}

func (s *Store) IsOpen() bool {
	return s.uow.IsOpen()
}

// Factory hands out a fresh Store per operation, giving each in-flight
// request its own transaction instead of the single shared connection the
// original design serialized on.
type Factory struct {
	db *gorm.DB
}

func NewFactory(db *gorm.DB) *Factory {
	return &Factory{
		db: db,
	}
}

func (f *Factory) NewStore() *Store {
	return NewStore(f.db)
}
