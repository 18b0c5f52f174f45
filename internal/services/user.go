package services

import (
	"context"

	"github.com/linkhive/apiserver/internal/store"
	"github.com/linkhive/apiserver/types"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	GetByID(ctx context.Context, q store.Querier, id int) (types.User, error)
	GetByUsername(ctx context.Context, q store.Querier, username string) (types.User, error)
	GetByEmail(ctx context.Context, q store.Querier, email string) (types.User, error)
	Create(ctx context.Context, q store.Querier, user types.User) (types.User, error)
}

// UserService encapsulates user use-cases.
type UserService struct {
	db   store.Querier
	repo UserRepository
}

func NewUserService(db store.Querier, repo UserRepository) *UserService {
	return &UserService{db: db, repo: repo}
}

func (s *UserService) GetByID(ctx context.Context, id int) (types.User, error) {
	return s.repo.GetByID(ctx, s.db, id)
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (types.User, error) {
	return s.repo.GetByUsername(ctx, s.db, username)
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (types.User, error) {
	return s.repo.GetByEmail(ctx, s.db, email)
}

func (s *UserService) Create(ctx context.Context, user types.User) (types.User, error) {
	return s.repo.Create(ctx, s.db, user)
}
