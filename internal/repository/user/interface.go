// File: internal/repository/user/interface.go
package user

import (
    "context"

    "github.com/threadflow/threadflow/internal/domain"
)

// UserRepository handles user data operations.
type UserRepository interface {
    Create(ctx context.Context, user *domain.User) (*domain.User, error)
    FindByID(ctx context.Context, id string) (*domain.User, error)
    Update(ctx context.Context, user *domain.User) error
}
