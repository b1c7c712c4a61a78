// File: internal/services/user_services/user_service.go
package user_services

import (
    "context"
    "errors"
    "time"

    "github.com/threadflow/threadflow/internal/auth"
    "github.com/threadflow/threadflow/internal/domain"
    "github.com/threadflow/threadflow/internal/repository/user"
)

// UserService keeps stored user records in sync with the identity claims the
// auth provider asserts on each request.
type UserService struct {
    userRepo user.UserRepository
    logger   Logger
}

func NewUserService(userRepo user.UserRepository, logger Logger) *UserService {
    return &UserService{userRepo: userRepo, logger: logger}
}

// EnsureUser creates the user on first authenticated contact, or updates the
// stored profile when the token claims differ from it.
func (s *UserService) EnsureUser(ctx context.Context, claims auth.IdentityClaims) (*domain.User, error) {
    existing, err := s.userRepo.FindByID(ctx, claims.UserID)
    if err != nil {
        if !errors.Is(err, user.ErrUserNotFound) {
            return nil, err
        }

        now := time.Now()
        created := &domain.User{
            ID:        claims.UserID,
            Email:     claims.Email,
            Name:      claims.Name,
            Image:     claims.Picture,
            CreatedAt: now,
            UpdatedAt: now,
        }
        if _, err := s.userRepo.Create(ctx, created); err != nil {
            return nil, err
        }
        s.logger.Info("created new user from token", "user_id", claims.UserID)
        return created, nil
    }

    if s.applyClaims(existing, claims) {
        existing.UpdatedAt = time.Now()
        if err := s.userRepo.Update(ctx, existing); err != nil {
            return nil, err
        }
        s.logger.Info("updated user profile from token", "user_id", existing.ID)
    }
    return existing, nil
}

// GetUser returns the stored user record.
func (s *UserService) GetUser(ctx context.Context, id string) (*domain.User, error) {
    return s.userRepo.FindByID(ctx, id)
}

// applyClaims copies non-empty drifted claim values onto the user and
// reports whether anything changed.
func (s *UserService) applyClaims(u *domain.User, claims auth.IdentityClaims) bool {
    changed := false
    if claims.Email != "" && u.Email != claims.Email {
        u.Email = claims.Email
        changed = true
    }
    if claims.Name != "" && u.Name != claims.Name {
        u.Name = claims.Name
        changed = true
    }
    if claims.Picture != "" && u.Image != claims.Picture {
        u.Image = claims.Picture
        changed = true
    }
    return changed
}
