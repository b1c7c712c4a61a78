// File: internal/repository/user/gorm_user_repository.go
package user

import (
    "context"
    "errors"
    "log"

    "github.com/threadflow/threadflow/internal/domain"
    "gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

type gormUserRepository struct {
    db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) UserRepository {
    return &gormUserRepository{db: db}
}

func (r *gormUserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
    if user.ID == "" {
        return nil, errors.New("invalid user ID")
    }

    if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
        // Secure logging - no claim values exposed
        log.Printf("[UserRepository] Database error during user creation: %v", err)
        return nil, errors.New("database error creating user")
    }

    log.Printf("[UserRepository] User created successfully with ID: %s", user.ID)
    return user, nil
}

func (r *gormUserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
    if id == "" {
        return nil, errors.New("invalid user ID")
    }

    var user domain.User
    err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
    if err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return nil, ErrUserNotFound
        }
        log.Printf("[UserRepository] Database error finding user ID %s: %v", id, err)
        return nil, errors.New("database error fetching user")
    }
    return &user, nil
}

func (r *gormUserRepository) Update(ctx context.Context, user *domain.User) error {
    if user.ID == "" {
        return errors.New("invalid user ID")
    }

    if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
        log.Printf("[UserRepository] Database error during user update for ID %s: %v", user.ID, err)
        return errors.New("database error updating user")
    }
    return nil
}
