// File: internal/dtos/user.go
package dtos

import (
    "time"

    "github.com/threadflow/threadflow/internal/domain"
)

// UserResponseDTO defines what fields to expose in user API responses.
type UserResponseDTO struct {
    ID        string `json:"id"`
    Email     string `json:"email,omitempty"`
    Name      string `json:"name,omitempty"`
    Image     string `json:"image,omitempty"`
    CreatedAt string `json:"created_at"`
    UpdatedAt string `json:"updated_at"`
}

// UserFromDomain maps a domain.User to UserResponseDTO.
func UserFromDomain(user domain.User) UserResponseDTO {
    return UserResponseDTO{
        ID:        user.ID,
        Email:     user.Email,
        Name:      user.Name,
        Image:     user.Image,
        CreatedAt: user.CreatedAt.Format(time.RFC3339),
        UpdatedAt: user.UpdatedAt.Format(time.RFC3339),
    }
}
