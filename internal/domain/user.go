// File: internal/domain/user.go
package domain

import "time"

// User is an identity asserted by the upstream auth provider. The record is
// created lazily on first authenticated contact and refreshed whenever the
// token claims drift from the stored profile.
type User struct {
    ID        string    `json:"id" gorm:"primarykey;size:64"`
    Email     string    `json:"email,omitempty"`
    Name      string    `json:"name,omitempty"`
    Image     string    `json:"image,omitempty"`
    CreatedAt time.Time `json:"created_at"`
    UpdatedAt time.Time `json:"updated_at"`
}
