// Package userrepo maps the customers table. Users are owned by the identity
// source; the parcel core only checks that they exist.
package userrepo

import (
	"time"

	"github.com/google/uuid"
)

// UserDTO is the minimal projection of a customer account.
type UserDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username  string    `gorm:"type:varchar(150);not null;uniqueIndex:uq_users_username"`
	CreatedAt time.Time `gorm:"not null"`
}

func (UserDTO) TableName() string {
	return "users"
}
