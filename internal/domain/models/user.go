package models

import (
	"time"

	"github.com/google/uuid"
)

// User is a dashboard account. Password holds the bcrypt hash and is
// stripped before any read result leaves the service layer.
type User struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Username  string    `db:"username" json:"username"`
	Email     string    `db:"email" json:"email"`
	Role      Role      `db:"role" json:"role"`
	Password  []byte    `db:"password" json:"-"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
