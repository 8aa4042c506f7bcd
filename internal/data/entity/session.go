package entity

import (
	"time"

	"github.com/google/uuid"
)

type Session struct {
	Base
	UserID    int64     `db:"user_id"`
	Token     uuid.UUID `db:"token"`
	ExpiresAt time.Time `db:"expires_at"`
}
