package entity

import (
	"time"
)

// Base carries the surrogate integer id assigned by the repository on insert.
// Ids are monotonic per collection and never reused after deletion.
type Base struct {
	ID        int64     `db:"id"`
	CreatedAt time.Time `db:"created_at"`
}

type BaseWithUpdate struct {
	ID        int64     `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
