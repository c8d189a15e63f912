package entity

import (
	"time"

	"github.com/google/uuid"
)

// Booking is the only entity. The trip column holds the human-readable
// route and date string built by the form, e.g.
// "White Tower → Perea (01/06/2024)". ID and CreatedAt are assigned by
// the store on insert.
type Booking struct {
	ID        uuid.UUID `db:"id"`
	Customer  string    `db:"customer"`
	Trip      string    `db:"trip"`
	Seats     int       `db:"seats"`
	CreatedAt time.Time `db:"created_at"`
}
