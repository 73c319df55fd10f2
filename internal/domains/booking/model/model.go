package model

import "time"

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID            = "id"
	FieldCustomerName  = "customer_name"
	FieldCustomerEmail = "customer_email"
	FieldDay           = "day"
	FieldTime          = "time"
	FieldBookedAt      = "booked_at"
	FieldRating        = "rating"
	FieldComment       = "comment"
	FieldRatedAt       = "rated_at"
)

// Booking is one appointment held by a customer. Rating fields stay NULL
// until the customer rates the visit; RatedAt doubles as the rated-once
// guard.
type Booking struct {
	ID            string     `db:"id"`
	CustomerName  string     `db:"customer_name"`
	CustomerEmail string     `db:"customer_email"`
	Day           string     `db:"day"`
	Time          string     `db:"time"`
	BookedAt      time.Time  `db:"booked_at"`
	Rating        *int       `db:"rating"`
	Comment       *string    `db:"comment"`
	RatedAt       *time.Time `db:"rated_at"`
}

// Rated reports whether the booking has already been rated.
func (b *Booking) Rated() bool {
	return b.RatedAt != nil
}
