package dto

import (
	"time"

	"github.com/google/uuid"

	"turnero/internal/domains/booking/model"
	"turnero/shared"
	"turnero/shared/timezone"
)

type CreateBookingRequest struct {
	CustomerName  string `json:"customer_name" validate:"required,max=255"`
	CustomerEmail string `json:"customer_email" validate:"required,email,max=255"`
	Day           string `json:"day" validate:"required,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	Time          string `json:"time" validate:"required,hhmm"`
}

func (c *CreateBookingRequest) ToModel() model.Booking {
	return model.Booking{
		ID:            uuid.NewString(),
		CustomerName:  c.CustomerName,
		CustomerEmail: c.CustomerEmail,
		Day:           c.Day,
		Time:          c.Time,
		BookedAt:      timezone.Now(),
	}
}

type RateBookingRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"omitempty,max=1000"`
}

type BookingResponse struct {
	ID            string     `json:"id"`
	CustomerName  string     `json:"customer_name"`
	CustomerEmail string     `json:"customer_email"`
	Day           string     `json:"day"`
	Time          string     `json:"time"`
	BookedAt      time.Time  `json:"booked_at"`
	Rating        *int       `json:"rating,omitempty"`
	Comment       *string    `json:"comment,omitempty"`
	RatedAt       *time.Time `json:"rated_at,omitempty"`
}

func (r *BookingResponse) FromModel(mod model.Booking) {
	r.ID = mod.ID
	r.CustomerName = mod.CustomerName
	r.CustomerEmail = mod.CustomerEmail
	r.Day = mod.Day
	r.Time = mod.Time
	r.BookedAt = mod.BookedAt
	r.Rating = mod.Rating
	r.Comment = mod.Comment
	r.RatedAt = mod.RatedAt
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// RatingResponse is the owner-facing view of one rated booking.
type RatingResponse struct {
	BookingID    string    `json:"booking_id"`
	CustomerName string    `json:"customer_name"`
	Day          string    `json:"day"`
	Time         string    `json:"time"`
	Rating       int       `json:"rating"`
	Comment      *string   `json:"comment,omitempty"`
	RatedAt      time.Time `json:"rated_at"`
}

type GetRatingsResponse struct {
	Ratings   []RatingResponse `json:"ratings"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetRatingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Ratings = make([]RatingResponse, 0, len(models))

	for _, mod := range models {
		if mod.Rating == nil || mod.RatedAt == nil {
			continue
		}

		r.Ratings = append(r.Ratings, RatingResponse{
			BookingID:    mod.ID,
			CustomerName: mod.CustomerName,
			Day:          mod.Day,
			Time:         mod.Time,
			Rating:       *mod.Rating,
			Comment:      mod.Comment,
			RatedAt:      *mod.RatedAt,
		})
	}
}
