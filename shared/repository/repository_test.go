package repository

import (
	"testing"

	"turnero/infras/otel/mocks"
	"turnero/shared/dto"
)

type orderEntity struct {
	ID            string `db:"id"`
	CustomerEmail string `db:"customer_email"`
	BookedAt      string `db:"booked_at"`
}

func TestOrderClause(t *testing.T) {
	repo := NewRepository[orderEntity]("booking", "bookings", "id", nil, mocks.NewOtel())

	tests := []struct {
		name     string
		sortBy   string
		sortDir  string
		expected string
	}{
		{
			name:     "known column ascending",
			sortBy:   "customer_email",
			sortDir:  "ASC",
			expected: "ORDER BY customer_email ASC",
		},
		{
			name:     "known column descending",
			sortBy:   "booked_at",
			sortDir:  "DESC",
			expected: "ORDER BY booked_at DESC",
		},
		{
			name:     "lowercase direction is normalized",
			sortBy:   "booked_at",
			sortDir:  "desc",
			expected: "ORDER BY booked_at DESC",
		},
		{
			name:     "unknown column is ignored",
			sortBy:   "secret_column",
			sortDir:  "ASC",
			expected: "",
		},
		{
			name:     "injected expression is ignored",
			sortBy:   "booked_at; DROP TABLE bookings",
			sortDir:  "DESC",
			expected: "",
		},
		{
			name:     "invalid direction is ignored",
			sortBy:   "booked_at",
			sortDir:  "DESC; DROP TABLE bookings",
			expected: "",
		},
		{
			name:     "missing sort by",
			sortBy:   "",
			sortDir:  "DESC",
			expected: "",
		},
		{
			name:     "missing direction",
			sortBy:   "booked_at",
			sortDir:  "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clause := repo.orderClause(dto.QueryParams{SortBy: tt.sortBy, SortDir: tt.sortDir})

			if clause != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, clause)
			}
		})
	}
}
