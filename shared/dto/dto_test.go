package dto_test

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"turnero/shared/constant"
	"turnero/shared/dto"
	"turnero/shared/model"
	"turnero/shared/timezone"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2023, 1, 2, 12, 0, 0, 0, time.UTC)

	modelMetadata := model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  "creator",
		ModifiedBy: "modifier",
	}

	metadata := &dto.Metadata{}
	metadata.FromModel(modelMetadata)

	expectedCreatedAt := timezone.Format(createdAt, constant.DateFormat)
	expectedModifiedAt := timezone.Format(modifiedAt, constant.DateFormat)

	if metadata.CreatedAt != expectedCreatedAt {
		t.Errorf("expected CreatedAt to be %s, got %s", expectedCreatedAt, metadata.CreatedAt)
	}

	if metadata.ModifiedAt != expectedModifiedAt {
		t.Errorf("expected ModifiedAt to be %s, got %s", expectedModifiedAt, metadata.ModifiedAt)
	}

	if metadata.CreatedBy != "creator" {
		t.Errorf("expected CreatedBy to be 'creator', got %s", metadata.CreatedBy)
	}

	if metadata.ModifiedBy != "modifier" {
		t.Errorf("expected ModifiedBy to be 'modifier', got %s", metadata.ModifiedBy)
	}
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		queryParams    map[string]string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name: "with all valid parameters",
			queryParams: map[string]string{
				"page":     "2",
				"limit":    "20",
				"sort_by":  "name",
				"sort_dir": "ASC",
			},
			defaultRequest: false,
			expected: dto.QueryParams{
				Page:    2,
				Limit:   20,
				SortBy:  "name",
				SortDir: "ASC",
			},
		},
		{
			name:           "with default request enabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage,
				Limit:   constant.DefaultValueLimit,
				SortBy:  "",
				SortDir: "",
			},
		},
		{
			name:           "with default request disabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: false,
			expected: dto.QueryParams{
				Page:    0,
				Limit:   0,
				SortBy:  "",
				SortDir: "",
			},
		},
		{
			name: "with invalid page parameter",
			queryParams: map[string]string{
				"page": "invalid",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage,
				Limit:   constant.DefaultValueLimit,
				SortBy:  "",
				SortDir: "",
			},
		},
		{
			name: "with negative page parameter",
			queryParams: map[string]string{
				"page": "-1",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage,
				Limit:   constant.DefaultValueLimit,
				SortBy:  "",
				SortDir: "",
			},
		},
		{
			name: "with invalid limit parameter",
			queryParams: map[string]string{
				"limit": "invalid",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage,
				Limit:   constant.DefaultValueLimit,
				SortBy:  "",
				SortDir: "",
			},
		},
		{
			name: "with lowercase sort direction",
			queryParams: map[string]string{
				"sort_dir": "desc",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage,
				Limit:   constant.DefaultValueLimit,
				SortBy:  "",
				SortDir: "DESC",
			},
		},
		{
			name: "with partial parameters and defaults enabled",
			queryParams: map[string]string{
				"page":    "3",
				"sort_by": "email",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    3,
				Limit:   constant.DefaultValueLimit,
				SortBy:  "email",
				SortDir: "",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			baseURL := "http://example.com/test"
			u, err := url.Parse(baseURL)
			if err != nil {
				t.Fatalf("failed to parse URL: %v", err)
			}

			query := u.Query()
			for key, value := range tt.queryParams {
				query.Set(key, value)
			}
			u.RawQuery = query.Encode()

			req, err := http.NewRequest("GET", u.String(), nil)
			if err != nil {
				t.Fatalf("failed to create request: %v", err)
			}

			queryParams := &dto.QueryParams{}
			queryParams.FromRequest(req, tt.defaultRequest)

			if queryParams.Page != tt.expected.Page {
				t.Errorf("expected Page to be %d, got %d", tt.expected.Page, queryParams.Page)
			}
			if queryParams.Limit != tt.expected.Limit {
				t.Errorf("expected Limit to be %d, got %d", tt.expected.Limit, queryParams.Limit)
			}
			if queryParams.SortBy != tt.expected.SortBy {
				t.Errorf("expected SortBy to be %s, got %s", tt.expected.SortBy, queryParams.SortBy)
			}
			if queryParams.SortDir != tt.expected.SortDir {
				t.Errorf("expected SortDir to be %s, got %s", tt.expected.SortDir, queryParams.SortDir)
			}
		})
	}
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name         string
		filter       dto.Filter
		expectedSQL  string
		expectedArgs map[string]any
	}{
		{
			name: "eq operator",
			filter: dto.Filter{
				Field:    "day",
				Operator: dto.FilterOperatorEq,
				Value:    "Monday",
				Table:    "bookings",
			},
			expectedSQL:  "bookings.day = :day",
			expectedArgs: map[string]any{"day": "Monday"},
		},
		{
			name: "ieq operator is case insensitive",
			filter: dto.Filter{
				Field:    "customer_email",
				Operator: dto.FilterOperatorIEq,
				Value:    "Ana@Example.COM",
				Table:    "bookings",
			},
			expectedSQL:  "LOWER(bookings.customer_email) = LOWER(:customer_email)",
			expectedArgs: map[string]any{"customer_email": "Ana@Example.COM"},
		},
		{
			name: "is null operator",
			filter: dto.Filter{
				Field:    "rated_at",
				Operator: dto.FilterIsNull,
				Table:    "bookings",
			},
			expectedSQL:  "bookings.rated_at IS NULL",
			expectedArgs: map[string]any{},
		},
		{
			name: "is not null operator",
			filter: dto.Filter{
				Field:    "rated_at",
				Operator: dto.FilterIsNotNull,
				Table:    "bookings",
			},
			expectedSQL:  "bookings.rated_at IS NOT NULL",
			expectedArgs: map[string]any{},
		},
		{
			name: "custom arg name",
			filter: dto.Filter{
				ArgName:  "slot_time",
				Field:    "time",
				Operator: dto.FilterOperatorEq,
				Value:    "09:00",
				Table:    "bookings",
			},
			expectedSQL:  "bookings.time = :slot_time",
			expectedArgs: map[string]any{"slot_time": "09:00"},
		},
		{
			name: "no table prefix",
			filter: dto.Filter{
				Field:    "role",
				Operator: dto.FilterOperatorNotEq,
				Value:    "owner",
			},
			expectedSQL:  "role != :role",
			expectedArgs: map[string]any{"role": "owner"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args := tt.filter.GetWhereClause()

			if sql != tt.expectedSQL {
				t.Errorf("expected SQL %q, got %q", tt.expectedSQL, sql)
			}

			if len(args) != len(tt.expectedArgs) {
				t.Errorf("expected %d args, got %d", len(tt.expectedArgs), len(args))
			}

			for key, expected := range tt.expectedArgs {
				if args[key] != expected {
					t.Errorf("expected arg %s to be %v, got %v", key, expected, args[key])
				}
			}
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{
				Field:    "day",
				Operator: dto.FilterOperatorEq,
				Value:    "Monday",
				Table:    "bookings",
			},
			dto.Filter{
				Field:    "rated_at",
				Operator: dto.FilterIsNull,
				Table:    "bookings",
			},
		},
	}

	sql, args := group.GetWhereClause()

	expected := "(bookings.day = :day AND bookings.rated_at IS NULL)"
	if sql != expected {
		t.Errorf("expected SQL %q, got %q", expected, sql)
	}

	if args["day"] != "Monday" {
		t.Errorf("expected day arg to be 'Monday', got %v", args["day"])
	}
}

func TestFilterGroup_GetWhereClause_Empty(t *testing.T) {
	group := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}

	sql, args := group.GetWhereClause()

	if sql != "" {
		t.Errorf("expected empty SQL for empty group, got %q", sql)
	}

	if len(args) != 0 {
		t.Errorf("expected no args, got %v", args)
	}
}

func TestSortDirectionConstants(t *testing.T) {
	if dto.SortDirAsc != "ASC" {
		t.Errorf("expected SortDirAsc to be 'ASC', got %s", dto.SortDirAsc)
	}
	if dto.SortDirDesc != "DESC" {
		t.Errorf("expected SortDirDesc to be 'DESC', got %s", dto.SortDirDesc)
	}
}
