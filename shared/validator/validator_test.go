package validator_test

import (
	"strings"
	"testing"

	"hotelbooking/shared/failure"
	"hotelbooking/shared/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stayRequest struct {
	RoomID   string `json:"room_id"   validate:"required,uuid"`
	Email    string `json:"email"     validate:"required,email"`
	Guest    string `json:"guest"     validate:"required,notblank"`
	CheckIn  string `json:"check_in"  validate:"required,isodate"`
	Adults   int    `json:"adults"    validate:"gte=1,lte=10"`
	Board    string `json:"board"     validate:"omitempty,oneof=room_only breakfast"`
	Internal string `json:"-"         validate:"empty"`
}

func validStay() stayRequest {
	return stayRequest{
		RoomID:  "8d0f3a1e-2f4b-4c8e-9a53-6a8f1c2b7d10",
		Email:   "guest@example.com",
		Guest:   "Jane",
		CheckIn: "2025-06-01",
		Adults:  2,
	}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*stayRequest)
		field   string
		message string
	}{
		{name: "valid"},
		{
			name:    "missing room",
			mutate:  func(r *stayRequest) { r.RoomID = "" },
			field:   "room_id",
			message: "room_id: is required",
		},
		{
			name:    "room is not a uuid",
			mutate:  func(r *stayRequest) { r.RoomID = "room-1" },
			field:   "room_id",
			message: "room_id: must be a valid UUID",
		},
		{
			name:    "bad email",
			mutate:  func(r *stayRequest) { r.Email = "guest" },
			field:   "email",
			message: "email: must be a valid email address",
		},
		{
			name:    "guest of only whitespace",
			mutate:  func(r *stayRequest) { r.Guest = " \t " },
			field:   "guest",
			message: "guest: must not be blank",
		},
		{
			name:    "check in with time",
			mutate:  func(r *stayRequest) { r.CheckIn = "2025-06-01T12:00:00Z" },
			field:   "check_in",
			message: "check_in: must be a date in YYYY-MM-DD format",
		},
		{
			name:    "no adults",
			mutate:  func(r *stayRequest) { r.Adults = 0 },
			field:   "adults",
			message: "adults: must be greater than or equal to 1",
		},
		{
			name:    "too many adults",
			mutate:  func(r *stayRequest) { r.Adults = 11 },
			field:   "adults",
			message: "adults: must be less than or equal to 10",
		},
		{
			name:    "unknown board",
			mutate:  func(r *stayRequest) { r.Board = "all_inclusive" },
			field:   "board",
			message: "board: must be one of room_only breakfast",
		},
		{
			name:    "hidden field set",
			mutate:  func(r *stayRequest) { r.Internal = "x" },
			field:   "Internal",
			message: "Internal: failed on empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validStay()
			if tt.mutate != nil {
				tt.mutate(&req)
			}

			err := validator.ValidateStruct(&req)
			if tt.field == "" {
				assert.NoError(t, err)

				return
			}

			fail := failure.From(err)
			assert.Equal(t, failure.KindValidation, fail.Kind)
			assert.Equal(t, tt.field, fail.Field)
			assert.Equal(t, tt.message, fail.Message)
		})
	}
}

func TestValidateStruct_FirstFailureWins(t *testing.T) {
	req := stayRequest{}

	err := validator.ValidateStruct(&req)

	fail := failure.From(err)
	assert.Equal(t, "room_id", fail.Field)
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "plain date", value: "2024-06-01"},
		{name: "leap day", value: "2024-02-29"},
		{name: "not a leap year", value: "2023-02-29", wantErr: true},
		{name: "day first", value: "01-06-2024", wantErr: true},
		{name: "empty", value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.value, "isodate")
			if !tt.wantErr {
				assert.NoError(t, err)

				return
			}

			fail := failure.From(err)
			assert.Equal(t, "value", fail.Field)
			assert.Equal(t, failure.KindValidation, fail.Kind)
		})
	}
}

func TestValidate(t *testing.T) {
	t.Run("decodes and validates", func(t *testing.T) {
		body := `{"room_id":"8d0f3a1e-2f4b-4c8e-9a53-6a8f1c2b7d10","email":"guest@example.com","guest":"Jane","check_in":"2025-06-01","adults":2,"total_price":"1.00"}`

		var req stayRequest
		require.NoError(t, validator.Validate(strings.NewReader(body), &req))
		assert.Equal(t, 2, req.Adults)
	})

	t.Run("malformed json", func(t *testing.T) {
		var req stayRequest
		err := validator.Validate(strings.NewReader(`{"room_id":`), &req)

		fail := failure.From(err)
		assert.Equal(t, failure.KindValidation, fail.Kind)
		assert.Contains(t, fail.Message, "failed to decode request body")
	})

	t.Run("decoded but invalid", func(t *testing.T) {
		var req stayRequest
		err := validator.Validate(strings.NewReader(`{"email":"guest@example.com"}`), &req)

		assert.Equal(t, "room_id", failure.From(err).Field)
	})
}
