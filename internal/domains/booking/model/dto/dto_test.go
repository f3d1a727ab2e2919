package dto_test

import (
	"testing"
	"time"

	"hotelbooking/internal/domains/booking/model"
	"hotelbooking/internal/domains/booking/model/dto"
	"hotelbooking/shared/failure"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBookingRequest_StayDates(t *testing.T) {
	tests := []struct {
		name      string
		checkIn   string
		checkOut  string
		wantField string
	}{
		{name: "valid range", checkIn: "2025-06-01", checkOut: "2025-06-04"},
		{name: "same day", checkIn: "2025-06-01", checkOut: "2025-06-01", wantField: "check_out_date"},
		{name: "inverted", checkIn: "2025-06-04", checkOut: "2025-06-01", wantField: "check_out_date"},
		{name: "bad check in", checkIn: "06/01/2025", checkOut: "2025-06-04", wantField: "check_in_date"},
		{name: "bad check out", checkIn: "2025-06-01", checkOut: "2025-02-30", wantField: "check_out_date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.CreateBookingRequest{CheckInDate: tt.checkIn, CheckOutDate: tt.checkOut}

			checkIn, checkOut, err := req.StayDates()

			if tt.wantField != "" {
				require.Error(t, err)
				assert.Equal(t, failure.KindValidation, failure.GetKind(err))
				assert.Equal(t, tt.wantField, failure.From(err).Field)

				return
			}

			require.NoError(t, err)
			assert.True(t, checkOut.After(checkIn))
		})
	}
}

func TestCreateBookingRequest_ToCustomer(t *testing.T) {
	req := dto.CreateBookingRequest{
		FirstName: " Jane ",
		LastName:  "Doe",
		Email:     " Jane@Example.com ",
	}

	customer := req.ToCustomer()

	assert.NotEmpty(t, customer.ID)
	assert.Equal(t, "Jane", customer.FirstName)
	assert.Equal(t, "jane@example.com", customer.Email)
	assert.Nil(t, customer.Phone)
	assert.False(t, customer.CreatedAt.IsZero())

	req.Phone = "+351 555 0100"
	assert.Equal(t, "+351 555 0100", *req.ToCustomer().Phone)
}

func TestCreateBookingRequest_ToModel(t *testing.T) {
	req := dto.CreateBookingRequest{
		RoomID:          "room-1",
		Adults:          2,
		Children:        1,
		SpecialRequests: "late arrival",
	}
	checkIn := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	checkOut := checkIn.AddDate(0, 0, 3)

	booking := req.ToModel("customer-1", checkIn, checkOut, decimal.RequireFromString("600"))

	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, "customer-1", booking.CustomerID)
	assert.Equal(t, "room-1", booking.RoomID)
	assert.Equal(t, model.StatusPending, booking.Status)
	assert.Equal(t, model.PaymentStatusPending, booking.PaymentStatus)
	assert.Equal(t, "600.00", booking.TotalPrice.StringFixed(2))
	assert.Equal(t, "late arrival", *booking.SpecialRequests)
}

func TestBookingConfirmationResponse_FromModel(t *testing.T) {
	detail := model.BookingDetail{
		Booking: model.Booking{
			ID:            "booking-1",
			RoomID:        "room-1",
			CheckInDate:   time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			CheckOutDate:  time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC),
			Adults:        2,
			TotalPrice:    decimal.RequireFromString("600"),
			Status:        model.StatusPending,
			PaymentStatus: model.PaymentStatusPending,
		},
		CustomerFirstName: "Jane",
		CustomerEmail:     "jane@example.com",
		RoomNumber:        "101",
		PricePerNight:     decimal.RequireFromString("200"),
		RoomTypeName:      "Double",
		HotelID:           "hotel-1",
		HotelName:         "Azure Bay",
		CheckInTime:       "15:00:00",
	}

	res := dto.BookingConfirmationResponse{}
	res.FromModel(detail)

	assert.Equal(t, "booking-1", res.ID)
	assert.Equal(t, "2025-06-01", res.CheckInDate)
	assert.Equal(t, "2025-06-04", res.CheckOutDate)
	assert.Equal(t, 3, res.Nights)
	assert.Equal(t, "600.00", res.TotalPrice)
	assert.Equal(t, "200.00", res.Room.PricePerNight)
	assert.Equal(t, "Double", res.Room.RoomTypeName)
	assert.Equal(t, "Jane", res.Customer.FirstName)
	assert.Equal(t, "Azure Bay", res.Hotel.Name)
	assert.Equal(t, "15:00:00", res.Hotel.CheckInTime)
}
