package dto

import (
	"strings"
	"time"

	"hotelbooking/internal/domains/booking/model"
	customerModel "hotelbooking/internal/domains/customer/model"
	gDto "hotelbooking/shared/dto"
	"hotelbooking/shared/failure"
	gModel "hotelbooking/shared/model"
	"hotelbooking/shared/timezone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateBookingRequest carries no price: the total is always computed from the
// room's nightly rate.
type CreateBookingRequest struct {
	RoomID          string `json:"room_id"          validate:"required,uuid"`
	CheckInDate     string `json:"check_in_date"    validate:"required,isodate"`
	CheckOutDate    string `json:"check_out_date"   validate:"required,isodate"`
	Adults          int    `json:"adults"           validate:"min=1"`
	Children        int    `json:"children"         validate:"min=0"`
	FirstName       string `json:"first_name"       validate:"required,notblank,max=100"`
	LastName        string `json:"last_name"        validate:"required,notblank,max=100"`
	Email           string `json:"email"            validate:"required,email,max=255"`
	Phone           string `json:"phone"            validate:"omitempty,max=50"`
	SpecialRequests string `json:"special_requests" validate:"omitempty,max=2000"`
	IdempotencyKey  string `json:"-"                validate:"omitempty,max=255"`
}

// StayDates parses the stay and requires check-out strictly after check-in.
func (c *CreateBookingRequest) StayDates() (checkIn, checkOut time.Time, err error) {
	checkIn, err = timezone.ParseDate(c.CheckInDate)
	if err != nil {
		return checkIn, checkOut, failure.Validation("check_in_date", "must be a date in YYYY-MM-DD format") //nolint:wrapcheck
	}

	checkOut, err = timezone.ParseDate(c.CheckOutDate)
	if err != nil {
		return checkIn, checkOut, failure.Validation("check_out_date", "must be a date in YYYY-MM-DD format") //nolint:wrapcheck
	}

	if !checkOut.After(checkIn) {
		return checkIn, checkOut, failure.Validation("check_out_date", "must be after check_in_date") //nolint:wrapcheck
	}

	return checkIn, checkOut, nil
}

func (c *CreateBookingRequest) ToCustomer() customerModel.Customer {
	now := timezone.Now()

	return customerModel.Customer{
		ID:        uuid.NewString(),
		FirstName: strings.TrimSpace(c.FirstName),
		LastName:  strings.TrimSpace(c.LastName),
		Email:     strings.ToLower(strings.TrimSpace(c.Email)),
		Phone:     optional(c.Phone),
		Metadata: gModel.Metadata{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

func (c *CreateBookingRequest) ToModel(customerID string, checkIn, checkOut time.Time, totalPrice decimal.Decimal) model.Booking {
	now := timezone.Now()

	return model.Booking{
		ID:              uuid.NewString(),
		CustomerID:      customerID,
		RoomID:          c.RoomID,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		Adults:          c.Adults,
		Children:        c.Children,
		TotalPrice:      totalPrice,
		SpecialRequests: optional(c.SpecialRequests),
		Status:          model.StatusPending,
		PaymentStatus:   model.PaymentStatusPending,
		Metadata: gModel.Metadata{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

type CreateBookingResponse struct {
	BookingID string `json:"booking_id"`
}

type CustomerResponse struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone"`
}

type RoomResponse struct {
	ID            string  `json:"id"`
	RoomNumber    string  `json:"room_number"`
	Floor         *string `json:"floor"`
	RoomTypeName  string  `json:"room_type_name"`
	PricePerNight string  `json:"price_per_night"`
}

type HotelResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Address      string `json:"address"`
	City         string `json:"city"`
	State        string `json:"state"`
	Country      string `json:"country"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	CheckInTime  string `json:"check_in_time"`
	CheckOutTime string `json:"check_out_time"`
}

// BookingConfirmationResponse is everything the guest needs to see after booking.
type BookingConfirmationResponse struct {
	ID              string           `json:"id"`
	Status          string           `json:"status"`
	PaymentStatus   string           `json:"payment_status"`
	CheckInDate     string           `json:"check_in_date"`
	CheckOutDate    string           `json:"check_out_date"`
	Nights          int              `json:"nights"`
	Adults          int              `json:"adults"`
	Children        int              `json:"children"`
	TotalPrice      string           `json:"total_price"`
	SpecialRequests *string          `json:"special_requests"`
	Customer        CustomerResponse `json:"customer"`
	Room            RoomResponse     `json:"room"`
	Hotel           HotelResponse    `json:"hotel"`
	gDto.Metadata
}

func (b *BookingConfirmationResponse) FromModel(model model.BookingDetail) {
	b.ID = model.ID
	b.Status = model.Status
	b.PaymentStatus = model.PaymentStatus
	b.CheckInDate = timezone.FormatDate(model.CheckInDate)
	b.CheckOutDate = timezone.FormatDate(model.CheckOutDate)
	b.Nights = nights(model)
	b.Adults = model.Adults
	b.Children = model.Children
	b.TotalPrice = model.TotalPrice.StringFixed(2)
	b.SpecialRequests = model.SpecialRequests
	b.Customer = CustomerResponse{
		FirstName: model.CustomerFirstName,
		LastName:  model.CustomerLastName,
		Email:     model.CustomerEmail,
		Phone:     model.CustomerPhone,
	}
	b.Room = RoomResponse{
		ID:            model.RoomID,
		RoomNumber:    model.RoomNumber,
		Floor:         model.Floor,
		RoomTypeName:  model.RoomTypeName,
		PricePerNight: model.PricePerNight.StringFixed(2),
	}
	b.Hotel = HotelResponse{
		ID:           model.HotelID,
		Name:         model.HotelName,
		Address:      model.HotelAddress,
		City:         model.HotelCity,
		State:        model.HotelState,
		Country:      model.HotelCountry,
		Phone:        model.HotelPhone,
		Email:        model.HotelEmail,
		CheckInTime:  model.CheckInTime,
		CheckOutTime: model.CheckOutTime,
	}
	b.Metadata.FromModel(model.Metadata)
}

func nights(detail model.BookingDetail) int {
	return model.Nights(detail.CheckInDate, detail.CheckOutDate)
}

func optional(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	return &value
}
