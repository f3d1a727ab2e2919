package model

import (
	"hotelbooking/shared/model"
	"hotelbooking/shared/timezone"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID         = "id"
	FieldCustomerID = "customer_id"
	FieldRoomID     = "room_id"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusRefunded = "refunded"
	PaymentStatusFailed   = "failed"
)

type Booking struct {
	ID              string          `db:"id"`
	CustomerID      string          `db:"customer_id"`
	RoomID          string          `db:"room_id"`
	CheckInDate     time.Time       `db:"check_in_date"`
	CheckOutDate    time.Time       `db:"check_out_date"`
	Adults          int             `db:"adults"`
	Children        int             `db:"children"`
	TotalPrice      decimal.Decimal `db:"total_price"`
	SpecialRequests *string         `db:"special_requests"`
	Status          string          `db:"status"`
	PaymentStatus   string          `db:"payment_status"`
	model.Metadata
}

// BookingDetail is a booking joined with its customer, room, room type and hotel.
type BookingDetail struct {
	Booking
	CustomerFirstName string          `column:"first_name"      db:"customer_first_name" table:"customers"`
	CustomerLastName  string          `column:"last_name"       db:"customer_last_name"  table:"customers"`
	CustomerEmail     string          `column:"email"           db:"customer_email"      table:"customers"`
	CustomerPhone     *string         `column:"phone"           db:"customer_phone"      table:"customers"`
	RoomNumber        string          `column:"room_number"     db:"room_number"         table:"rooms"`
	Floor             *string         `column:"floor"           db:"floor"               table:"rooms"`
	PricePerNight     decimal.Decimal `column:"price_per_night" db:"price_per_night"     table:"rooms"`
	RoomTypeName      string          `column:"name"            db:"room_type_name"      table:"room_types"`
	HotelID           string          `column:"id"              db:"hotel_id"            table:"hotels"`
	HotelName         string          `column:"name"            db:"hotel_name"          table:"hotels"`
	HotelAddress      string          `column:"address"         db:"hotel_address"       table:"hotels"`
	HotelCity         string          `column:"city"            db:"hotel_city"          table:"hotels"`
	HotelState        string          `column:"state"           db:"hotel_state"         table:"hotels"`
	HotelCountry      string          `column:"country"         db:"hotel_country"       table:"hotels"`
	HotelPhone        string          `column:"phone"           db:"hotel_phone"         table:"hotels"`
	HotelEmail        string          `column:"email"           db:"hotel_email"         table:"hotels"`
	CheckInTime       string          `column:"check_in_time"   db:"check_in_time"       table:"hotels"`
	CheckOutTime      string          `column:"check_out_time"  db:"check_out_time"      table:"hotels"`
}

func (BookingDetail) GetJoinQuery() string {
	return "JOIN customers ON customers.id = bookings.customer_id " +
		"JOIN rooms ON rooms.id = bookings.room_id " +
		"JOIN room_types ON room_types.id = rooms.room_type_id " +
		"JOIN hotels ON hotels.id = rooms.hotel_id"
}

// Nights is the whole-day length of a stay, never less than one.
func Nights(checkIn, checkOut time.Time) int {
	return max(1, timezone.DaysBetween(checkIn, checkOut))
}

// TotalPrice charges pricePerNight for each night.
func TotalPrice(pricePerNight decimal.Decimal, nights int) decimal.Decimal {
	return pricePerNight.Mul(decimal.NewFromInt(int64(nights)))
}
