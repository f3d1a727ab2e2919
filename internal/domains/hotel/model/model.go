package model

import (
	"hotelbooking/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "hotels"
	EntityName = "hotel"

	FieldID    = "id"
	FieldName  = "name"
	FieldCity  = "city"
	FieldState = "state"
)

type Hotel struct {
	ID           string  `db:"id"`
	Name         string  `db:"name"`
	Description  *string `db:"description"`
	Address      string  `db:"address"`
	City         string  `db:"city"`
	State        string  `db:"state"`
	Country      string  `db:"country"`
	PostalCode   *string `db:"postal_code"`
	Email        string  `db:"email"`
	Phone        string  `db:"phone"`
	Website      *string `db:"website"`
	CheckInTime  string  `db:"check_in_time"`
	CheckOutTime string  `db:"check_out_time"`
	model.Metadata
}

// LowestPrice is the cheapest nightly rate among a hotel's rooms.
type LowestPrice struct {
	HotelID string          `db:"hotel_id"`
	Price   decimal.Decimal `db:"lowest_price"`
}
