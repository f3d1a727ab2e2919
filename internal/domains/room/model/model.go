package model

import (
	"hotelbooking/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName         = "rooms"
	RoomTypeTableName = "room_types"
	EntityName        = "room"

	FieldID         = "id"
	FieldHotelID    = "hotel_id"
	FieldRoomNumber = "room_number"
)

// Room is a rooms row joined with its room type.
type Room struct {
	ID                  string          `db:"id"`
	HotelID             string          `db:"hotel_id"`
	RoomTypeID          string          `db:"room_type_id"`
	RoomNumber          string          `db:"room_number"`
	Floor               *string         `db:"floor"`
	PricePerNight       decimal.Decimal `db:"price_per_night"`
	IsAvailable         bool            `db:"is_available"`
	RoomTypeName        string          `column:"name"          db:"room_type_name"        table:"room_types"`
	RoomTypeDescription *string         `column:"description"   db:"room_type_description" table:"room_types"`
	MaxOccupancy        int             `column:"max_occupancy" db:"max_occupancy"         table:"room_types"`
	model.Metadata
}

func (Room) GetJoinQuery() string {
	return "JOIN room_types ON room_types.id = rooms.room_type_id"
}

// MaxAdults is the adult capacity of the room type.
func (r Room) MaxAdults() int {
	return r.MaxOccupancy
}

// MaxChildren is bounded by max occupancy minus one, independently of the
// number of adults.
func (r Room) MaxChildren() int {
	return r.MaxOccupancy - 1
}
