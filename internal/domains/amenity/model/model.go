package model

const (
	TableName             = "amenities"
	HotelAmenityTableName = "hotel_amenities"
	RoomAmenityTableName  = "room_amenities"
	EntityName            = "amenity"

	FieldID          = "id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldIcon        = "icon"
)

type Amenity struct {
	ID          string  `db:"id"`
	Name        string  `db:"name"`
	Description *string `db:"description"`
	Icon        *string `db:"icon"`
}

// LinkedAmenity is an amenity row together with the hotel or room type it is attached to.
type LinkedAmenity struct {
	OwnerID string `db:"owner_id"`
	Amenity
}
