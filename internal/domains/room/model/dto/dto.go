package dto

import (
	amenityDto "hotelbooking/internal/domains/amenity/model/dto"
	hotelDto "hotelbooking/internal/domains/hotel/model/dto"
	"hotelbooking/internal/domains/room/model"
	gDto "hotelbooking/shared/dto"
)

type RoomTypeResponse struct {
	Name         string                       `json:"name"`
	Description  *string                      `json:"description"`
	MaxOccupancy int                          `json:"max_occupancy"`
	Amenities    []amenityDto.AmenityResponse `json:"amenities"`
}

type RoomResponse struct {
	ID            string           `json:"id"`
	HotelID       string           `json:"hotel_id"`
	RoomTypeID    string           `json:"room_type_id"`
	RoomNumber    string           `json:"room_number"`
	Floor         *string          `json:"floor"`
	PricePerNight string           `json:"price_per_night"`
	IsAvailable   bool             `json:"is_available"`
	RoomType      RoomTypeResponse `json:"room_type"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room, amenities []amenityDto.AmenityResponse) {
	r.ID = model.ID
	r.HotelID = model.HotelID
	r.RoomTypeID = model.RoomTypeID
	r.RoomNumber = model.RoomNumber
	r.Floor = model.Floor
	r.PricePerNight = model.PricePerNight.StringFixed(2)
	r.IsAvailable = model.IsAvailable
	r.RoomType = RoomTypeResponse{
		Name:         model.RoomTypeName,
		Description:  model.RoomTypeDescription,
		MaxOccupancy: model.MaxOccupancy,
		Amenities:    amenities,
	}

	if r.RoomType.Amenities == nil {
		r.RoomType.Amenities = []amenityDto.AmenityResponse{}
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms    []RoomResponse `json:"rooms"`
	Warnings []gDto.Warning `json:"warnings"`
}

// FromModels attaches each room's amenities by room type id.
func (r *GetRoomsResponse) FromModels(models []model.Room, amenities map[string][]amenityDto.AmenityResponse) {
	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod, amenities[mod.RoomTypeID])
	}

	if r.Warnings == nil {
		r.Warnings = []gDto.Warning{}
	}
}

// RoomDetailResponse is a room with its hotel nested.
type RoomDetailResponse struct {
	RoomResponse
	Hotel    hotelDto.HotelResponse `json:"hotel"`
	Warnings []gDto.Warning         `json:"warnings"`
}
