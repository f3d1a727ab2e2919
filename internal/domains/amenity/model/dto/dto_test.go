package dto_test

import (
	"testing"

	"hotelbooking/internal/domains/amenity/model"
	"hotelbooking/internal/domains/amenity/model/dto"

	"github.com/stretchr/testify/assert"
)

func TestGroupByOwner(t *testing.T) {
	icon := "wifi"
	rows := []model.LinkedAmenity{
		{OwnerID: "hotel-1", Amenity: model.Amenity{ID: "a-1", Name: "Pool"}},
		{OwnerID: "hotel-2", Amenity: model.Amenity{ID: "a-2", Name: "Wifi", Icon: &icon}},
		{OwnerID: "hotel-1", Amenity: model.Amenity{ID: "a-2", Name: "Wifi", Icon: &icon}},
	}

	grouped := dto.GroupByOwner(rows)

	assert.Len(t, grouped, 2)
	assert.Equal(t, []dto.AmenityResponse{
		{ID: "a-1", Name: "Pool"},
		{ID: "a-2", Name: "Wifi", Icon: &icon},
	}, grouped["hotel-1"])
	assert.Equal(t, "wifi", *grouped["hotel-2"][0].Icon)
	assert.Nil(t, grouped["hotel-3"])
}

func TestNamesByOwner(t *testing.T) {
	rows := []model.LinkedAmenity{
		{OwnerID: "hotel-1", Amenity: model.Amenity{ID: "a-1", Name: "Pool"}},
		{OwnerID: "hotel-1", Amenity: model.Amenity{ID: "a-2", Name: "Spa"}},
	}

	assert.Equal(t, map[string][]string{"hotel-1": {"Pool", "Spa"}}, dto.NamesByOwner(rows))
	assert.Empty(t, dto.NamesByOwner(nil))
}
