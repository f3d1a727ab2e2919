package dto_test

import (
	"testing"

	amenityDto "hotelbooking/internal/domains/amenity/model/dto"
	"hotelbooking/internal/domains/hotel/model"
	"hotelbooking/internal/domains/hotel/model/dto"
	gDto "hotelbooking/shared/dto"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHotelsResponse_FromModels(t *testing.T) {
	hotels := []model.Hotel{
		{ID: "hotel-1", Name: "Azure Bay", City: "Lisbon"},
		{ID: "hotel-2", Name: "Birch Lodge", City: "Oslo"},
	}

	res := dto.GetHotelsResponse{}
	res.FromModels(hotels,
		map[string][]string{"hotel-1": {"Pool", "Wifi"}},
		map[string]decimal.Decimal{"hotel-1": decimal.RequireFromString("89.5")},
	)

	require.Len(t, res.Hotels, 2)
	assert.Equal(t, "Azure Bay", res.Hotels[0].Name)
	assert.Equal(t, []string{"Pool", "Wifi"}, res.Hotels[0].Amenities)
	require.NotNil(t, res.Hotels[0].LowestPrice)
	assert.Equal(t, "89.50", *res.Hotels[0].LowestPrice)

	assert.Equal(t, []string{}, res.Hotels[1].Amenities)
	assert.Nil(t, res.Hotels[1].LowestPrice)
	assert.Equal(t, []gDto.Warning{}, res.Warnings)
}

func TestGetHotelsResponse_FromModelsKeepsWarnings(t *testing.T) {
	res := dto.GetHotelsResponse{Warnings: []gDto.Warning{{Source: gDto.WarningSourceAmenities, Message: "amenities unavailable"}}}
	res.FromModels(nil, nil, nil)

	assert.Equal(t, []dto.HotelSummary{}, res.Hotels)
	assert.Len(t, res.Warnings, 1)
}

func TestHotelDetailResponse_FromModel(t *testing.T) {
	website := "https://azure.example"
	hotel := model.Hotel{ID: "hotel-1", Name: "Azure Bay", Website: &website, CheckInTime: "15:00:00"}

	res := dto.HotelDetailResponse{}
	res.FromModel(hotel, nil)

	assert.Equal(t, "hotel-1", res.ID)
	assert.Equal(t, &website, res.Website)
	assert.Equal(t, "15:00:00", res.CheckInTime)
	assert.Equal(t, []amenityDto.AmenityResponse{}, res.Amenities)
	assert.Equal(t, []gDto.Warning{}, res.Warnings)
}
