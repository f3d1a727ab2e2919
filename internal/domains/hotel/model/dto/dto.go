package dto

import (
	amenityDto "hotelbooking/internal/domains/amenity/model/dto"
	"hotelbooking/internal/domains/hotel/model"
	gDto "hotelbooking/shared/dto"

	"github.com/shopspring/decimal"
)

type HotelResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  *string `json:"description"`
	Address      string  `json:"address"`
	City         string  `json:"city"`
	State        string  `json:"state"`
	Country      string  `json:"country"`
	PostalCode   *string `json:"postal_code"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	Website      *string `json:"website"`
	CheckInTime  string  `json:"check_in_time"`
	CheckOutTime string  `json:"check_out_time"`
	gDto.Metadata
}

func (h *HotelResponse) FromModel(model model.Hotel) {
	h.ID = model.ID
	h.Name = model.Name
	h.Description = model.Description
	h.Address = model.Address
	h.City = model.City
	h.State = model.State
	h.Country = model.Country
	h.PostalCode = model.PostalCode
	h.Email = model.Email
	h.Phone = model.Phone
	h.Website = model.Website
	h.CheckInTime = model.CheckInTime
	h.CheckOutTime = model.CheckOutTime
	h.Metadata.FromModel(model.Metadata)
}

// HotelSummary is a hotel as listed in search results.
type HotelSummary struct {
	HotelResponse
	Amenities   []string `json:"amenities"`
	LowestPrice *string  `json:"lowest_price,omitempty"`
}

type GetHotelsResponse struct {
	Hotels   []HotelSummary `json:"hotels"`
	Warnings []gDto.Warning `json:"warnings"`
}

// FromModels builds the listing in the order of models. Hotels missing from
// amenities get an empty list; hotels missing from prices have no lowest price.
func (r *GetHotelsResponse) FromModels(models []model.Hotel, amenities map[string][]string, prices map[string]decimal.Decimal) {
	r.Hotels = make([]HotelSummary, len(models))

	for i, mod := range models {
		r.Hotels[i].FromModel(mod)

		r.Hotels[i].Amenities = amenities[mod.ID]
		if r.Hotels[i].Amenities == nil {
			r.Hotels[i].Amenities = []string{}
		}

		if price, ok := prices[mod.ID]; ok {
			formatted := price.StringFixed(2)
			r.Hotels[i].LowestPrice = &formatted
		}
	}

	if r.Warnings == nil {
		r.Warnings = []gDto.Warning{}
	}
}

type HotelDetailResponse struct {
	HotelResponse
	Amenities []amenityDto.AmenityResponse `json:"amenities"`
	Warnings  []gDto.Warning               `json:"warnings"`
}

func (r *HotelDetailResponse) FromModel(model model.Hotel, amenities []amenityDto.AmenityResponse) {
	r.HotelResponse.FromModel(model)

	r.Amenities = amenities
	if r.Amenities == nil {
		r.Amenities = []amenityDto.AmenityResponse{}
	}

	if r.Warnings == nil {
		r.Warnings = []gDto.Warning{}
	}
}
