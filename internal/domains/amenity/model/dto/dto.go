package dto

import "hotelbooking/internal/domains/amenity/model"

type AmenityResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
}

func (a *AmenityResponse) FromModel(model model.Amenity) {
	a.ID = model.ID
	a.Name = model.Name
	a.Description = model.Description
	a.Icon = model.Icon
}

// GroupByOwner buckets linked amenities by owner id, keeping their order.
func GroupByOwner(models []model.LinkedAmenity) map[string][]AmenityResponse {
	grouped := make(map[string][]AmenityResponse)

	for _, mod := range models {
		var amenity AmenityResponse
		amenity.FromModel(mod.Amenity)

		grouped[mod.OwnerID] = append(grouped[mod.OwnerID], amenity)
	}

	return grouped
}

// NamesByOwner is GroupByOwner flattened to amenity names.
func NamesByOwner(models []model.LinkedAmenity) map[string][]string {
	names := make(map[string][]string)

	for _, mod := range models {
		names[mod.OwnerID] = append(names[mod.OwnerID], mod.Name)
	}

	return names
}
