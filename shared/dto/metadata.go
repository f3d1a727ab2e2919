package dto

import (
	"hotelbooking/shared/constant"
	"hotelbooking/shared/model"
	"hotelbooking/shared/timezone"
)

type Metadata struct {
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func (m *Metadata) FromModel(model model.Metadata) {
	m.CreatedAt = timezone.Format(model.CreatedAt, constant.DateFormat)
	m.UpdatedAt = timezone.Format(model.UpdatedAt, constant.DateFormat)
}

// Warning describes a sub-query that failed without failing the whole result.
type Warning struct {
	Source  string `json:"source"`
	Message string `json:"message"`
}

const (
	WarningSourceAmenities   = "amenities"
	WarningSourceLowestPrice = "lowest_price"
)
