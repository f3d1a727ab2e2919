package model_test

import (
	"testing"

	"hotelbooking/internal/domains/room/model"

	"github.com/stretchr/testify/assert"
)

func TestRoom_OccupancyLimits(t *testing.T) {
	tests := []struct {
		name         string
		maxOccupancy int
		wantAdults   int
		wantChildren int
	}{
		{name: "single", maxOccupancy: 1, wantAdults: 1, wantChildren: 0},
		{name: "double", maxOccupancy: 2, wantAdults: 2, wantChildren: 1},
		{name: "family", maxOccupancy: 4, wantAdults: 4, wantChildren: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			room := model.Room{MaxOccupancy: tt.maxOccupancy}

			assert.Equal(t, tt.wantAdults, room.MaxAdults())
			assert.Equal(t, tt.wantChildren, room.MaxChildren())
		})
	}
}

func TestRoom_GetJoinQuery(t *testing.T) {
	assert.Equal(t, "JOIN room_types ON room_types.id = rooms.room_type_id", model.Room{}.GetJoinQuery())
}
