package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Room=MockRoomService

import (
	"context"
	"fmt"

	"hotelbooking/infras/metrics"
	"hotelbooking/infras/otel"
	amenityDto "hotelbooking/internal/domains/amenity/model/dto"
	amenityRepository "hotelbooking/internal/domains/amenity/repository"
	hotelModel "hotelbooking/internal/domains/hotel/model"
	hotelRepository "hotelbooking/internal/domains/hotel/repository"
	"hotelbooking/internal/domains/room/model"
	"hotelbooking/internal/domains/room/model/dto"
	"hotelbooking/internal/domains/room/repository"
	"hotelbooking/shared"
	"hotelbooking/shared/constant"
	gDto "hotelbooking/shared/dto"
	"hotelbooking/shared/failure"
	"hotelbooking/shared/validator"

	"github.com/rs/zerolog/log"
)

type Room interface {
	GetAllByHotel(ctx context.Context, hotelID string) (dto.GetRoomsResponse, error)
	Get(ctx context.Context, id string) (dto.RoomDetailResponse, error)
}

type serviceImpl struct {
	repo        repository.Room
	hotelRepo   hotelRepository.Hotel
	amenityRepo amenityRepository.Amenity
	otel        otel.Otel
}

func New(repo repository.Room, hotelRepo hotelRepository.Hotel, amenityRepo amenityRepository.Amenity, otel otel.Otel) Room {
	return &serviceImpl{
		repo:        repo,
		hotelRepo:   hotelRepo,
		amenityRepo: amenityRepo,
		otel:        otel,
	}
}

// GetAllByHotel lists a hotel's rooms by room number. An unknown hotel has no rooms.
func (s *serviceImpl) GetAllByHotel(ctx context.Context, hotelID string) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.GetAllByHotel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res.Warnings = []gDto.Warning{}

	if validator.ValidateVar(hotelID, "required,uuid") != nil {
		res.FromModels(nil, nil)

		return res, nil
	}

	params := gDto.QueryParams{SortBy: model.TableName + "." + model.FieldRoomNumber, SortDir: gDto.SortDirAsc}

	rooms, err := s.repo.GetAll(ctx, params, shared.FilterByID(hotelID, model.FieldHotelID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("hotel_id", hotelID).Msg("failed to get rooms")

		return res, failure.Query(err) //nolint:wrapcheck
	}

	if len(rooms) == 0 {
		res.FromModels(rooms, nil)

		return res, nil
	}

	amenities, err := s.amenityRepo.ListByRoomTypeIDs(ctx, roomTypeIDs(rooms))
	if err != nil {
		res.Warnings = append(res.Warnings, s.warn(ctx, gDto.WarningSourceAmenities, err))
	}

	res.FromModels(rooms, amenityDto.GroupByOwner(amenities))

	return res, nil
}

// Get returns a room with its hotel. Room type amenities are a secondary
// lookup: on failure the room comes back with no amenities and a warning.
func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RoomDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if validator.ValidateVar(id, "required,uuid") != nil {
		return res, failure.NotFound(model.EntityName, id) //nolint:wrapcheck
	}

	room, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get room")

		return res, failure.Query(err) //nolint:wrapcheck
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound(model.EntityName, id) //nolint:wrapcheck
	}

	hotel, err := s.hotelRepo.Get(ctx, shared.FilterByID(room.HotelID, hotelModel.FieldID, hotelModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("hotel_id", room.HotelID).Msg("failed to get room hotel")

		return res, failure.Query(err) //nolint:wrapcheck
	}

	if hotel.ID == constant.Empty {
		err = fmt.Errorf("room %s references missing hotel %s", room.ID, room.HotelID)
		log.Error().Err(err).Msg("failed to get room hotel")

		return res, failure.Query(err) //nolint:wrapcheck
	}

	res.Warnings = []gDto.Warning{}

	amenities, err := s.amenityRepo.ListByRoomTypeIDs(ctx, []string{room.RoomTypeID})
	if err != nil {
		res.Warnings = append(res.Warnings, s.warn(ctx, gDto.WarningSourceAmenities, err))
	}

	res.RoomResponse.FromModel(room, amenityDto.GroupByOwner(amenities)[room.RoomTypeID])
	res.Hotel.FromModel(hotel)

	return res, nil
}

func (s *serviceImpl) warn(ctx context.Context, source string, err error) gDto.Warning {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.warn")
	defer scope.End()

	scope.TraceError(err)
	log.Warn().Err(err).Str("source", source).Msg("room lookup degraded")
	metrics.IncCatalogWarning(source)

	return gDto.Warning{
		Source:  source,
		Message: source + " lookup failed",
	}
}

func roomTypeIDs(rooms []model.Room) []string {
	seen := make(map[string]struct{}, len(rooms))
	ids := make([]string, 0, len(rooms))

	for _, room := range rooms {
		if _, ok := seen[room.RoomTypeID]; ok {
			continue
		}

		seen[room.RoomTypeID] = struct{}{}
		ids = append(ids, room.RoomTypeID)
	}

	return ids
}
