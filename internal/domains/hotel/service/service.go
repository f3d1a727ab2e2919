package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Hotel=MockHotelService

import (
	"context"
	"strings"

	"hotelbooking/infras/metrics"
	"hotelbooking/infras/otel"
	amenityDto "hotelbooking/internal/domains/amenity/model/dto"
	amenityRepository "hotelbooking/internal/domains/amenity/repository"
	"hotelbooking/internal/domains/hotel/model"
	"hotelbooking/internal/domains/hotel/model/dto"
	"hotelbooking/internal/domains/hotel/repository"
	"hotelbooking/shared"
	"hotelbooking/shared/constant"
	gDto "hotelbooking/shared/dto"
	"hotelbooking/shared/failure"
	"hotelbooking/shared/validator"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type Hotel interface {
	GetAll(ctx context.Context, params gDto.QueryParams, search string) (dto.GetHotelsResponse, error)
	Get(ctx context.Context, id string) (dto.HotelDetailResponse, error)
}

type serviceImpl struct {
	repo        repository.Hotel
	amenityRepo amenityRepository.Amenity
	otel        otel.Otel
}

func New(repo repository.Hotel, amenityRepo amenityRepository.Amenity, otel otel.Otel) Hotel {
	return &serviceImpl{
		repo:        repo,
		amenityRepo: amenityRepo,
		otel:        otel,
	}
}

// GetAll lists hotels whose name, city or state contains search, ignoring case,
// ordered by name. A blank search lists every hotel. Page and limit are optional.
func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, search string) (res dto.GetHotelsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".hotel.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := gDto.FilterGroup{}
	if term := strings.TrimSpace(search); term != constant.Empty {
		filter = shared.FilterContainsAny(term, model.TableName, model.FieldName, model.FieldCity, model.FieldState)
	}

	params.SortBy = model.FieldName
	params.SortDir = gDto.SortDirAsc

	hotels, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Str("search", search).Msg("failed to get hotels")

		return res, failure.Query(err) //nolint:wrapcheck
	}

	res.Warnings = []gDto.Warning{}

	if len(hotels) == 0 {
		res.FromModels(hotels, nil, nil)

		return res, nil
	}

	ids := make([]string, len(hotels))
	for i, hotel := range hotels {
		ids[i] = hotel.ID
	}

	var amenityNames map[string][]string

	amenities, err := s.amenityRepo.ListByHotelIDs(ctx, ids)
	if err != nil {
		res.Warnings = append(res.Warnings, s.warn(ctx, gDto.WarningSourceAmenities, err))
	} else {
		amenityNames = amenityDto.NamesByOwner(amenities)
	}

	var prices map[string]decimal.Decimal

	prices, err = s.repo.GetLowestPrices(ctx, ids)
	if err != nil {
		res.Warnings = append(res.Warnings, s.warn(ctx, gDto.WarningSourceLowestPrice, err))
		prices = nil
	}

	res.FromModels(hotels, amenityNames, prices)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.HotelDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".hotel.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if validator.ValidateVar(id, "required,uuid") != nil {
		return res, failure.NotFound(model.EntityName, id) //nolint:wrapcheck
	}

	hotel, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get hotel")

		return res, failure.Query(err) //nolint:wrapcheck
	}

	if hotel.ID == constant.Empty {
		return res, failure.NotFound(model.EntityName, id) //nolint:wrapcheck
	}

	res.Warnings = []gDto.Warning{}

	amenities, err := s.amenityRepo.ListByHotelIDs(ctx, []string{hotel.ID})
	if err != nil {
		res.Warnings = append(res.Warnings, s.warn(ctx, gDto.WarningSourceAmenities, err))
	}

	res.FromModel(hotel, amenityDto.GroupByOwner(amenities)[hotel.ID])

	return res, nil
}

// warn records a failed secondary lookup; the caller keeps going without it.
func (s *serviceImpl) warn(ctx context.Context, source string, err error) gDto.Warning {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".hotel.warn")
	defer scope.End()

	scope.TraceError(err)
	log.Warn().Err(err).Str("source", source).Msg("hotel lookup degraded")
	metrics.IncCatalogWarning(source)

	return gDto.Warning{
		Source:  source,
		Message: source + " lookup failed",
	}
}
