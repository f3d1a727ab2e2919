package service_test

import (
	"context"
	"errors"
	"testing"

	"hotelbooking/infras/otel/mocks"
	amenityMocks "hotelbooking/internal/domains/amenity/mocks"
	amenityModel "hotelbooking/internal/domains/amenity/model"
	hotelMocks "hotelbooking/internal/domains/hotel/mocks"
	"hotelbooking/internal/domains/hotel/model"
	"hotelbooking/internal/domains/hotel/service"
	gDto "hotelbooking/shared/dto"
	"hotelbooking/shared/failure"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	hotelOneID = "5b0c8a9e-3f4d-4c1a-9f00-0a6b3d2e1c01"
	hotelTwoID = "5b0c8a9e-3f4d-4c1a-9f00-0a6b3d2e1c02"
)

func TestHotelService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := hotelMocks.NewMockHotel(ctrl)
	mockAmenityRepo := amenityMocks.NewMockAmenity(ctrl)

	svc := service.New(mockRepo, mockAmenityRepo, mocks.NewOtel())

	hotels := []model.Hotel{
		{ID: hotelOneID, Name: "Azure Bay", City: "Lisbon"},
		{ID: hotelTwoID, Name: "Birch Lodge", City: "Oslo"},
	}
	amenities := []amenityModel.LinkedAmenity{
		{OwnerID: hotelOneID, Amenity: amenityModel.Amenity{ID: "a-1", Name: "Pool"}},
	}

	tests := []struct {
		name         string
		search       string
		setupMock    func()
		wantErr      bool
		wantKind     failure.Kind
		wantHotels   int
		wantWarnings []string
	}{
		{
			name:   "search term matches with amenities and prices",
			search: "  bay ",
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gDto.QueryParams{SortBy: model.FieldName, SortDir: gDto.SortDirAsc}, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Hotel, error) {
						where, args := filter.GetWhereClause()
						assert.Contains(t, where, "LOWER(hotels.name)")
						assert.Contains(t, where, "LOWER(hotels.city)")
						assert.Contains(t, where, "LOWER(hotels.state)")
						assert.Equal(t, "%bay%", args["search_name"])

						return hotels[:1], nil
					})
				mockAmenityRepo.EXPECT().ListByHotelIDs(gomock.Any(), []string{hotelOneID}).Return(amenities, nil)
				mockRepo.EXPECT().GetLowestPrices(gomock.Any(), []string{hotelOneID}).
					Return(map[string]decimal.Decimal{hotelOneID: decimal.RequireFromString("99")}, nil)
			},
			wantHotels: 1,
		},
		{
			name:   "blank search lists every hotel",
			search: "   ",
			setupMock: func() {
				mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gDto.FilterGroup{}).Return(hotels, nil)
				mockAmenityRepo.EXPECT().ListByHotelIDs(gomock.Any(), []string{hotelOneID, hotelTwoID}).Return(amenities, nil)
				mockRepo.EXPECT().GetLowestPrices(gomock.Any(), gomock.Any()).Return(map[string]decimal.Decimal{}, nil)
			},
			wantHotels: 2,
		},
		{
			name: "empty catalog returns empty list without sub-queries",
			setupMock: func() {
				mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Hotel{}, nil)
			},
			wantHotels: 0,
		},
		{
			name: "amenity failure degrades to warning",
			setupMock: func() {
				mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(hotels, nil)
				mockAmenityRepo.EXPECT().ListByHotelIDs(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))
				mockRepo.EXPECT().GetLowestPrices(gomock.Any(), gomock.Any()).Return(map[string]decimal.Decimal{}, nil)
			},
			wantHotels:   2,
			wantWarnings: []string{gDto.WarningSourceAmenities},
		},
		{
			name: "price failure degrades to warning",
			setupMock: func() {
				mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(hotels, nil)
				mockAmenityRepo.EXPECT().ListByHotelIDs(gomock.Any(), gomock.Any()).Return(amenities, nil)
				mockRepo.EXPECT().GetLowestPrices(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))
			},
			wantHotels:   2,
			wantWarnings: []string{gDto.WarningSourceLowestPrice},
		},
		{
			name: "hotel query failure",
			setupMock: func() {
				mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))
			},
			wantErr:  true,
			wantKind: failure.KindQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.GetAll(context.Background(), gDto.QueryParams{}, tt.search)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, failure.GetKind(err))

				return
			}

			require.NoError(t, err)
			assert.Len(t, res.Hotels, tt.wantHotels)
			assert.NotNil(t, res.Hotels)

			sources := make([]string, 0, len(res.Warnings))
			for _, warning := range res.Warnings {
				sources = append(sources, warning.Source)
			}

			if tt.wantWarnings == nil {
				assert.Empty(t, sources)
			} else {
				assert.Equal(t, tt.wantWarnings, sources)
			}
		})
	}
}

func TestHotelService_GetAllMergesSubQueries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := hotelMocks.NewMockHotel(ctrl)
	mockAmenityRepo := amenityMocks.NewMockAmenity(ctrl)

	svc := service.New(mockRepo, mockAmenityRepo, mocks.NewOtel())

	mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Hotel{
		{ID: hotelOneID, Name: "Azure Bay"},
		{ID: hotelTwoID, Name: "Birch Lodge"},
	}, nil)
	mockAmenityRepo.EXPECT().ListByHotelIDs(gomock.Any(), gomock.Any()).Return([]amenityModel.LinkedAmenity{
		{OwnerID: hotelOneID, Amenity: amenityModel.Amenity{ID: "a-1", Name: "Pool"}},
		{OwnerID: hotelOneID, Amenity: amenityModel.Amenity{ID: "a-2", Name: "Spa"}},
	}, nil)
	mockRepo.EXPECT().GetLowestPrices(gomock.Any(), gomock.Any()).
		Return(map[string]decimal.Decimal{hotelOneID: decimal.RequireFromString("150.5")}, nil)

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{}, "")

	require.NoError(t, err)
	require.Len(t, res.Hotels, 2)
	assert.Equal(t, []string{"Pool", "Spa"}, res.Hotels[0].Amenities)
	require.NotNil(t, res.Hotels[0].LowestPrice)
	assert.Equal(t, "150.50", *res.Hotels[0].LowestPrice)
	assert.Equal(t, []string{}, res.Hotels[1].Amenities)
	assert.Nil(t, res.Hotels[1].LowestPrice)
}

func TestHotelService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := hotelMocks.NewMockHotel(ctrl)
	mockAmenityRepo := amenityMocks.NewMockAmenity(ctrl)

	svc := service.New(mockRepo, mockAmenityRepo, mocks.NewOtel())

	icon := "pool"

	tests := []struct {
		name          string
		id            string
		setupMock     func()
		wantErr       bool
		wantKind      failure.Kind
		wantAmenities int
		wantWarnings  int
	}{
		{
			name: "hotel with amenities",
			id:   hotelOneID,
			setupMock: func() {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Hotel{ID: hotelOneID, Name: "Azure Bay"}, nil)
				mockAmenityRepo.EXPECT().ListByHotelIDs(gomock.Any(), []string{hotelOneID}).Return([]amenityModel.LinkedAmenity{
					{OwnerID: hotelOneID, Amenity: amenityModel.Amenity{ID: "a-1", Name: "Pool", Icon: &icon}},
				}, nil)
			},
			wantAmenities: 1,
		},
		{
			name: "amenity failure still returns hotel",
			id:   hotelOneID,
			setupMock: func() {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Hotel{ID: hotelOneID, Name: "Azure Bay"}, nil)
				mockAmenityRepo.EXPECT().ListByHotelIDs(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))
			},
			wantWarnings: 1,
		},
		{
			name: "missing hotel",
			id:   hotelTwoID,
			setupMock: func() {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Hotel{}, nil)
			},
			wantErr:  true,
			wantKind: failure.KindNotFound,
		},
		{
			name:      "malformed id is not found",
			id:        "not-a-uuid",
			setupMock: func() {},
			wantErr:   true,
			wantKind:  failure.KindNotFound,
		},
		{
			name: "storage failure",
			id:   hotelOneID,
			setupMock: func() {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Hotel{}, errors.New("connection refused"))
			},
			wantErr:  true,
			wantKind: failure.KindQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Get(context.Background(), tt.id)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, failure.GetKind(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.id, res.ID)
			assert.Len(t, res.Amenities, tt.wantAmenities)
			assert.NotNil(t, res.Amenities)
			assert.Len(t, res.Warnings, tt.wantWarnings)
		})
	}
}

func TestHotelService_GetNotFoundCarriesContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := hotelMocks.NewMockHotel(ctrl)
	svc := service.New(mockRepo, amenityMocks.NewMockAmenity(ctrl), mocks.NewOtel())

	mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Hotel{}, nil)

	_, err := svc.Get(context.Background(), hotelOneID)

	fail := failure.From(err)
	assert.Equal(t, model.EntityName, fail.Entity)
	assert.Equal(t, hotelOneID, fail.ID)
}

func TestHotelService_GetAllPassesPaging(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := hotelMocks.NewMockHotel(ctrl)
	svc := service.New(mockRepo, amenityMocks.NewMockAmenity(ctrl), mocks.NewOtel())

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gDto.QueryParams{Page: 2, Limit: 5, SortBy: model.FieldName, SortDir: gDto.SortDirAsc}, gomock.Any()).
		Return([]model.Hotel{}, nil)

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 2, Limit: 5, SortBy: "created_at", SortDir: gDto.SortDirDesc}, "")

	require.NoError(t, err)
	assert.Empty(t, res.Hotels)
}
