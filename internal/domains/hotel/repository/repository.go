package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotelbooking/infras/otel"
	"hotelbooking/infras/postgres"
	"hotelbooking/internal/domains/hotel/model"
	"hotelbooking/shared/constant"
	gDto "hotelbooking/shared/dto"
	"hotelbooking/shared/logger"
	gRepo "hotelbooking/shared/repository"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

const lowestPricesQuery = `SELECT hotel_id, MIN(price_per_night) AS lowest_price
	FROM rooms
	WHERE hotel_id IN (?)
	GROUP BY hotel_id`

type Hotel interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Hotel, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Hotel, error)
	GetLowestPrices(ctx context.Context, hotelIDs []string) (map[string]decimal.Decimal, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Hotel]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Hotel {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Hotel](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// GetLowestPrices returns the minimum price_per_night per hotel. Hotels
// without rooms are absent from the result.
func (r *repositoryImpl) GetLowestPrices(ctx context.Context, hotelIDs []string) (map[string]decimal.Decimal, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".hotel.GetLowestPrices")
	defer scope.End()

	prices := make(map[string]decimal.Decimal, len(hotelIDs))
	if len(hotelIDs) == 0 {
		return prices, nil
	}

	query, args, err := sqlx.In(lowestPricesQuery, hotelIDs)
	if err != nil {
		scope.TraceError(err)

		return prices, fmt.Errorf("failed to build query (%s): %w", model.EntityName, err)
	}

	query = r.db.Read.Rebind(query)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	rows := []model.LowestPrice{}
	if err = r.db.Read.SelectContext(ctx, &rows, query, args...); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return prices, fmt.Errorf("failed to get lowest prices (%s): %w", model.EntityName, err)
	}

	for _, row := range rows {
		prices[row.HotelID] = row.Price
	}

	return prices, nil
}
