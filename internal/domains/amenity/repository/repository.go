package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotelbooking/infras/otel"
	"hotelbooking/infras/postgres"
	"hotelbooking/internal/domains/amenity/model"
	"hotelbooking/shared/constant"
	"hotelbooking/shared/logger"

	"github.com/jmoiron/sqlx"
)

const (
	listByHotelQuery = `SELECT ha.hotel_id AS owner_id, a.id, a.name, a.description, a.icon
		FROM hotel_amenities ha
		JOIN amenities a ON a.id = ha.amenity_id
		WHERE ha.hotel_id IN (?)
		ORDER BY a.name ASC, a.id ASC`

	listByRoomTypeQuery = `SELECT ra.room_type_id AS owner_id, a.id, a.name, a.description, a.icon
		FROM room_amenities ra
		JOIN amenities a ON a.id = ra.amenity_id
		WHERE ra.room_type_id IN (?)
		ORDER BY a.name ASC, a.id ASC`
)

type Amenity interface {
	ListByHotelIDs(ctx context.Context, hotelIDs []string) ([]model.LinkedAmenity, error)
	ListByRoomTypeIDs(ctx context.Context, roomTypeIDs []string) ([]model.LinkedAmenity, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Amenity {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

func (r *repositoryImpl) ListByHotelIDs(ctx context.Context, hotelIDs []string) ([]model.LinkedAmenity, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".amenity.ListByHotelIDs")
	defer scope.End()

	return r.listLinked(ctx, listByHotelQuery, hotelIDs)
}

func (r *repositoryImpl) ListByRoomTypeIDs(ctx context.Context, roomTypeIDs []string) ([]model.LinkedAmenity, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".amenity.ListByRoomTypeIDs")
	defer scope.End()

	return r.listLinked(ctx, listByRoomTypeQuery, roomTypeIDs)
}

func (r *repositoryImpl) listLinked(ctx context.Context, query string, ownerIDs []string) ([]model.LinkedAmenity, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".amenity.listLinked")
	defer scope.End()

	models := []model.LinkedAmenity{}
	if len(ownerIDs) == 0 {
		return models, nil
	}

	query, args, err := sqlx.In(query, ownerIDs)
	if err != nil {
		scope.TraceError(err)

		return models, fmt.Errorf("failed to build query (%s): %w", model.EntityName, err)
	}

	query = r.db.Read.Rebind(query)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	if err = r.db.Read.SelectContext(ctx, &models, query, args...); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return models, fmt.Errorf("failed to list data (%s): %w", model.EntityName, err)
	}

	return models, nil
}
