package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"hotelbooking/infras/otel"
	"hotelbooking/infras/postgres"
	"hotelbooking/internal/domains/booking/model"
	"hotelbooking/shared/constant"
	gDto "hotelbooking/shared/dto"
	gRepo "hotelbooking/shared/repository"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	GetDetail(ctx context.Context, filter gDto.FilterGroup) (model.BookingDetail, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	details gRepo.Repository[model.BookingDetail]
	db      *postgres.Connection
	otel    otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		details:    gRepo.NewRepository[model.BookingDetail](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// GetDetail returns a zero BookingDetail when no booking matches.
func (r *repositoryImpl) GetDetail(ctx context.Context, filter gDto.FilterGroup) (model.BookingDetail, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.GetDetail")
	defer scope.End()

	return r.details.Get(ctx, filter) //nolint:wrapcheck
}
