package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"hotelbooking/infras/otel"
	"hotelbooking/infras/postgres"
	"hotelbooking/internal/domains/customer/model"
	"hotelbooking/shared/constant"
	gRepo "hotelbooking/shared/repository"
)

type Customer interface {
	Upsert(ctx context.Context, customer model.Customer) (string, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Customer]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Customer {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Customer](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Upsert writes the customer keyed by email. An existing row keeps its id and
// has its name and phone replaced; the id of the row written is returned.
func (r *repositoryImpl) Upsert(ctx context.Context, customer model.Customer) (string, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".customer.Upsert")
	defer scope.End()

	return r.Repository.Upsert(ctx, customer, model.FieldEmail, model.FieldFirstName, model.FieldLastName, model.FieldPhone) //nolint:wrapcheck
}
