package model

import "hotelbooking/shared/model"

const (
	TableName  = "customers"
	EntityName = "customer"

	FieldID        = "id"
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldEmail     = "email"
	FieldPhone     = "phone"
)

type Customer struct {
	ID         string  `db:"id"`
	FirstName  string  `db:"first_name"`
	LastName   string  `db:"last_name"`
	Email      string  `db:"email"`
	Phone      *string `db:"phone"`
	Address    *string `db:"address"`
	City       *string `db:"city"`
	State      *string `db:"state"`
	Country    *string `db:"country"`
	PostalCode *string `db:"postal_code"`
	model.Metadata
}
