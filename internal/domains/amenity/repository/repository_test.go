package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotelbooking/infras/otel/mocks"
	"hotelbooking/infras/postgres"
	"hotelbooking/internal/domains/amenity/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepository(t *testing.T) (repository.Amenity, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	conn := postgres.NewFromDB(sqlx.NewDb(db, "postgres"), time.Second)

	return repository.New(conn, mocks.NewOtel()), mock
}

func TestAmenityRepository_ListByHotelIDs(t *testing.T) {
	repo, mock := newRepository(t)

	rows := sqlmock.NewRows([]string{"owner_id", "id", "name", "description", "icon"}).
		AddRow("hotel-1", "amenity-1", "Pool", "Outdoor pool", nil).
		AddRow("hotel-2", "amenity-2", "Wifi", nil, "wifi")

	mock.ExpectQuery(`FROM hotel_amenities ha\s+JOIN amenities a ON a.id = ha.amenity_id\s+WHERE ha.hotel_id IN \(\$1, \$2\)`).
		WithArgs("hotel-1", "hotel-2").
		WillReturnRows(rows)

	result, err := repo.ListByHotelIDs(context.Background(), []string{"hotel-1", "hotel-2"})

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "hotel-1", result[0].OwnerID)
	assert.Equal(t, "Pool", result[0].Name)
	require.NotNil(t, result[0].Description)
	assert.Equal(t, "Outdoor pool", *result[0].Description)
	assert.Nil(t, result[0].Icon)
	assert.Equal(t, "wifi", *result[1].Icon)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAmenityRepository_ListByRoomTypeIDs(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectQuery(`FROM room_amenities ra\s+JOIN amenities a ON a.id = ra.amenity_id\s+WHERE ra.room_type_id IN \(\$1\)`).
		WithArgs("type-1").
		WillReturnRows(sqlmock.NewRows([]string{"owner_id", "id", "name", "description", "icon"}).
			AddRow("type-1", "amenity-3", "Minibar", nil, nil))

	result, err := repo.ListByRoomTypeIDs(context.Background(), []string{"type-1"})

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "type-1", result[0].OwnerID)
	assert.Equal(t, "Minibar", result[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAmenityRepository_EmptyIDsSkipsQuery(t *testing.T) {
	repo, mock := newRepository(t)

	result, err := repo.ListByHotelIDs(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, result)
	assert.NotNil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAmenityRepository_QueryError(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectQuery(`FROM hotel_amenities`).
		WithArgs("hotel-1").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.ListByHotelIDs(context.Background(), []string{"hotel-1"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
	assert.NoError(t, mock.ExpectationsWereMet())
}
