package booking_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hotelbooking/infras/otel/mocks"
	bookingMocks "hotelbooking/internal/domains/booking/mocks"
	"hotelbooking/internal/domains/booking/model/dto"
	"hotelbooking/internal/handlers/booking"
	"hotelbooking/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const (
	bookingID = "9b2f0a34-1d2c-4e5f-8a9b-0c1d2e3f4a5b"
	roomID    = "7c9e6679-7425-40de-944b-e07fc1f90ae7"
)

const validBody = `{
	"room_id": "` + roomID + `",
	"check_in_date": "2025-06-01",
	"check_out_date": "2025-06-04",
	"adults": 2,
	"children": 0,
	"first_name": "Jane",
	"last_name": "Doe",
	"email": "jane@example.com",
	"total_price": "1.00"
}`

func setup(t *testing.T) (*bookingMocks.MockBookingService, http.Handler) {
	t.Helper()

	svc := bookingMocks.NewMockBookingService(gomock.NewController(t))

	handler := booking.New(svc, mocks.NewOtel())
	router := chi.NewRouter()
	handler.Router(router)

	return svc, router
}

func TestHandler_CreateBooking(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		key        string
		setupMock  func(svc *bookingMocks.MockBookingService)
		wantStatus int
		wantBody   string
	}{
		{
			name: "created",
			body: validBody,
			key:  "retry-123",
			setupMock: func(svc *bookingMocks.MockBookingService) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, req dto.CreateBookingRequest) (dto.CreateBookingResponse, error) {
						assert.Equal(t, "retry-123", req.IdempotencyKey)
						assert.Equal(t, roomID, req.RoomID)

						return dto.CreateBookingResponse{BookingID: bookingID}, nil
					})
			},
			wantStatus: http.StatusCreated,
			wantBody:   `{"data":{"booking_id":"` + bookingID + `"}}`,
		},
		{
			name:       "malformed json",
			body:       `{"room_id":`,
			setupMock:  func(*bookingMocks.MockBookingService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing email",
			body:       strings.Replace(validBody, `"jane@example.com"`, `""`, 1),
			setupMock:  func(*bookingMocks.MockBookingService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "room not available",
			body: validBody,
			setupMock: func(svc *bookingMocks.MockBookingService) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dto.CreateBookingResponse{}, failure.NotAvailable(roomID))
			},
			wantStatus: http.StatusConflict,
			wantBody:   `{"error":{"kind":"not_available","entity":"room","id":"` + roomID + `","message":"room ` + roomID + ` is not available"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := setup(t)
			tt.setupMock(svc)

			req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			if tt.key != "" {
				req.Header.Set("Idempotency-Key", tt.key)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestHandler_GetBookingByID(t *testing.T) {
	t.Run("confirmation", func(t *testing.T) {
		svc, router := setup(t)

		svc.EXPECT().Get(gomock.Any(), bookingID).Return(dto.BookingConfirmationResponse{
			ID:         bookingID,
			Nights:     3,
			TotalPrice: "600.00",
		}, nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bookings/"+bookingID, nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"total_price":"600.00"`)
		assert.Contains(t, rec.Body.String(), `"nights":3`)
	})

	t.Run("not found", func(t *testing.T) {
		svc, router := setup(t)

		svc.EXPECT().Get(gomock.Any(), "missing").Return(dto.BookingConfirmationResponse{}, failure.NotFound("booking", "missing"))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bookings/missing", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
