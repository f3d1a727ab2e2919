package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"errors"
	"fmt"

	"hotelbooking/config"
	"hotelbooking/infras/metrics"
	"hotelbooking/infras/otel"
	"hotelbooking/internal/domains/booking/model"
	"hotelbooking/internal/domains/booking/model/dto"
	"hotelbooking/internal/domains/booking/repository"
	customerRepository "hotelbooking/internal/domains/customer/repository"
	roomModel "hotelbooking/internal/domains/room/model"
	roomRepository "hotelbooking/internal/domains/room/repository"
	"hotelbooking/shared"
	"hotelbooking/shared/cache"
	"hotelbooking/shared/constant"
	"hotelbooking/shared/failure"
	"hotelbooking/shared/validator"

	"github.com/rs/zerolog/log"
)

const (
	cacheIdempotencyKey = "booking:idempotency"
	idempotencyPending  = "pending"
)

// Booking request states, in order. Any state can move to stateFailed.
const (
	stateDraft            = "DRAFT"
	stateValidated        = "VALIDATED"
	stateCustomerResolved = "CUSTOMER_RESOLVED"
	statePersisted        = "PERSISTED"
	stateConfirmed        = "CONFIRMED"
	stateFailed           = "FAILED"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.CreateBookingResponse, error)
	Get(ctx context.Context, id string) (dto.BookingConfirmationResponse, error)
}

type serviceImpl struct {
	repo         repository.Booking
	roomRepo     roomRepository.Room
	customerRepo customerRepository.Customer
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	repo repository.Booking,
	roomRepo roomRepository.Room,
	customerRepo customerRepository.Customer,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:         repo,
		roomRepo:     roomRepo,
		customerRepo: customerRepo,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

// Create validates the request against the room, upserts the customer by email
// and stores a pending booking priced from the room's nightly rate. Overlapping
// stays are not checked.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.CreateBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()

	transition := func(state string) {
		log.Info().Str("room_id", req.RoomID).Str("booking_id", res.BookingID).Str("state", state).Msg("booking state changed")
		scope.AddEvent("booking." + state)
	}

	defer func() {
		if err == nil {
			return
		}

		scope.TraceError(err)
		transition(stateFailed)
		metrics.IncBookingFailure(string(failure.GetKind(err)))
	}()

	transition(stateDraft)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	checkIn, checkOut, err := req.StayDates()
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	replayID, claimed, err := s.claim(ctx, req.IdempotencyKey)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	if replayID != constant.Empty {
		log.Info().Str("booking_id", replayID).Msg("booking replayed for idempotency key")
		res.BookingID = replayID

		return res, nil
	}

	if claimed {
		defer func() {
			if err != nil {
				s.release(ctx, req.IdempotencyKey)
			}
		}()
	}

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("room_id", req.RoomID).Msg("failed to get room for booking")

		return res, failure.Query(err) //nolint:wrapcheck
	}

	if room.ID == constant.Empty {
		return res, failure.PersistenceFromString(fmt.Sprintf("room %s does not exist", req.RoomID)) //nolint:wrapcheck
	}

	if !room.IsAvailable {
		return res, failure.NotAvailable(room.ID) //nolint:wrapcheck
	}

	if req.Adults > room.MaxAdults() {
		return res, failure.Validation("adults", fmt.Sprintf("must not exceed %d for this room", room.MaxAdults())) //nolint:wrapcheck
	}

	if req.Children > room.MaxChildren() {
		return res, failure.Validation("children", fmt.Sprintf("must not exceed %d for this room", room.MaxChildren())) //nolint:wrapcheck
	}

	transition(stateValidated)

	customerID, err := s.customerRepo.Upsert(ctx, req.ToCustomer())
	if err != nil {
		log.Error().Err(err).Msg("failed to upsert customer")

		return res, failure.Persistence(err) //nolint:wrapcheck
	}

	transition(stateCustomerResolved)

	booking := req.ToModel(customerID, checkIn, checkOut, model.TotalPrice(room.PricePerNight, model.Nights(checkIn, checkOut)))

	if err = s.repo.Insert(ctx, booking); err != nil {
		event := log.Error().Err(err).Str("room_id", req.RoomID)
		if constraint, ok := shared.ConstraintViolation(err); ok {
			event = event.Str("constraint", constraint)
		}

		event.Msg("failed to insert booking")

		return res, failure.Persistence(err) //nolint:wrapcheck
	}

	res.BookingID = booking.ID
	transition(statePersisted)

	metrics.IncBookingCreated()
	s.remember(ctx, req.IdempotencyKey, booking.ID)

	transition(stateConfirmed)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingConfirmationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if validator.ValidateVar(id, "required,uuid") != nil {
		return res, failure.NotFound(model.EntityName, id) //nolint:wrapcheck
	}

	detail, err := s.repo.GetDetail(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get booking")

		return res, failure.Query(err) //nolint:wrapcheck
	}

	if detail.ID == constant.Empty {
		return res, failure.NotFound(model.EntityName, id) //nolint:wrapcheck
	}

	res.FromModel(detail)

	return res, nil
}

// claim reserves key for this request with a pending marker. A key already
// holding a booking id returns that id for replay; a key still pending belongs
// to a request in flight and yields a conflict. Cache outages skip the claim.
func (s *serviceImpl) claim(ctx context.Context, key string) (replayID string, claimed bool, err error) {
	if key == constant.Empty {
		return constant.Empty, false, nil
	}

	cacheKey := shared.BuildCacheKey(cacheIdempotencyKey, key)

	claimed, err = s.cache.SaveNX(ctx, cacheKey, idempotencyPending, s.pendingSeconds())
	if err != nil {
		log.Warn().Err(err).Msg("failed to claim idempotency key, creating booking")

		return constant.Empty, false, nil
	}

	if claimed {
		return constant.Empty, true, nil
	}

	var id string

	err = s.cache.Get(ctx, cacheKey, &id)
	if err != nil && !errors.Is(err, cache.Nil) {
		log.Warn().Err(err).Msg("failed to read idempotency key")
	}

	if err != nil || id == idempotencyPending {
		return constant.Empty, false, failure.Conflict(fmt.Sprintf("a booking for idempotency key %s is already in progress", key)) //nolint:wrapcheck
	}

	return id, false, nil
}

// release frees a claimed key after a failed attempt so the client can retry.
func (s *serviceImpl) release(ctx context.Context, key string) {
	if err := s.cache.Delete(context.WithoutCancel(ctx), shared.BuildCacheKey(cacheIdempotencyKey, key)); err != nil {
		log.Error().Err(err).Msg("failed to release idempotency key")
	}
}

func (s *serviceImpl) remember(ctx context.Context, key, bookingID string) {
	if key == constant.Empty {
		return
	}

	c := context.WithoutCancel(ctx)

	if err := s.cache.Save(c, shared.BuildCacheKey(cacheIdempotencyKey, key), bookingID, s.cfg.App.Booking.IdempotencyTTLSeconds); err != nil {
		log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to save idempotency key")
	}
}

func (s *serviceImpl) pendingSeconds() int {
	if pending := s.cfg.App.Booking.IdempotencyPendingSeconds; pending > 0 {
		return pending
	}

	return s.cfg.App.Booking.IdempotencyTTLSeconds
}
