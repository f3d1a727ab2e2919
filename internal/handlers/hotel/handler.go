package hotel

import (
	"net/http"

	"hotelbooking/infras/otel"
	"hotelbooking/internal/domains/hotel/service"
	roomService "hotelbooking/internal/domains/room/service"
	"hotelbooking/shared/constant"
	gDto "hotelbooking/shared/dto"
	"hotelbooking/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service     service.Hotel
	roomService roomService.Room
	otel        otel.Otel
}

func New(service service.Hotel, roomService roomService.Room, otel otel.Otel) Handler {
	return Handler{
		service:     service,
		roomService: roomService,
		otel:        otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/hotels", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetHotels)
		routerGroup.Get("/{id}", handler.GetHotelByID)
		routerGroup.Get("/{id}/rooms", handler.GetHotelRooms)
	})
}

// GetHotels lists hotels, optionally narrowed by a search term.
// @Summary List hotels
// @Description List hotels ordered by name. The search term matches name, city or state case-insensitively.
// @Tags Hotel
// @Accept json
// @Produce json
// @Param search query string false "Search by name, city or state"
// @Param page query integer false "Page number, requires limit"
// @Param limit query integer false "Maximum number of hotels"
// @Success 200 {object} response.Data[dto.GetHotelsResponse] "List of hotels"
// @Failure 500 {object} response.Error
// @Router /v1/hotels [get]
func (handler *Handler) GetHotels(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHotels")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, false)

	hotels, err := handler.service.GetAll(ctx, queryParams, r.URL.Query().Get(constant.RequestParamSearch))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get hotels")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Hotels retrieved successfully")

	response.WithJSON(w, http.StatusOK, hotels)
}

// GetHotelByID retrieves a hotel by its ID.
// @Summary Get a hotel by ID
// @Description Retrieve a hotel with its amenity names.
// @Tags Hotel
// @Accept json
// @Produce json
// @Param id path string true "Hotel ID"
// @Success 200 {object} response.Data[dto.HotelDetailResponse] "Hotel details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{id} [get]
func (handler *Handler) GetHotelByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHotelByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	hotel, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to get hotel by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Hotel retrieved successfully")

	response.WithJSON(w, http.StatusOK, hotel)
}

// GetHotelRooms lists the rooms of a hotel.
// @Summary List rooms of a hotel
// @Description List a hotel's rooms ordered by room number, each with its room type and amenities. Unknown hotels yield an empty list.
// @Tags Hotel
// @Accept json
// @Produce json
// @Param id path string true "Hotel ID"
// @Success 200 {object} response.Data[roomDto.GetRoomsResponse] "List of rooms"
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{id}/rooms [get]
func (handler *Handler) GetHotelRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHotelRooms")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	rooms, err := handler.roomService.GetAllByHotel(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("hotel_id", id).Msg("failed to get hotel rooms")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Hotel rooms retrieved successfully")

	response.WithJSON(w, http.StatusOK, rooms)
}
