package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"TRIPVANA_BACK-END/internal/core"
	"TRIPVANA_BACK-END/internal/dto"
	"TRIPVANA_BACK-END/internal/utils"
)

// TripsHandler serves the public trip catalog
type TripsHandler struct {
	trips *core.TripService
}

// NewTripsHandler creates a new TripsHandler
func NewTripsHandler(trips *core.TripService) *TripsHandler {
	return &TripsHandler{trips: trips}
}

// Trips dispatches /api/trips requests by path shape
func (h *TripsHandler) Trips(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/trips"), "/")
	if rest == "" {
		h.ListTrips(w, r)
		return
	}
	parts := strings.Split(rest, "/")
	switch {
	case len(parts) == 1:
		h.TripDetail(w, r, parts[0])
	case len(parts) == 2 && parts[1] == "availability":
		h.TripAvailability(w, r, parts[0])
	case len(parts) == 2 && parts[1] == "images":
		h.TripImages(w, r, parts[0])
	default:
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "Unknown trips path")
	}
}

// ListTrips handles GET /api/trips with filters and pagination
// @Summary List published trips
// @Tags trips
// @Produce json
// @Param destination query string false "destination substring"
// @Param min_price query int false "minimum price"
// @Param max_price query int false "maximum price"
// @Param start_date query string false "earliest start date (YYYY-MM-DD)"
// @Param limit query int false "items per page"
// @Param offset query int false "offset"
// @Success 200 {object} dto.TripListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/trips [get]
func (h *TripsHandler) ListTrips(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := core.TripFilter{
		Destination: strings.TrimSpace(q.Get("destination")),
		Limit:       20,
	}
	if v := q.Get("min_price"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.MinPrice = &n
		}
	}
	if v := q.Get("max_price"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.MaxPrice = &n
		}
	}
	if v := q.Get("start_date"); v != "" {
		t, err := utils.ParseDate(v)
		if err != nil {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "start_date must be YYYY-MM-DD")
			return
		}
		filter.StartDateFrom = &t
	}
	if n, err := strconv.Atoi(q.Get("limit")); err == nil && n > 0 {
		filter.Limit = n
	}
	if n, err := strconv.Atoi(q.Get("offset")); err == nil && n >= 0 {
		filter.Offset = n
	}

	trips, err := h.trips.ListPublic(r.Context(), filter)
	if err != nil {
		utils.WriteCoreError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, toTripListResponse(trips, filter.Limit, filter.Offset))
}

// TripDetail handles GET /api/trips/{slug}
// @Summary Get trip by slug
// @Tags trips
// @Produce json
// @Param slug path string true "Trip slug"
// @Success 200 {object} dto.TripResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/trips/{slug} [get]
func (h *TripsHandler) TripDetail(w http.ResponseWriter, r *http.Request, slug string) {
	trip, err := h.trips.GetBySlug(r.Context(), slug)
	if err != nil {
		utils.WriteCoreError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, toTripResponse(trip))
}

// TripAvailability handles GET /api/trips/{slug}/availability
// @Summary Get remaining seats for a trip
// @Tags trips
// @Produce json
// @Param slug path string true "Trip slug"
// @Success 200 {object} dto.AvailabilityResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/trips/{slug}/availability [get]
func (h *TripsHandler) TripAvailability(w http.ResponseWriter, r *http.Request, slug string) {
	trip, err := h.trips.GetBySlug(r.Context(), slug)
	if err != nil {
		utils.WriteCoreError(w, err)
		return
	}
	available, err := h.trips.AvailableSeats(r.Context(), trip.ID)
	if err != nil {
		utils.WriteCoreError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.AvailabilityResponse{
		TripID:         trip.ID.String(),
		TotalSeats:     trip.TotalSeats,
		AvailableSeats: available,
	})
}

// TripImages handles GET /api/trips/{slug}/images
// @Summary List trip images
// @Tags trips
// @Produce json
// @Param slug path string true "Trip slug"
// @Success 200 {object} dto.TripImageListResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/trips/{slug}/images [get]
func (h *TripsHandler) TripImages(w http.ResponseWriter, r *http.Request, slug string) {
	trip, err := h.trips.GetBySlug(r.Context(), slug)
	if err != nil {
		utils.WriteCoreError(w, err)
		return
	}
	images, err := h.trips.ListImages(r.Context(), trip.ID)
	if err != nil {
		utils.WriteCoreError(w, err)
		return
	}
	items := make([]dto.TripImageResponse, 0, len(images))
	for i := range images {
		items = append(items, toImageResponse(&images[i]))
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.TripImageListResponse{Images: items})
}
