package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"car-fleet-api/internal/model"
)

type carService interface {
	List(ctx context.Context) ([]model.Car, error)
	Get(ctx context.Context, id int64) (model.Car, error)
	Create(ctx context.Context, req model.CarRequest) (model.Car, error)
	Update(ctx context.Context, id int64, req model.CarRequest) (model.Car, error)
	Delete(ctx context.Context, id int64) (model.Car, error)
}

type CarHandler struct {
	service carService
}

func NewCarHandler(service carService) *CarHandler {
	return &CarHandler{service: service}
}

// List handles GET /api/cars. The body is a bare array, newest first.
func (h *CarHandler) List(w http.ResponseWriter, r *http.Request) {
	cars, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, cars)
}

// Get handles GET /api/cars/{id}.
func (h *CarHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := carID(w, r)
	if !ok {
		return
	}

	car, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, car)
}

// Create handles POST /api/cars.
func (h *CarHandler) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.CarRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		badJSON(w)
		return
	}

	car, err := h.service.Create(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, model.CarMutationResponse{
		Message: "car added successfully",
		Car:     car,
	})
}

// Update handles PUT /api/cars/{id}.
func (h *CarHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := carID(w, r)
	if !ok {
		return
	}

	defer r.Body.Close()

	var payload model.CarRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		badJSON(w)
		return
	}

	car, err := h.service.Update(r.Context(), id, payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.CarMutationResponse{
		Message: "car updated successfully",
		Car:     car,
	})
}

// Delete handles DELETE /api/cars/{id}.
func (h *CarHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := carID(w, r)
	if !ok {
		return
	}

	car, err := h.service.Delete(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.CarMutationResponse{
		Message: "car deleted successfully",
		Car:     car,
	})
}

// carID parses the {id} route parameter. A non-numeric id can never name
// an existing car, so it reports not found.
func carID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, model.ErrCarNotFound)
		return 0, false
	}
	return id, true
}
