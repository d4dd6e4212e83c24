package service

import (
	"context"
	"time"

	"car-fleet-api/internal/model"
	"car-fleet-api/internal/validation"
	"car-fleet-api/pkg/apierror"
)

// CarStore is the persistence the car service needs.
type CarStore interface {
	List(ctx context.Context) ([]model.Car, error)
	Get(ctx context.Context, id int64) (model.Car, error)
	Create(ctx context.Context, car model.Car) (model.Car, error)
	Update(ctx context.Context, id int64, car model.Car) (model.Car, error)
	Delete(ctx context.Context, id int64) (model.Car, error)
	Count(ctx context.Context) (int, error)
}

type CarService struct {
	cars CarStore
	now  func() time.Time
}

func NewCarService(cars CarStore) *CarService {
	return &CarService{cars: cars, now: time.Now}
}

func (s *CarService) List(ctx context.Context) ([]model.Car, error) {
	return s.cars.List(ctx)
}

func (s *CarService) Get(ctx context.Context, id int64) (model.Car, error) {
	return s.cars.Get(ctx, id)
}

// Create validates the payload and persists a new car. Nothing is stored
// when any field error is present.
func (s *CarService) Create(ctx context.Context, req model.CarRequest) (model.Car, error) {
	if fieldErrs := validation.Car(req, s.now()); len(fieldErrs) > 0 {
		return model.Car{}, apierror.NewValidation(fieldErrs)
	}

	return s.cars.Create(ctx, carFromRequest(req))
}

// Update is a full replace of every field of an existing car.
func (s *CarService) Update(ctx context.Context, id int64, req model.CarRequest) (model.Car, error) {
	if fieldErrs := validation.Car(req, s.now()); len(fieldErrs) > 0 {
		return model.Car{}, apierror.NewValidation(fieldErrs)
	}

	return s.cars.Update(ctx, id, carFromRequest(req))
}

func (s *CarService) Delete(ctx context.Context, id int64) (model.Car, error) {
	return s.cars.Delete(ctx, id)
}

func (s *CarService) TotalCars(ctx context.Context) (int, error) {
	return s.cars.Count(ctx)
}

// carFromRequest assumes the request already passed validation, so the
// required pointers are non-nil.
func carFromRequest(req model.CarRequest) model.Car {
	return model.Car{
		Brand:            req.Brand,
		Model:            req.Model,
		Year:             *req.Year,
		Price:            req.Price,
		RegistrationDate: req.RegistrationDate,
		Mileage:          *req.Mileage,
		FuelType:         req.FuelType,
	}
}
