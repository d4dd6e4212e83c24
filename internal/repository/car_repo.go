package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"car-fleet-api/internal/model"
)

type CarRepository struct {
	pool Querier
}

func NewCarRepository(pool Querier) *CarRepository {
	return &CarRepository{pool: pool}
}

const carColumns = `id, brand, model, year, price, registration_date, mileage, fuel_type, created_at`

// List returns all cars, newest first.
func (r *CarRepository) List(ctx context.Context) ([]model.Car, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+carColumns+` FROM cars ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list cars: %w", err)
	}
	defer rows.Close()

	cars := make([]model.Car, 0)
	for rows.Next() {
		car, err := scanCar(rows)
		if err != nil {
			return nil, fmt.Errorf("scan car: %w", err)
		}
		cars = append(cars, car)
	}
	return cars, rows.Err()
}

func (r *CarRepository) Get(ctx context.Context, id int64) (model.Car, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+carColumns+` FROM cars WHERE id = $1`, id)

	car, err := scanCar(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Car{}, model.ErrCarNotFound
	}
	if err != nil {
		return model.Car{}, fmt.Errorf("get car: %w", err)
	}
	return car, nil
}

func (r *CarRepository) Create(ctx context.Context, car model.Car) (model.Car, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO cars (brand, model, year, price, registration_date, mileage, fuel_type)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+carColumns,
		car.Brand, car.Model, car.Year, car.Price, dateArg(car.RegistrationDate), car.Mileage, car.FuelType)

	created, err := scanCar(row)
	if err != nil {
		return model.Car{}, fmt.Errorf("create car: %w", err)
	}
	return created, nil
}

// Update replaces every field of the car in place.
func (r *CarRepository) Update(ctx context.Context, id int64, car model.Car) (model.Car, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE cars
		 SET brand = $2, model = $3, year = $4, price = $5, registration_date = $6, mileage = $7, fuel_type = $8
		 WHERE id = $1
		 RETURNING `+carColumns,
		id, car.Brand, car.Model, car.Year, car.Price, dateArg(car.RegistrationDate), car.Mileage, car.FuelType)

	updated, err := scanCar(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Car{}, model.ErrCarNotFound
	}
	if err != nil {
		return model.Car{}, fmt.Errorf("update car: %w", err)
	}
	return updated, nil
}

func (r *CarRepository) Delete(ctx context.Context, id int64) (model.Car, error) {
	row := r.pool.QueryRow(ctx,
		`DELETE FROM cars WHERE id = $1 RETURNING `+carColumns, id)

	deleted, err := scanCar(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Car{}, model.ErrCarNotFound
	}
	if err != nil {
		return model.Car{}, fmt.Errorf("delete car: %w", err)
	}
	return deleted, nil
}

func (r *CarRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM cars`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count cars: %w", err)
	}
	return count, nil
}

func scanCar(row pgx.Row) (model.Car, error) {
	var car model.Car
	var regDate *time.Time

	err := row.Scan(&car.ID, &car.Brand, &car.Model, &car.Year, &car.Price,
		&regDate, &car.Mileage, &car.FuelType, &car.CreatedAt)
	if err != nil {
		return model.Car{}, err
	}

	if regDate != nil {
		car.RegistrationDate = &model.Date{Time: *regDate}
	}
	return car, nil
}

func dateArg(d *model.Date) any {
	if d == nil {
		return nil
	}
	return d.Time
}
