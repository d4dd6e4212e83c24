package repository

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"

	"car-fleet-api/internal/model"
)

var carRows = []string{"id", "brand", "model", "year", "price", "registration_date", "mileage", "fuel_type", "created_at"}

func TestCarRepository_List(t *testing.T) {
	mock := newMockPool(t)
	r := NewCarRepository(mock)
	ctx := context.Background()
	created := time.Date(2026, time.February, 1, 10, 0, 0, 0, time.UTC)
	price := 45000.0
	regDate := time.Date(2022, time.May, 10, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT id, brand, model, year, price, registration_date, mileage, fuel_type, created_at FROM cars ORDER BY id DESC`).
		WillReturnRows(pgxmock.NewRows(carRows).
			AddRow(int64(2), "Toyota", "Corolla", 2022, &price, &regDate, 15000, "petrol", created).
			AddRow(int64(1), "Fiat", "Panda", 2015, (*float64)(nil), (*time.Time)(nil), 90000, "petrol", created))

	cars, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, cars, 2)
	require.Equal(t, int64(2), cars[0].ID)
	require.Equal(t, "Toyota", cars[0].Brand)
	require.NotNil(t, cars[0].Price)
	require.Equal(t, 45000.0, *cars[0].Price)
	require.Equal(t, "2022-05-10", cars[0].RegistrationDate.String())
	require.Nil(t, cars[1].Price)
	require.Nil(t, cars[1].RegistrationDate)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCarRepository_Get(t *testing.T) {
	mock := newMockPool(t)
	r := NewCarRepository(mock)
	ctx := context.Background()
	created := time.Date(2026, time.February, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT id, brand, model, year, price, registration_date, mileage, fuel_type, created_at FROM cars WHERE id = \$1`).
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows(carRows).
			AddRow(int64(7), "Skoda", "Octavia", 2019, (*float64)(nil), (*time.Time)(nil), 42000, "diesel", created))

	car, err := r.Get(ctx, 7)
	require.NoError(t, err)
	require.Equal(t, "Skoda", car.Brand)
	require.Equal(t, 42000, car.Mileage)

	mock.ExpectQuery(`SELECT id, brand, model, year, price, registration_date, mileage, fuel_type, created_at FROM cars WHERE id = \$1`).
		WithArgs(int64(999999)).
		WillReturnError(pgx.ErrNoRows)

	_, err = r.Get(ctx, 999999)
	require.ErrorIs(t, err, model.ErrCarNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCarRepository_Create(t *testing.T) {
	mock := newMockPool(t)
	r := NewCarRepository(mock)
	ctx := context.Background()
	created := time.Date(2026, time.February, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`INSERT INTO cars \(brand, model, year, price, registration_date, mileage, fuel_type\)`).
		WithArgs("Toyota", "Corolla", 2022, (*float64)(nil), nil, 15000, "petrol").
		WillReturnRows(pgxmock.NewRows(carRows).
			AddRow(int64(3), "Toyota", "Corolla", 2022, (*float64)(nil), (*time.Time)(nil), 15000, "petrol", created))

	car, err := r.Create(ctx, model.Car{
		Brand:    "Toyota",
		Model:    "Corolla",
		Year:     2022,
		Mileage:  15000,
		FuelType: "petrol",
	})
	require.NoError(t, err)
	require.Equal(t, int64(3), car.ID)
	require.Equal(t, created, car.CreatedAt)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCarRepository_Update(t *testing.T) {
	mock := newMockPool(t)
	r := NewCarRepository(mock)
	ctx := context.Background()
	created := time.Date(2026, time.February, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`UPDATE cars SET brand = \$2, model = \$3, year = \$4, price = \$5, registration_date = \$6, mileage = \$7, fuel_type = \$8 WHERE id = \$1`).
		WithArgs(int64(3), "Toyota", "Corolla", 2023, (*float64)(nil), nil, 20000, "hybrid").
		WillReturnRows(pgxmock.NewRows(carRows).
			AddRow(int64(3), "Toyota", "Corolla", 2023, (*float64)(nil), (*time.Time)(nil), 20000, "hybrid", created))

	car, err := r.Update(ctx, 3, model.Car{
		Brand:    "Toyota",
		Model:    "Corolla",
		Year:     2023,
		Mileage:  20000,
		FuelType: "hybrid",
	})
	require.NoError(t, err)
	require.Equal(t, "hybrid", car.FuelType)

	mock.ExpectQuery(`UPDATE cars SET`).
		WithArgs(int64(999999), "X", "Y", 2020, (*float64)(nil), nil, 0, "petrol").
		WillReturnError(pgx.ErrNoRows)

	_, err = r.Update(ctx, 999999, model.Car{Brand: "X", Model: "Y", Year: 2020, FuelType: "petrol"})
	require.ErrorIs(t, err, model.ErrCarNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCarRepository_Delete(t *testing.T) {
	mock := newMockPool(t)
	r := NewCarRepository(mock)
	ctx := context.Background()
	created := time.Date(2026, time.February, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`DELETE FROM cars WHERE id = \$1 RETURNING`).
		WithArgs(int64(4)).
		WillReturnRows(pgxmock.NewRows(carRows).
			AddRow(int64(4), "Fiat", "Panda", 2015, (*float64)(nil), (*time.Time)(nil), 90000, "petrol", created))

	car, err := r.Delete(ctx, 4)
	require.NoError(t, err)
	require.Equal(t, "Fiat", car.Brand)

	mock.ExpectQuery(`DELETE FROM cars WHERE id = \$1 RETURNING`).
		WithArgs(int64(999999)).
		WillReturnError(pgx.ErrNoRows)

	_, err = r.Delete(ctx, 999999)
	require.ErrorIs(t, err, model.ErrCarNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCarRepository_Count(t *testing.T) {
	mock := newMockPool(t)
	r := NewCarRepository(mock)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM cars`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(12))

	count, err := r.Count(context.Background())
	require.NoError(t, err)
	require.Equal(t, 12, count)

	require.NoError(t, mock.ExpectationsWereMet())
}
