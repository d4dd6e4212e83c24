package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"car-fleet-api/internal/model"
)

type mockUserStore struct {
	mock.Mock
}

func (m *mockUserStore) FindByUsername(ctx context.Context, username string) (model.User, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *mockUserStore) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserStore) Create(ctx context.Context, username string, email string, passwordHash string) (model.User, error) {
	args := m.Called(ctx, username, email, passwordHash)
	return args.Get(0).(model.User), args.Error(1)
}

type mockCarStore struct {
	mock.Mock
}

func (m *mockCarStore) List(ctx context.Context) ([]model.Car, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Car), args.Error(1)
}

func (m *mockCarStore) Get(ctx context.Context, id int64) (model.Car, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Car), args.Error(1)
}

func (m *mockCarStore) Create(ctx context.Context, car model.Car) (model.Car, error) {
	args := m.Called(ctx, car)
	return args.Get(0).(model.Car), args.Error(1)
}

func (m *mockCarStore) Update(ctx context.Context, id int64, car model.Car) (model.Car, error) {
	args := m.Called(ctx, id, car)
	return args.Get(0).(model.Car), args.Error(1)
}

func (m *mockCarStore) Delete(ctx context.Context, id int64) (model.Car, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Car), args.Error(1)
}

func (m *mockCarStore) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
