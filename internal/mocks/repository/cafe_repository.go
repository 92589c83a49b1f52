// Package repository provides testify mocks of the domain repository
// interfaces, in mockery's expecter layout.
package repository

import (
	"context"

	"cafemap/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockCafeRepository is a mock of repository.CafeRepository.
type MockCafeRepository struct {
	mock.Mock
}

type MockCafeRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockCafeRepository) EXPECT() *MockCafeRepository_Expecter {
	return &MockCafeRepository_Expecter{mock: &_m.Mock}
}

// FindCafeByID provides a mock function with given fields: ctx, id
func (_m *MockCafeRepository) FindCafeByID(ctx context.Context, id uuid.UUID) (*entity.Cafe, error) {
	ret := _m.Called(ctx, id)

	var r0 *entity.Cafe
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) *entity.Cafe); ok {
		r0 = rf(ctx, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Cafe)
	}

	return r0, ret.Error(1)
}

type MockCafeRepository_FindCafeByID_Call struct {
	*mock.Call
}

func (_e *MockCafeRepository_Expecter) FindCafeByID(ctx any, id any) *MockCafeRepository_FindCafeByID_Call {
	return &MockCafeRepository_FindCafeByID_Call{Call: _e.mock.On("FindCafeByID", ctx, id)}
}

func (_c *MockCafeRepository_FindCafeByID_Call) Return(cafe *entity.Cafe, err error) *MockCafeRepository_FindCafeByID_Call {
	_c.Call.Return(cafe, err)
	return _c
}

// FindCafesInBounds provides a mock function with given fields: ctx, bounds
func (_m *MockCafeRepository) FindCafesInBounds(ctx context.Context, bounds entity.Bounds) ([]*entity.Cafe, error) {
	ret := _m.Called(ctx, bounds)

	var r0 []*entity.Cafe
	if rf, ok := ret.Get(0).(func(context.Context, entity.Bounds) []*entity.Cafe); ok {
		r0 = rf(ctx, bounds)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Cafe)
	}

	return r0, ret.Error(1)
}

type MockCafeRepository_FindCafesInBounds_Call struct {
	*mock.Call
}

func (_e *MockCafeRepository_Expecter) FindCafesInBounds(ctx any, bounds any) *MockCafeRepository_FindCafesInBounds_Call {
	return &MockCafeRepository_FindCafesInBounds_Call{Call: _e.mock.On("FindCafesInBounds", ctx, bounds)}
}

func (_c *MockCafeRepository_FindCafesInBounds_Call) Return(cafes []*entity.Cafe, err error) *MockCafeRepository_FindCafesInBounds_Call {
	_c.Call.Return(cafes, err)
	return _c
}

// UpsertCafe provides a mock function with given fields: ctx, cafe
func (_m *MockCafeRepository) UpsertCafe(ctx context.Context, cafe *entity.Cafe) error {
	ret := _m.Called(ctx, cafe)

	if rf, ok := ret.Get(0).(func(context.Context, *entity.Cafe) error); ok {
		return rf(ctx, cafe)
	}

	return ret.Error(0)
}

type MockCafeRepository_UpsertCafe_Call struct {
	*mock.Call
}

func (_e *MockCafeRepository_Expecter) UpsertCafe(ctx any, cafe any) *MockCafeRepository_UpsertCafe_Call {
	return &MockCafeRepository_UpsertCafe_Call{Call: _e.mock.On("UpsertCafe", ctx, cafe)}
}

func (_c *MockCafeRepository_UpsertCafe_Call) Return(err error) *MockCafeRepository_UpsertCafe_Call {
	_c.Call.Return(err)
	return _c
}

// NewMockCafeRepository creates a new instance of MockCafeRepository. It also
// registers a cleanup function to assert the mocks expectations.
func NewMockCafeRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCafeRepository {
	m := &MockCafeRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
