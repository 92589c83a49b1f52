package repository

import (
	"context"

	"cafemap/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockReportRepository is a mock of repository.ReportRepository.
type MockReportRepository struct {
	mock.Mock
}

type MockReportRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockReportRepository) EXPECT() *MockReportRepository_Expecter {
	return &MockReportRepository_Expecter{mock: &_m.Mock}
}

// CreateReport provides a mock function with given fields: ctx, report
func (_m *MockReportRepository) CreateReport(ctx context.Context, report *entity.Report) error {
	ret := _m.Called(ctx, report)

	if rf, ok := ret.Get(0).(func(context.Context, *entity.Report) error); ok {
		return rf(ctx, report)
	}

	return ret.Error(0)
}

type MockReportRepository_CreateReport_Call struct {
	*mock.Call
}

func (_e *MockReportRepository_Expecter) CreateReport(ctx any, report any) *MockReportRepository_CreateReport_Call {
	return &MockReportRepository_CreateReport_Call{Call: _e.mock.On("CreateReport", ctx, report)}
}

func (_c *MockReportRepository_CreateReport_Call) Run(run func(ctx context.Context, report *entity.Report)) *MockReportRepository_CreateReport_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.Report))
	})
	return _c
}

func (_c *MockReportRepository_CreateReport_Call) Return(err error) *MockReportRepository_CreateReport_Call {
	_c.Call.Return(err)
	return _c
}

// FindLatestByCafe provides a mock function with given fields: ctx, cafeID, limit
func (_m *MockReportRepository) FindLatestByCafe(ctx context.Context, cafeID uuid.UUID, limit int) ([]*entity.Report, error) {
	ret := _m.Called(ctx, cafeID, limit)

	var r0 []*entity.Report
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, int) []*entity.Report); ok {
		r0 = rf(ctx, cafeID, limit)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Report)
	}

	return r0, ret.Error(1)
}

type MockReportRepository_FindLatestByCafe_Call struct {
	*mock.Call
}

func (_e *MockReportRepository_Expecter) FindLatestByCafe(ctx any, cafeID any, limit any) *MockReportRepository_FindLatestByCafe_Call {
	return &MockReportRepository_FindLatestByCafe_Call{Call: _e.mock.On("FindLatestByCafe", ctx, cafeID, limit)}
}

func (_c *MockReportRepository_FindLatestByCafe_Call) Return(reports []*entity.Report, err error) *MockReportRepository_FindLatestByCafe_Call {
	_c.Call.Return(reports, err)
	return _c
}

// FindLatestPerCafe provides a mock function with given fields: ctx, cafeIDs
func (_m *MockReportRepository) FindLatestPerCafe(ctx context.Context, cafeIDs []uuid.UUID) (map[uuid.UUID]*entity.Report, error) {
	ret := _m.Called(ctx, cafeIDs)

	var r0 map[uuid.UUID]*entity.Report
	if rf, ok := ret.Get(0).(func(context.Context, []uuid.UUID) map[uuid.UUID]*entity.Report); ok {
		r0 = rf(ctx, cafeIDs)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(map[uuid.UUID]*entity.Report)
	}

	return r0, ret.Error(1)
}

type MockReportRepository_FindLatestPerCafe_Call struct {
	*mock.Call
}

func (_e *MockReportRepository_Expecter) FindLatestPerCafe(ctx any, cafeIDs any) *MockReportRepository_FindLatestPerCafe_Call {
	return &MockReportRepository_FindLatestPerCafe_Call{Call: _e.mock.On("FindLatestPerCafe", ctx, cafeIDs)}
}

func (_c *MockReportRepository_FindLatestPerCafe_Call) Return(latest map[uuid.UUID]*entity.Report, err error) *MockReportRepository_FindLatestPerCafe_Call {
	_c.Call.Return(latest, err)
	return _c
}

// NewMockReportRepository creates a new instance of MockReportRepository. It also
// registers a cleanup function to assert the mocks expectations.
func NewMockReportRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockReportRepository {
	m := &MockReportRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
