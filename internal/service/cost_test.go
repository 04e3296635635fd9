package service

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/100adim/project-cost-manager/internal/model"
	"github.com/100adim/project-cost-manager/internal/repository/mocks"
)

func TestCostService_Add(t *testing.T) {
	users := mocks.NewUser(t)
	costs := mocks.NewCost(t)
	serv := NewCostService(users, costs, fixedCalendar(), NewValidator())
	ctx := context.Background()

	users.On("Get", ctx, int64(123123)).Return(&model.User{ID: 123123}, nil)
	costs.On("Add", ctx, mock.AnythingOfType("*model.Cost")).Return(nil)

	cost, err := serv.Add(ctx, CostInput{
		Description: "milk",
		Category:    "food",
		UserID:      userID(123123),
		Sum:         float(12.5),
	})
	require.NoError(t, err)
	require.Equal(t, "milk", cost.Description)
	require.Equal(t, model.Food, cost.Category)
	require.Equal(t, int64(123123), cost.UserID)
	require.Equal(t, model.Amount(12.5), cost.Sum)
	require.Equal(t, fixedCalendar().Now(), cost.Date)
}

func TestCostService_AddWithDate(t *testing.T) {
	users := mocks.NewUser(t)
	costs := mocks.NewCost(t)
	serv := NewCostService(users, costs, fixedCalendar(), NewValidator())
	ctx := context.Background()

	users.On("Get", ctx, int64(1)).Return(&model.User{ID: 1}, nil)
	costs.On("Add", ctx, mock.AnythingOfType("*model.Cost")).Return(nil)

	testTable := []struct {
		name string
		date string
		want time.Time
	}{
		{
			name: "Start of today",
			date: "2026-10-19",
			want: time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "Future timestamp",
			date: "2026-11-02T08:30:00Z",
			want: time.Date(2026, 11, 2, 8, 30, 0, 0, time.UTC),
		},
	}

	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			cost, err := serv.Add(ctx, CostInput{
				Description: "rent",
				Category:    "housing",
				UserID:      userID(1),
				Sum:         float(560),
				Date:        testCase.date,
			})
			require.NoError(t, err)
			require.True(t, testCase.want.Equal(cost.Date))
		})
	}
}

func TestCostService_AddValidation(t *testing.T) {
	// no expectations: the stores must not be touched
	users := mocks.NewUser(t)
	costs := mocks.NewCost(t)
	serv := NewCostService(users, costs, fixedCalendar(), NewValidator())

	valid := func() CostInput {
		return CostInput{Description: "milk", Category: "food", UserID: userID(1), Sum: float(1)}
	}

	testTable := []struct {
		name   string
		modify func(in *CostInput)
		reason string
	}{
		{name: "Missing description", modify: func(in *CostInput) { in.Description = "" }, reason: "Missing required fields"},
		{name: "Missing category", modify: func(in *CostInput) { in.Category = "" }, reason: "Missing required fields"},
		{name: "Missing userid", modify: func(in *CostInput) { in.UserID = nil }, reason: "Missing required fields"},
		{name: "Missing sum", modify: func(in *CostInput) { in.Sum = nil }, reason: "Missing required fields"},
		{name: "Invalid category", modify: func(in *CostInput) { in.Category = "drinks" }, reason: "Invalid category"},
		{name: "Zero userid", modify: func(in *CostInput) { in.UserID = userID(0) }, reason: "userid must be a positive integer"},
		{name: "NaN sum", modify: func(in *CostInput) { in.Sum = float(math.NaN()) }, reason: "sum must be a number"},
		{name: "Bad date", modify: func(in *CostInput) { in.Date = "not a date" }, reason: "Invalid date format"},
		{name: "Yesterday", modify: func(in *CostInput) { in.Date = "2026-10-18" }, reason: "Cannot add cost with a past date"},
	}

	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			in := valid()
			testCase.modify(&in)
			_, err := serv.Add(context.Background(), in)
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Equal(t, testCase.reason, validationErr.Reason)
		})
	}
}

func TestCostService_AddUnknownUser(t *testing.T) {
	users := mocks.NewUser(t)
	costs := mocks.NewCost(t)
	serv := NewCostService(users, costs, fixedCalendar(), NewValidator())
	ctx := context.Background()

	users.On("Get", ctx, int64(7)).Return(nil, nil)

	_, err := serv.Add(ctx, CostInput{Description: "milk", Category: "food", UserID: userID(7), Sum: float(1)})
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	costs.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestCostService_AddStoreFailure(t *testing.T) {
	users := mocks.NewUser(t)
	costs := mocks.NewCost(t)
	serv := NewCostService(users, costs, fixedCalendar(), NewValidator())
	ctx := context.Background()

	storeErr := errors.New("connection reset")
	users.On("Get", ctx, int64(1)).Return(&model.User{ID: 1}, nil)
	costs.On("Add", ctx, mock.Anything).Return(storeErr)

	_, err := serv.Add(ctx, CostInput{Description: "milk", Category: "food", UserID: userID(1), Sum: float(1)})
	require.ErrorIs(t, err, storeErr)
}

func TestCostService_Total(t *testing.T) {
	costs := mocks.NewCost(t)
	serv := NewCostService(mocks.NewUser(t), costs, fixedCalendar(), NewValidator())
	ctx := context.Background()

	costs.On("GetByUser", ctx, int64(1)).Return([]model.Cost{{Sum: 0.1}, {Sum: 0.2}, {Sum: 12.5}}, nil)
	costs.On("GetByUser", ctx, int64(2)).Return([]model.Cost{}, nil)

	total, err := serv.Total(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, 12.8, total)

	total, err = serv.Total(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, float64(0), total)
}
