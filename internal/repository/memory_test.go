package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/100adim/project-cost-manager/internal/model"
)

func TestUserMemory_CreateGet(t *testing.T) {
	s := NewUserMemory()
	ctx := context.Background()

	user := model.User{ID: 123123, FirstName: "mosh", LastName: "israeli"}
	err := s.Create(ctx, &user)
	if err != nil {
		t.Fatal(err)
	}
	require.False(t, user.ObjectID.IsZero())
	require.Equal(t, 1, len(s.users))

	u, err := s.Get(ctx, user.ID)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, &user, u)

	u, err = s.Get(ctx, 1)
	require.NoError(t, err)
	require.Nil(t, u)
}

func TestUserMemory_CreateDuplicate(t *testing.T) {
	s := NewUserMemory()
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, &model.User{ID: 1, FirstName: "a", LastName: "b"}))
	err := s.Create(ctx, &model.User{ID: 1, FirstName: "c", LastName: "d"})
	require.ErrorIs(t, err, ErrDuplicate)

	users, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.Equal(t, "a", users[0].FirstName)
}

func TestCostMemory_GetByUserInRange(t *testing.T) {
	s := NewCostMemory()
	ctx := context.Background()

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)
	for _, c := range []model.Cost{
		{UserID: 1, Description: "last day", Category: model.Food, Sum: 3, Date: to.Add(-time.Millisecond)},
		{UserID: 1, Description: "first day", Category: model.Food, Sum: 1, Date: from},
		{UserID: 1, Description: "next month", Category: model.Food, Sum: 2, Date: to},
		{UserID: 2, Description: "other user", Category: model.Food, Sum: 4, Date: from},
	} {
		c := c
		require.NoError(t, s.Add(ctx, &c))
	}

	costs, err := s.GetByUserInRange(ctx, 1, from, to)
	require.NoError(t, err)
	require.Len(t, costs, 2)
	require.Equal(t, "first day", costs[0].Description)
	require.Equal(t, "last day", costs[1].Description)

	all, err := s.GetByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, all, 3)
}

func TestReportMemory_WriteOnce(t *testing.T) {
	s := NewReportMemory()
	ctx := context.Background()

	first := model.Report{UserID: 1, Year: 2025, Month: 2}
	require.NoError(t, s.Create(ctx, &first))
	require.ErrorIs(t, s.Create(ctx, &model.Report{UserID: 1, Year: 2025, Month: 2}), ErrDuplicate)

	stored, err := s.Get(ctx, 1, 2025, 2)
	require.NoError(t, err)
	require.Equal(t, first.ID, stored.ID)

	missing, err := s.Get(ctx, 1, 2025, 3)
	require.NoError(t, err)
	require.Nil(t, missing)
}
