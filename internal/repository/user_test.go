package repository

import (
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/100adim/project-cost-manager/internal/model"
)

func TestUserMongo_CreateGet(t *testing.T) {
	db := testDatabase(t)
	repo := NewUserMongo(db)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	birthday := time.Date(1999, 12, 31, 0, 0, 0, 0, time.UTC)
	user := model.User{
		ID:            123123,
		FirstName:     "mosh",
		LastName:      "israeli",
		Birthday:      &birthday,
		MaritalStatus: "single",
	}
	err := repo.Create(ctx, &user)
	if err != nil {
		t.Fatal(err)
	}

	u, err := repo.Get(ctx, user.ID)
	if err != nil {
		t.Fatal(err)
	}
	logrus.Infof("received user: %v", u)
	require.Equal(t, &user, u)
}

func TestUserMongo_GetMissing(t *testing.T) {
	db := testDatabase(t)
	repo := NewUserMongo(db)

	u, err := repo.Get(context.Background(), 42)
	require.NoError(t, err)
	require.Nil(t, u)
}

func TestUserMongo_CreateDuplicate(t *testing.T) {
	db := testDatabase(t)
	repo := NewUserMongo(db)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	user := model.User{ID: 555555, FirstName: "Test", LastName: "User"}
	err := repo.Create(ctx, &user)
	if err != nil {
		t.Fatal(err)
	}

	err = repo.Create(ctx, &model.User{ID: 555555, FirstName: "Other", LastName: "User"})
	require.ErrorIs(t, err, ErrDuplicate)

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.Equal(t, "Test", users[0].FirstName)
}
