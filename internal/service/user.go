package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/100adim/project-cost-manager/internal/model"
	"github.com/100adim/project-cost-manager/internal/repository"
)

type Users interface {
	// Create returns the stored user and whether this call created it
	Create(ctx context.Context, input UserInput) (*model.User, bool, error)
	Get(ctx context.Context, id int64) (*UserDetails, error)
	List(ctx context.Context) ([]model.User, error)
}

// UserDetails is a user together with the live total of their costs
type UserDetails struct {
	ID            int64   `json:"id"`
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	Birthday      *string `json:"birthday"`
	MaritalStatus string  `json:"marital_status,omitempty"`
	Total         float64 `json:"total"`
}

type UserService struct {
	repo     repository.User
	costs    Costs
	calendar Calendar
	validate *validator.Validate
}

func NewUserService(repo repository.User, costs Costs, calendar Calendar, validate *validator.Validate) *UserService {
	return &UserService{
		repo:     repo,
		costs:    costs,
		calendar: calendar,
		validate: validate,
	}
}

func (u *UserService) Create(ctx context.Context, input UserInput) (*model.User, bool, error) {
	if err := check(u.validate, input); err != nil {
		return nil, false, err
	}
	user := &model.User{
		ID:            int64(*input.ID),
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		MaritalStatus: input.MaritalStatus,
	}
	if input.Birthday != "" {
		birthday, ok := u.calendar.parseDate(input.Birthday)
		if !ok {
			return nil, false, invalid("Invalid birthday format")
		}
		user.Birthday = &birthday
	}

	existing, err := u.repo.Get(ctx, user.ID)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	err = u.repo.Create(ctx, user)
	if errors.Is(err, repository.ErrDuplicate) {
		// created concurrently, return the stored one
		existing, err = u.repo.Get(ctx, user.ID)
		if err != nil {
			return nil, false, err
		}
		if existing == nil {
			return nil, false, fmt.Errorf("user %d is duplicate but couldn't be read back", user.ID)
		}
		return existing, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	logrus.Infof("user %d created", user.ID)
	return user, true, nil
}

func (u *UserService) Get(ctx context.Context, id int64) (*UserDetails, error) {
	user, err := u.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errUserNotFound
	}

	total, err := u.costs.Total(ctx, id)
	if err != nil {
		return nil, err
	}

	details := &UserDetails{
		ID:            user.ID,
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		MaritalStatus: user.MaritalStatus,
		Total:         total,
	}
	if user.Birthday != nil {
		birthday := user.Birthday.In(u.calendar.Location).Format(dateLayout)
		details.Birthday = &birthday
	}
	return details, nil
}

func (u *UserService) List(ctx context.Context) ([]model.User, error) {
	return u.repo.List(ctx)
}
