package service

import (
	"context"
	"math"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/100adim/project-cost-manager/internal/model"
	"github.com/100adim/project-cost-manager/internal/repository"
)

type Costs interface {
	Add(ctx context.Context, input CostInput) (*model.Cost, error)
	Total(ctx context.Context, userID int64) (float64, error)
}

type CostService struct {
	users    repository.User
	costs    repository.Cost
	calendar Calendar
	validate *validator.Validate
}

func NewCostService(users repository.User, costs repository.Cost, calendar Calendar, validate *validator.Validate) *CostService {
	return &CostService{
		users:    users,
		costs:    costs,
		calendar: calendar,
		validate: validate,
	}
}

// Add validates the input, checks the user exists and stores a new cost
func (c *CostService) Add(ctx context.Context, input CostInput) (*model.Cost, error) {
	cost, err := c.parse(input)
	if err != nil {
		return nil, err
	}

	user, err := c.users.Get(ctx, cost.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errUserNotFound
	}

	if err = c.costs.Add(ctx, cost); err != nil {
		return nil, err
	}
	logrus.Infof("user %d added cost %s: %s %.2f", cost.UserID, cost.Category, cost.Description, float64(cost.Sum))
	return cost, nil
}

func (c *CostService) parse(input CostInput) (*model.Cost, error) {
	if err := check(c.validate, input); err != nil {
		return nil, err
	}
	if math.IsNaN(*input.Sum) || math.IsInf(*input.Sum, 0) {
		return nil, invalid("sum must be a number")
	}

	date := c.calendar.now()
	if input.Date != "" {
		parsed, ok := c.calendar.parseDate(input.Date)
		if !ok {
			return nil, invalid("Invalid date format")
		}
		if parsed.Before(c.calendar.startOfToday()) {
			return nil, invalid("Cannot add cost with a past date")
		}
		date = parsed
	}
	// the store keeps millisecond precision
	date = date.Truncate(time.Millisecond)

	return &model.Cost{
		Description: input.Description,
		Category:    model.Category(input.Category),
		UserID:      int64(*input.UserID),
		Sum:         model.Amount(*input.Sum),
		Date:        date,
	}, nil
}

// Total sums every cost of the user, it is never cached
func (c *CostService) Total(ctx context.Context, userID int64) (float64, error) {
	costs, err := c.costs.GetByUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	amounts := make([]model.Amount, 0, len(costs))
	for _, cost := range costs {
		amounts = append(amounts, cost.Sum)
	}
	return float64(model.SumAmounts(amounts...)), nil
}
