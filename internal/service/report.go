package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/100adim/project-cost-manager/internal/model"
	"github.com/100adim/project-cost-manager/internal/repository"
)

type Reports interface {
	Monthly(ctx context.Context, query ReportQuery) (*model.Report, error)
}

// ReportService builds monthly reports. Reports of past months are computed once,
// stored and served from the store afterwards; current and future months are
// always computed from the costs.
type ReportService struct {
	users    repository.User
	costs    repository.Cost
	reports  repository.Report
	calendar Calendar
	validate *validator.Validate
}

func NewReportService(users repository.User, costs repository.Cost, reports repository.Report,
	calendar Calendar, validate *validator.Validate) *ReportService {
	return &ReportService{
		users:    users,
		costs:    costs,
		reports:  reports,
		calendar: calendar,
		validate: validate,
	}
}

func (r *ReportService) Monthly(ctx context.Context, query ReportQuery) (*model.Report, error) {
	userID, year, month, err := r.parseQuery(query)
	if err != nil {
		return nil, err
	}

	user, err := r.users.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errUserNotFound
	}

	past := r.calendar.isPast(year, month)
	if past {
		stored, err := r.reports.Get(ctx, userID, year, month)
		if err != nil {
			return nil, err
		}
		if stored != nil {
			return stored, nil
		}
	}

	from, to := r.calendar.monthRange(year, month)
	costs, err := r.costs.GetByUserInRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	report := &model.Report{
		UserID: userID,
		Year:   year,
		Month:  month,
		Costs:  r.groupByCategory(costs),
	}
	if !past {
		return report, nil
	}

	err = r.reports.Create(ctx, report)
	if errors.Is(err, repository.ErrDuplicate) {
		logrus.Infof("report %d/%d-%02d was stored concurrently, reading it back", userID, year, month)
		stored, err := r.reports.Get(ctx, userID, year, month)
		if err != nil {
			return nil, err
		}
		if stored == nil {
			return nil, fmt.Errorf("report %d/%d-%02d is duplicate but couldn't be read back", userID, year, month)
		}
		return stored, nil
	}
	if err != nil {
		return nil, err
	}
	logrus.Infof("report %d/%d-%02d stored", userID, year, month)
	return report, nil
}

func (r *ReportService) parseQuery(query ReportQuery) (int64, int, int, error) {
	if err := check(r.validate, query); err != nil {
		return 0, 0, 0, &ValidationError{Reason: "Missing required query parameters: id, year, month"}
	}
	userID, errID := strconv.ParseInt(query.ID, 10, 64)
	year, errYear := strconv.Atoi(query.Year)
	month, errMonth := strconv.Atoi(query.Month)
	if errID != nil || errYear != nil || errMonth != nil || month < 1 || month > 12 {
		return 0, 0, 0, invalid("Invalid query parameters")
	}
	return userID, year, month, nil
}

// groupByCategory puts every cost into its category bucket. Costs with a category
// outside model.Categories are dropped.
func (r *ReportService) groupByCategory(costs []model.Cost) []map[string][]model.ReportItem {
	buckets := make(map[model.Category][]model.ReportItem, len(model.Categories))
	for _, category := range model.Categories {
		buckets[category] = make([]model.ReportItem, 0)
	}
	for _, cost := range costs {
		items, ok := buckets[cost.Category]
		if !ok {
			logrus.Debugf("report skips cost %s with unknown category %q", cost.ID.Hex(), cost.Category)
			continue
		}
		buckets[cost.Category] = append(items, model.ReportItem{
			Sum:         cost.Sum,
			Description: cost.Description,
			Day:         cost.Date.In(r.calendar.Location).Day(),
		})
	}

	grouped := make([]map[string][]model.ReportItem, 0, len(model.Categories))
	for _, category := range model.Categories {
		grouped = append(grouped, map[string][]model.ReportItem{string(category): buckets[category]})
	}
	return grouped
}
