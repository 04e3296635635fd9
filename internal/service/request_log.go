package service

import (
	"context"

	"github.com/100adim/project-cost-manager/internal/model"
	"github.com/100adim/project-cost-manager/internal/repository"
)

type RequestLogs interface {
	Record(ctx context.Context, method, url string) error
	List(ctx context.Context) ([]model.RequestLog, error)
}

type RequestLogService struct {
	repo     repository.RequestLog
	calendar Calendar
}

func NewRequestLogService(repo repository.RequestLog, calendar Calendar) *RequestLogService {
	return &RequestLogService{
		repo:     repo,
		calendar: calendar,
	}
}

func (l *RequestLogService) Record(ctx context.Context, method, url string) error {
	return l.repo.Add(ctx, &model.RequestLog{
		Method:    method,
		URL:       url,
		Timestamp: l.calendar.now(),
	})
}

func (l *RequestLogService) List(ctx context.Context) ([]model.RequestLog, error) {
	return l.repo.List(ctx)
}
