package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/100adim/project-cost-manager/internal/model"
)

// The *Memory stores keep documents in process memory. They back local runs
// without a MongoDB and honour the same uniqueness rules as the Mongo indexes.

type UserMemory struct {
	mu    sync.RWMutex
	users []model.User
}

func NewUserMemory() *UserMemory {
	return &UserMemory{}
}

func (m *UserMemory) Create(_ context.Context, user *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.ID == user.ID {
			return ErrDuplicate
		}
	}
	user.ObjectID = primitive.NewObjectID()
	m.users = append(m.users, *user)
	return nil
}

func (m *UserMemory) Get(_ context.Context, id int64) (*model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.ID == id {
			user := u
			return &user, nil
		}
	}
	return nil, nil
}

func (m *UserMemory) List(_ context.Context) ([]model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append(make([]model.User, 0, len(m.users)), m.users...), nil
}

type CostMemory struct {
	mu    sync.RWMutex
	costs []model.Cost
}

func NewCostMemory() *CostMemory {
	return &CostMemory{}
}

func (m *CostMemory) Add(_ context.Context, cost *model.Cost) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cost.ID = primitive.NewObjectID()
	m.costs = append(m.costs, *cost)
	return nil
}

func (m *CostMemory) GetByUser(_ context.Context, userID int64) ([]model.Cost, error) {
	return m.filter(func(c model.Cost) bool {
		return c.UserID == userID
	}), nil
}

func (m *CostMemory) GetByUserInRange(_ context.Context, userID int64, from, to time.Time) ([]model.Cost, error) {
	return m.filter(func(c model.Cost) bool {
		return c.UserID == userID && !c.Date.Before(from) && c.Date.Before(to)
	}), nil
}

func (m *CostMemory) filter(keep func(model.Cost) bool) []model.Cost {
	m.mu.RLock()
	defer m.mu.RUnlock()
	costs := make([]model.Cost, 0)
	for _, c := range m.costs {
		if keep(c) {
			costs = append(costs, c)
		}
	}
	sort.SliceStable(costs, func(i, j int) bool {
		return costs[i].Date.Before(costs[j].Date)
	})
	return costs
}

type reportKey struct {
	userID      int64
	year, month int
}

type ReportMemory struct {
	mu      sync.RWMutex
	reports map[reportKey]model.Report
}

func NewReportMemory() *ReportMemory {
	return &ReportMemory{
		reports: make(map[reportKey]model.Report),
	}
}

func (m *ReportMemory) Get(_ context.Context, userID int64, year, month int) (*model.Report, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	report, ok := m.reports[reportKey{userID: userID, year: year, month: month}]
	if !ok {
		return nil, nil
	}
	return &report, nil
}

func (m *ReportMemory) Create(_ context.Context, report *model.Report) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := reportKey{userID: report.UserID, year: report.Year, month: report.Month}
	if _, ok := m.reports[key]; ok {
		return ErrDuplicate
	}
	report.ID = primitive.NewObjectID()
	m.reports[key] = *report
	return nil
}

type RequestLogMemory struct {
	mu   sync.RWMutex
	logs []model.RequestLog
}

func NewRequestLogMemory() *RequestLogMemory {
	return &RequestLogMemory{}
}

func (m *RequestLogMemory) Add(_ context.Context, log *model.RequestLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	log.ID = primitive.NewObjectID()
	m.logs = append(m.logs, *log)
	return nil
}

func (m *RequestLogMemory) List(_ context.Context) ([]model.RequestLog, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append(make([]model.RequestLog, 0, len(m.logs)), m.logs...), nil
}
