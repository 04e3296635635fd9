package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/100adim/project-cost-manager/internal/model"
)

//go:generate mockery --name=RequestLog

type RequestLog interface {
	Add(ctx context.Context, log *model.RequestLog) error
	List(ctx context.Context) ([]model.RequestLog, error)
}

type RequestLogMongo struct {
	coll *mongo.Collection
}

func NewRequestLogMongo(db *mongo.Database) *RequestLogMongo {
	return &RequestLogMongo{
		coll: db.Collection(requestLogsCollection),
	}
}

func (l *RequestLogMongo) Add(ctx context.Context, log *model.RequestLog) error {
	if _, err := l.coll.InsertOne(ctx, log); err != nil {
		return fmt.Errorf("mongo couldn't InsertOne in Add method: %w", err)
	}
	return nil
}

func (l *RequestLogMongo) List(ctx context.Context) ([]model.RequestLog, error) {
	cursor, err := l.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("mongo couldn't Find in List method: %w", err)
	}
	logs := make([]model.RequestLog, 0)
	if err = cursor.All(ctx, &logs); err != nil {
		return nil, fmt.Errorf("mongo couldn't decode All in List method: %w", err)
	}
	return logs, nil
}
