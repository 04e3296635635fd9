package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/100adim/project-cost-manager/internal/model"
)

//go:generate mockery --name=Cost

type Cost interface {
	Add(ctx context.Context, cost *model.Cost) error
	GetByUser(ctx context.Context, userID int64) ([]model.Cost, error)
	// GetByUserInRange returns costs with from <= date < to, ordered by date
	GetByUserInRange(ctx context.Context, userID int64, from, to time.Time) ([]model.Cost, error)
}

type CostMongo struct {
	coll *mongo.Collection
}

func NewCostMongo(db *mongo.Database) *CostMongo {
	return &CostMongo{
		coll: db.Collection(costsCollection),
	}
}

func (c *CostMongo) Add(ctx context.Context, cost *model.Cost) error {
	res, err := c.coll.InsertOne(ctx, cost)
	if err != nil {
		return fmt.Errorf("mongo couldn't InsertOne in Add method: %w", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		cost.ID = id
	}
	return nil
}

func (c *CostMongo) GetByUser(ctx context.Context, userID int64) ([]model.Cost, error) {
	return c.find(ctx, "GetByUser", bson.D{{Key: "userid", Value: userID}})
}

func (c *CostMongo) GetByUserInRange(ctx context.Context, userID int64, from, to time.Time) ([]model.Cost, error) {
	return c.find(ctx, "GetByUserInRange", bson.D{
		{Key: "userid", Value: userID},
		{Key: "date", Value: bson.D{{Key: "$gte", Value: from}, {Key: "$lt", Value: to}}},
	})
}

func (c *CostMongo) find(ctx context.Context, method string, filter bson.D) ([]model.Cost, error) {
	cursor, err := c.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "date", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("mongo couldn't Find in %s method: %w", method, err)
	}
	defer func(cursor *mongo.Cursor, ctx context.Context) {
		if err := cursor.Close(ctx); err != nil {
			logrus.Errorf("mongo couldn't close cursor in %s method: %v", method, err)
		}
	}(cursor, ctx)

	costs := make([]model.Cost, 0)
	for cursor.Next(ctx) {
		var cost model.Cost
		if err = cursor.Decode(&cost); err != nil {
			return nil, fmt.Errorf("mongo couldn't Decode in %s method: %w", method, err)
		}
		costs = append(costs, cost)
	}
	if err = cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor err in %s method: %w", method, err)
	}
	return costs, nil
}
