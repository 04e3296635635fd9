package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/100adim/project-cost-manager/internal/model"
)

//go:generate mockery --name=Report

type Report interface {
	// Get returns nil, nil if no report is stored for the key
	Get(ctx context.Context, userID int64, year, month int) (*model.Report, error)
	// Create returns ErrDuplicate if a report for the same key is already stored
	Create(ctx context.Context, report *model.Report) error
}

type ReportMongo struct {
	coll *mongo.Collection
}

func NewReportMongo(db *mongo.Database) *ReportMongo {
	return &ReportMongo{
		coll: db.Collection(reportsCollection),
	}
}

func (r *ReportMongo) Get(ctx context.Context, userID int64, year, month int) (*model.Report, error) {
	var report model.Report
	err := r.coll.FindOne(ctx, bson.D{
		{Key: "userid", Value: userID},
		{Key: "year", Value: year},
		{Key: "month", Value: month},
	}).Decode(&report)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("mongo couldn't FindOne in Get method: %w", err)
	}
	return &report, nil
}

func (r *ReportMongo) Create(ctx context.Context, report *model.Report) error {
	res, err := r.coll.InsertOne(ctx, report)
	if err != nil {
		return insertErr("Create", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		report.ID = id
	}
	return nil
}
