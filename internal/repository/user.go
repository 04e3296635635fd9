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

//go:generate mockery --name=User

type User interface {
	// Create returns ErrDuplicate if a user with the same id exists
	Create(ctx context.Context, user *model.User) error
	// Get returns nil, nil if the user doesn't exist
	Get(ctx context.Context, id int64) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
}

type UserMongo struct {
	coll *mongo.Collection
}

func NewUserMongo(db *mongo.Database) *UserMongo {
	return &UserMongo{
		coll: db.Collection(usersCollection),
	}
}

func (u *UserMongo) Create(ctx context.Context, user *model.User) error {
	res, err := u.coll.InsertOne(ctx, user)
	if err != nil {
		return insertErr("Create", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ObjectID = id
	}
	return nil
}

func (u *UserMongo) Get(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	err := u.coll.FindOne(ctx, bson.D{{Key: "id", Value: id}}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("mongo couldn't FindOne in Get method: %w", err)
	}
	return &user, nil
}

func (u *UserMongo) List(ctx context.Context) ([]model.User, error) {
	cursor, err := u.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("mongo couldn't Find in List method: %w", err)
	}
	users := make([]model.User, 0)
	if err = cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("mongo couldn't decode All in List method: %w", err)
	}
	return users, nil
}
