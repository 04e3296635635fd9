package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ObjectID      primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	ID            int64              `bson:"id" json:"id"`
	FirstName     string             `bson:"first_name" json:"first_name"`
	LastName      string             `bson:"last_name" json:"last_name"`
	Birthday      *time.Time         `bson:"birthday,omitempty" json:"birthday,omitempty"`
	MaritalStatus string             `bson:"marital_status,omitempty" json:"marital_status,omitempty"`
}
