package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category is one of the fixed expense classifications
type Category string

const (
	Food      Category = "food"
	Health    Category = "health"
	Housing   Category = "housing"
	Sports    Category = "sports"
	Education Category = "education"
)

// Categories is the fixed order of report buckets
var Categories = []Category{Food, Health, Housing, Sports, Education}

func (c Category) Valid() bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

// Cost is one recorded expense of a user
type Cost struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Description string             `bson:"description" json:"description"`
	Category    Category           `bson:"category" json:"category"`
	UserID      int64              `bson:"userid" json:"userid"`
	Sum         Amount             `bson:"sum" json:"sum"`
	Date        time.Time          `bson:"date" json:"date"`
}
