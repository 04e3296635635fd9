package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Report is a monthly snapshot of a user's costs grouped by category.
// Costs holds one single-key bucket per category, in Categories order.
type Report struct {
	ID     primitive.ObjectID        `bson:"_id,omitempty" json:"-"`
	UserID int64                     `bson:"userid" json:"userid"`
	Year   int                       `bson:"year" json:"year"`
	Month  int                       `bson:"month" json:"month"`
	Costs  []map[string][]ReportItem `bson:"costs" json:"costs"`
}

type ReportItem struct {
	Sum         Amount `bson:"sum" json:"sum"`
	Description string `bson:"description" json:"description"`
	Day         int    `bson:"day" json:"day"`
}
