package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RequestLog is one inbound HTTP request
type RequestLog struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Method    string             `bson:"method" json:"method"`
	URL       string             `bson:"url" json:"url"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
}
