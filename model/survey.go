package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Survey statuses.
const (
	StatusDraft     = "draft"
	StatusPublish   = "publish"
	StatusUnpublish = "unpublish"
)

// Survey keeps the owner email under "surverior", the field name the
// frontend has always sent.
type Survey struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Category    string             `bson:"category" json:"category"`
	Image       string             `bson:"image" json:"image"`
	Deadline    string             `bson:"deadline" json:"deadline"`
	Status      string             `bson:"status,omitempty" json:"status,omitempty"`
	VoteCount   int                `bson:"voteCount" json:"voteCount"`
	Surverior   string             `bson:"surverior" json:"surverior"`
}
