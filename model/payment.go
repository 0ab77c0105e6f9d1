package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Payment is append-only; recording one promotes the payer to pro-user
// unless they are an admin.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email         string             `bson:"email" json:"email"`
	Amount        float64            `bson:"amount" json:"amount"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	Date          string             `bson:"date,omitempty" json:"date,omitempty"`
}
