package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Comments and reports live in their own collections, one document per
// entry.

type Comment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	SurveyID  string             `bson:"surveyId" json:"surveyId"`
	UserEmail string             `bson:"userEmail" json:"userEmail"`
	UserName  string             `bson:"userName,omitempty" json:"userName,omitempty"`
	Comment   string             `bson:"comment" json:"comment"`
}

type Report struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	SurveyID  string             `bson:"surveyId" json:"surveyId"`
	UserEmail string             `bson:"userEmail" json:"userEmail"`
	Report    string             `bson:"report" json:"report"`
}
