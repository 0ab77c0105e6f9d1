package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Participation is one vote cast on one survey. Append-only; never updated
// or deleted.
type Participation struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	VotedUserName  string             `bson:"votedUserName" json:"votedUserName"`
	VotedUserEmail string             `bson:"votedUserEmail" json:"votedUserEmail"`
	SurveyID       string             `bson:"surveyId" json:"surveyId"`
	UsersVote      string             `bson:"usersVote" json:"usersVote"`
}
