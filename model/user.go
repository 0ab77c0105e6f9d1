package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Roles a user can hold. Role is mutated only by the transition engine or
// by the explicit admin override endpoints.
const (
	RoleUser     = "user"
	RoleProUser  = "pro-user"
	RoleSurveyor = "surveyor"
	RoleAdmin    = "admin"
)

type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email string             `bson:"email" json:"email"`
	Name  string             `bson:"name" json:"name"`
	Role  string             `bson:"role" json:"role"`
}
