package models

import "time"

type User struct {
	ID         string    `bson:"_id,omitempty"`
	Username   string    `bson:"username"`
	Password   string    `bson:"password"`
	Email      string    `bson:"email"`
	Role       string    `bson:"role"`
	DateJoined time.Time `bson:"dateJoined"`
}
