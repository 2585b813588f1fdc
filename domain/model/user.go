package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User is an account on the site. Only the fields the auth middleware needs
// live here; profile data belongs to the social subsystem.
type User struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name         string        `bson:"name" json:"name"`
	Email        string        `bson:"email" json:"email"`
	PasswordHash string        `bson:"password_hash" json:"-"`
	IsAdmin      bool          `bson:"is_admin" json:"isAdmin"`
	CreatedAt    time.Time     `bson:"created_at" json:"createdAt"`
}

// ReqLogin is the login request payload.
type ReqLogin struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ReqRegister is the account registration payload.
type ReqRegister struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
