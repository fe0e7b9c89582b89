package model

import "time"

type User struct {
	UserID    string    `bson:"user_id" json:"id"`                            // Unique ID number
	Email     string    `bson:"email" json:"email" validate:"required,email"` // Login identity
	Password  string    `bson:"password" json:"-" validate:"required,min=6"`  // Hashed password field
	CreatedAt time.Time `bson:"created_at" json:"created_at"`                 // Time created for account life
}
