package entity

import (
	"time"
)

// User is a registered account of the writing-practice app.
// Password holds the bcrypt hash and is never serialized.
//
// JSON names follow the wire format the front-end already consumes.
type User struct {
	ID          string    `json:"_id"`
	Username    string    `json:"username"`
	Password    string    `json:"-"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	BirthDate   time.Time `json:"birth_date"`
	PhoneNumber string    `json:"phone_number"`
	Gender      string    `json:"gender"`
}
