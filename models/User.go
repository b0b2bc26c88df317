package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name     string `json:"name"`
	Email    string `json:"email" gorm:"uniqueIndex"`
	Password string `json:"-"`

	Places   []Place   `json:"places,omitempty" gorm:"foreignKey:OwnerID;references:ID"`
	Bookings []Booking `json:"bookings,omitempty" gorm:"foreignKey:UserID;references:ID"`
}
