package models

import (
	"time"

	"gorm.io/gorm"
)

// Booking records a guest's stay request for a place. It is immutable once
// created; reads are always filtered by the requesting user.
type Booking struct {
	gorm.Model
	PlaceID        uint      `json:"placeID"`
	UserID         uint      `json:"userID"`
	CheckIn        time.Time `json:"checkIn"`
	CheckOut       time.Time `json:"checkOut"`
	NumberOfGuests int       `json:"numberOfGuests"`
	Name           string    `json:"name"`
	Phone          string    `json:"phone"`
	Price          float32   `json:"price"`

	Place *Place `json:"place,omitempty" gorm:"foreignKey:PlaceID;references:ID"`
}
