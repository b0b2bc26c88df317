package models

import (
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Place is a rentable listing owned by exactly one user.
type Place struct {
	gorm.Model
	OwnerID     uint           `json:"owner"`
	Title       string         `json:"title"`
	Address     string         `json:"address"`
	Photos      datatypes.JSON `json:"photos"`
	Description string         `json:"description"`
	Perks       datatypes.JSON `json:"perks"`
	ExtraInfo   string         `json:"extraInfo"`
	CheckIn     string         `json:"checkIn" gorm:"type:varchar(10)"`
	CheckOut    string         `json:"checkOut" gorm:"type:varchar(10)"`
	MaxGuests   int            `json:"maxGuests"`
	Price       float32        `json:"price"`

	Owner *User `json:"-" gorm:"foreignKey:OwnerID;references:ID"`
}

// MarshalJSON renders the Photos and Perks JSON columns as string arrays,
// never null.
func (p *Place) MarshalJSON() ([]byte, error) {
	type Alias Place
	aux := &struct {
		Photos []string `json:"photos"`
		Perks  []string `json:"perks"`
		*Alias
	}{
		Photos: []string{},
		Perks:  []string{},
		Alias:  (*Alias)(p),
	}

	if p.Photos != nil {
		var photos []string
		if err := json.Unmarshal(p.Photos, &photos); err == nil {
			aux.Photos = photos
		}
	}

	if p.Perks != nil {
		var perks []string
		if err := json.Unmarshal(p.Perks, &perks); err == nil {
			aux.Perks = perks
		}
	}

	return json.Marshal(aux)
}
