package models

import "time"

// Catway types: a berth is either long or short.
const (
	CatwayTypeLong  = "long"
	CatwayTypeShort = "short"
)

// Catway is a docking berth.
type Catway struct {
	ID           string    `json:"id"`
	CatwayNumber int       `json:"catwayNumber"`
	CatwayType   string    `json:"catwayType"`
	CatwayState  string    `json:"catwayState"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ValidCatwayType reports whether t is a known catway type.
func ValidCatwayType(t string) bool {
	return t == CatwayTypeLong || t == CatwayTypeShort
}
