package models

import "time"

// Reservation books a catway for a client's boat over a date range.
// EndDate must not precede StartDate.
type Reservation struct {
	ID         string    `json:"id"`
	CatwayID   string    `json:"catwayId"`
	ClientName string    `json:"clientName"`
	BoatName   string    `json:"boatName"`
	StartDate  time.Time `json:"startDate"`
	EndDate    time.Time `json:"endDate"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
