// Package domain contains the core data types for the CarPal application.
// This package has no dependencies on other internal packages and is imported
// by every other internal package (repo, service, search, seed).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// CostType describes how the cost of a trip is arranged between the author
// and the participants.
type CostType string

const (
	// CostFree means the ride costs participants nothing.
	CostFree CostType = "free"
	// CostSplit means gas/tolls/ride cost is shared between everyone on board.
	CostSplit CostType = "split"
	// CostPaid means the author charges a fixed price per person.
	CostPaid CostType = "paid"
)

// Trip represents a posted ride offer. A trip is the top-level aggregate;
// invitations, join requests, and participants all reference it by ID.
type Trip struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`

	// SetOff and Arrived are display windows ("8:00 AM", "12:30 PM") exactly
	// as the author typed them. DepartDate is the real scheduled departure
	// used for finished-trip detection.
	SetOff     string    `json:"set_off"`
	Arrived    string    `json:"arrived"`
	DepartDate time.Time `json:"depart_date"`

	Tags        []string `json:"tags,omitempty"`
	Author      string   `json:"author"`
	Description string   `json:"description,omitempty"`
	ImageName   string   `json:"image_name,omitempty"`

	Capacity            int `json:"capacity"`
	CurrentParticipants int `json:"current_participants"`

	HasOwnCar     bool     `json:"has_own_car"`
	CostType      CostType `json:"cost_type"`
	EstimatedCost string   `json:"estimated_cost,omitempty"` // free-text note, empty for free rides

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Finished reports whether the trip's scheduled departure has passed.
// The caller supplies the clock so finished-trip detection is a pull-based
// query rather than a stored flag.
func (t Trip) Finished(now time.Time) bool {
	return t.DepartDate.Before(now)
}
