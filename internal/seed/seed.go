// Package seed loads the hardcoded sample data the app starts with.
// All state is process-lifetime only, so the same catalog, conversations,
// and participant lists come back on every launch.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/LylesZhang/Protothon-2026/internal/domain"
	"github.com/LylesZhang/Protothon-2026/internal/repo"
	"github.com/LylesZhang/Protothon-2026/internal/service"
)

// Contacts is the ordered allowlist of counterpart names the conversation
// list reports on.
func Contacts() []string {
	return []string{
		"Sarah Chen", "Oscar Tang", "Shaun Jin", "Mike Johnson",
		"Emma Wilson", "Alex Rivera", "Jose Andres", "Amy Liu", "Carlos Ruiz",
	}
}

// FollowedUsers is the preset set of followed trip authors.
func FollowedUsers() []string {
	return []string{"Oscar Tang", "Sarah Chen", "Mike Johnson"}
}

// Apply populates the trip catalog, the current user's posts, the starter
// conversations, and the sample participant lists. currentUser authors the
// "my posts" entries.
func Apply(ctx context.Context, currentUser string, trips repo.TripRepo, accepted repo.AcceptedTripRepo, messages *service.MessageService) error {
	now := time.Now()

	catalog := append(recommendedTrips(now), followingTrips(now)...)
	for _, trip := range catalog {
		if _, err := trips.Create(ctx, trip); err != nil {
			return fmt.Errorf("seed.Apply: catalog: %w", err)
		}
	}

	var myPosts []domain.Trip
	for _, trip := range ownPosts(currentUser, now) {
		created, err := trips.Create(ctx, trip)
		if err != nil {
			return fmt.Errorf("seed.Apply: my posts: %w", err)
		}
		myPosts = append(myPosts, created)
	}

	if err := seedParticipants(ctx, accepted, myPosts, now); err != nil {
		return err
	}
	if err := seedConversations(ctx, messages); err != nil {
		return err
	}
	return nil
}

// recommendedTrips is the browse feed's sample catalog.
func recommendedTrips(now time.Time) []domain.Trip {
	return []domain.Trip{
		{
			Title:       "Mountain Road Trip Adventure",
			Origin:      "Sacramento, CA",
			Destination: "Lake Tahoe, CA",
			SetOff:      "8:00 AM",
			Arrived:     "12:30 PM",
			DepartDate:  now.AddDate(0, 0, 5),
			Tags:        []string{"Pet Allow", "Prefer Female", "No Smoking"},
			Author:      "Sarah Chen",
			Description: "Planning a scenic drive to Lake Tahoe this weekend! Looking for someone to share the ride and split gas costs.",
			ImageName:   "mountain",
			Capacity:    3, CurrentParticipants: 1,
			HasOwnCar: true, CostType: domain.CostSplit, EstimatedCost: "$25 per person",
		},
		{
			Title:       "Coastal Highway Scenic Drive",
			Origin:      "Los Angeles, CA",
			Destination: "San Diego, CA",
			SetOff:      "6:30 AM",
			Arrived:     "10:00 AM",
			DepartDate:  now.AddDate(0, 0, 4),
			Tags:        []string{"Music OK", "Chat Welcome"},
			Author:      "Mike Johnson",
			ImageName:   "coast",
			Capacity:    3, CurrentParticipants: 1,
			HasOwnCar: true, CostType: domain.CostSplit,
		},
		{
			Title:       "Urban City Commute Tips",
			Origin:      "Pasadena, CA",
			Destination: "Downtown LA",
			SetOff:      "7:00 AM",
			Arrived:     "8:15 AM",
			DepartDate:  now.AddDate(0, 0, 3),
			Tags:        []string{"No Smoking", "Quiet Ride"},
			Author:      "Amy Liu",
			ImageName:   "city",
			Capacity:    3, CurrentParticipants: 1,
			HasOwnCar: true, CostType: domain.CostFree,
		},
		{
			Title:       "Desert Sunset Route",
			Origin:      "Riverside, CA",
			Destination: "Palm Springs, CA",
			SetOff:      "3:00 PM",
			Arrived:     "5:45 PM",
			DepartDate:  now.AddDate(0, 0, 2),
			Tags:        []string{"Pet Allow", "Music OK"},
			Author:      "Carlos Ruiz",
			ImageName:   "desert",
			Capacity:    3, CurrentParticipants: 1,
			HasOwnCar: true, CostType: domain.CostSplit,
		},
	}
}

// followingTrips is the feed of trips by followed authors.
func followingTrips(now time.Time) []domain.Trip {
	return []domain.Trip{
		{
			Title:       "Philly Airport Express",
			Origin:      "Haverford College",
			Destination: "Philadelphia, PA",
			SetOff:      "5:00 AM",
			Arrived:     "5:45 AM",
			DepartDate:  now.AddDate(0, 0, 6),
			Tags:        []string{"Quiet Ride", "No Smoking"},
			Author:      "Oscar Tang",
			ImageName:   "airport",
			Capacity:    3, CurrentParticipants: 1,
			HasOwnCar: true, CostType: domain.CostSplit, EstimatedCost: "$10 per person",
		},
		{
			Title:       "Weekend Walmart Run",
			Origin:      "Haverford College",
			Destination: "Cherry Hill, NJ",
			SetOff:      "10:00 AM",
			Arrived:     "10:30 AM",
			DepartDate:  now.AddDate(0, 0, 5),
			Tags:        []string{"Chat Welcome", "Pet Allow"},
			Author:      "Shaun Jin",
			ImageName:   "shopping",
			Capacity:    4, CurrentParticipants: 1,
			HasOwnCar: true, CostType: domain.CostFree,
		},
		{
			Title:       "Downtown Food Tour Drive",
			Origin:      "Baltimore, MD",
			Destination: "Washington, D.C.",
			SetOff:      "11:00 AM",
			Arrived:     "12:00 PM",
			DepartDate:  now.AddDate(0, 0, 4),
			Tags:        []string{"Music OK", "Chat Welcome", "Food Stops"},
			Author:      "Jose Andres",
			ImageName:   "food",
			Capacity:    3, CurrentParticipants: 1,
			HasOwnCar: true, CostType: domain.CostSplit,
		},
		{
			Title:       "Campus Carpool to UPenn",
			Origin:      "Haverford College",
			Destination: "University City, PA",
			SetOff:      "8:00 AM",
			Arrived:     "8:25 AM",
			DepartDate:  now.AddDate(0, 0, 3),
			Tags:        []string{"No Smoking", "Quiet Ride"},
			Author:      "Oscar Tang",
			ImageName:   "campus",
			Capacity:    3, CurrentParticipants: 1,
			HasOwnCar: true, CostType: domain.CostFree,
		},
		{
			Title:       "Jersey Shore Day Trip",
			Origin:      "Philadelphia, PA",
			Destination: "Atlantic City, NJ",
			SetOff:      "9:00 AM",
			Arrived:     "10:30 AM",
			DepartDate:  now.AddDate(0, 0, 1),
			Tags:        []string{"Music OK", "Pet Allow"},
			Author:      "Shaun Jin",
			ImageName:   "beach",
			Capacity:    4, CurrentParticipants: 1,
			HasOwnCar: true, CostType: domain.CostSplit,
		},
	}
}

// ownPosts are the current user's postings: two upcoming and one already
// departed so the history view has something to show.
func ownPosts(author string, now time.Time) []domain.Trip {
	return []domain.Trip{
		{
			Title:       "Weekend NYC Trip",
			Origin:      "Haverford College",
			Destination: "New York City, NY",
			SetOff:      "9:00 AM",
			Arrived:     "11:30 AM",
			DepartDate:  now.AddDate(0, 0, 7),
			Tags:        []string{"Music OK", "Chat Welcome"},
			Author:      author,
			Description: "Driving up to the city for the weekend, two seats free.",
			ImageName:   "city",
			Capacity:    3, CurrentParticipants: 1,
			HasOwnCar: true, CostType: domain.CostSplit, EstimatedCost: "$20 per person",
		},
		{
			Title:       "Philly Center City Shopping",
			Origin:      "Haverford College",
			Destination: "Philadelphia, PA",
			SetOff:      "1:00 PM",
			Arrived:     "1:40 PM",
			DepartDate:  now.AddDate(0, 0, 2),
			Tags:        []string{"Chat Welcome", "Luggage OK"},
			Author:      author,
			ImageName:   "shopping",
			Capacity:    4, CurrentParticipants: 1,
			HasOwnCar: true, CostType: domain.CostFree,
		},
		{
			Title:       "Forest Road Nature Escape",
			Origin:      "Monterey, CA",
			Destination: "Big Sur, CA",
			SetOff:      "9:00 AM",
			Arrived:     "2:30 PM",
			DepartDate:  now.AddDate(0, 0, -3),
			Tags:        []string{"Pet Allow", "Music OK", "Luggage Space"},
			Author:      author,
			ImageName:   "forest",
			Capacity:    3, CurrentParticipants: 2,
			HasOwnCar: true, CostType: domain.CostSplit,
		},
	}
}

// seedParticipants attaches the demo participant lists to the current
// user's posts, matching by title.
func seedParticipants(ctx context.Context, accepted repo.AcceptedTripRepo, myPosts []domain.Trip, now time.Time) error {
	byTitle := make(map[string]domain.Trip, len(myPosts))
	for _, trip := range myPosts {
		byTitle[trip.Title] = trip
	}

	if trip, ok := byTitle["Weekend NYC Trip"]; ok {
		for _, p := range []domain.TripParticipant{
			{Name: "Emma Wilson", JoinedAt: now.Add(-48 * time.Hour)},
			{Name: "Michael Brown", JoinedAt: now.Add(-24 * time.Hour)},
		} {
			if err := accepted.AddParticipant(ctx, trip.ID, p); err != nil {
				return fmt.Errorf("seed.Apply: participants: %w", err)
			}
		}
	}
	if trip, ok := byTitle["Philly Center City Shopping"]; ok {
		p := domain.TripParticipant{Name: "Sarah Chen", JoinedAt: now.Add(-5 * time.Hour)}
		if err := accepted.AddParticipant(ctx, trip.ID, p); err != nil {
			return fmt.Errorf("seed.Apply: participants: %w", err)
		}
	}
	return nil
}

// seedConversations loads the starter chat threads.
func seedConversations(ctx context.Context, messages *service.MessageService) error {
	starter := []struct {
		conversation string
		sender       string
		text         string
	}{
		{"Sarah Chen", "Sarah Chen", "Hi! Thanks for your interest in the trip!"},
		{"Sarah Chen", "You", "Hello! I saw your post and would love to join."},
		{"Sarah Chen", "Sarah Chen", "That is great! Are you okay with the departure time?"},
		{"Oscar Tang", "Oscar Tang", "Sure! See you at 8 AM tomorrow."},
		{"Mike Johnson", "Mike Johnson", "Thanks for sharing!"},
	}
	for _, m := range starter {
		if _, err := messages.SendText(ctx, m.conversation, m.sender, m.text); err != nil {
			return fmt.Errorf("seed.Apply: conversations: %w", err)
		}
	}
	return nil
}
