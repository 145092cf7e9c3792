package memory

import "activityBoard/internal/models"

// Default is the Mergington High School activity catalogue.
var Default = models.Activities{
	{
		Name:            "Chess Club",
		Description:     "Learn strategies and compete in chess tournaments",
		Schedule:        "Fridays, 3:30 PM - 5:00 PM",
		MaxParticipants: 12,
		Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
	},
	{
		Name:            "Programming Class",
		Description:     "Learn programming fundamentals and build software projects",
		Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
		MaxParticipants: 20,
		Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
	},
	{
		Name:            "Gym Class",
		Description:     "Physical education and sports activities",
		Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
		MaxParticipants: 30,
		Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
	},
	{
		Name:            "Basketball Club",
		Description:     "Practice drills and play friendly matches against other schools",
		Schedule:        "Wednesdays, 4:00 PM - 5:30 PM",
		MaxParticipants: 15,
		Participants:    []string{"liam@mergington.edu"},
	},
	{
		Name:            "Swimming Team",
		Description:     "Train technique and endurance for regional swim meets",
		Schedule:        "Mondays and Thursdays, 6:30 AM - 7:30 AM",
		MaxParticipants: 18,
		Participants:    []string{"ava@mergington.edu", "noah@mergington.edu"},
	},
	{
		Name:            "Art Workshop",
		Description:     "Explore drawing, painting and sculpture with guest artists",
		Schedule:        "Saturdays, 10:00 AM - 12:00 PM",
		MaxParticipants: 16,
		Participants:    []string{"mia@mergington.edu"},
	},
	{
		Name:            "Drama Club",
		Description:     "Rehearse and stage the school's seasonal productions",
		Schedule:        "Tuesdays, 4:00 PM - 6:00 PM",
		MaxParticipants: 25,
		Participants:    []string{},
	},
}
