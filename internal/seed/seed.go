// Package seed loads the initial activity catalogue and teacher accounts
// into whichever storage backend is active, when that backend is empty.
package seed

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/datatypes"

	"github.com/mergington/activities-api/internal/models"
	"github.com/mergington/activities-api/internal/password"
	"github.com/mergington/activities-api/internal/repository"
)

type teacherSeed struct {
	username    string
	displayName string
	role        string
	plaintext   string
}

var teacherSeeds = []teacherSeed{
	{username: "mrodriguez", displayName: "Ms. Rodriguez", role: "teacher", plaintext: "art123"},
	{username: "mchen", displayName: "Mr. Chen", role: "teacher", plaintext: "chess456"},
	{username: "principal", displayName: "Principal Martinez", role: "admin", plaintext: "admin789"},
}

// Apply seeds each empty collection. Existing data is never touched.
func Apply(ctx context.Context, activities repository.ActivityRepository, teachers repository.TeacherRepository, logger zerolog.Logger) error {
	log := logger.With().Str("component", "seed").Logger()

	count, err := activities.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count activities: %w", err)
	}
	if count == 0 {
		catalogue := initialActivities()
		if err := activities.CreateBatch(ctx, catalogue); err != nil {
			return fmt.Errorf("failed to seed activities: %w", err)
		}
		log.Info().Int("count", len(catalogue)).Msg("seeded initial activities")
	}

	count, err = teachers.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count teachers: %w", err)
	}
	if count == 0 {
		accounts := make([]models.Teacher, 0, len(teacherSeeds))
		for _, t := range teacherSeeds {
			hash, err := password.Hash(t.plaintext)
			if err != nil {
				return fmt.Errorf("failed to hash seed password for %s: %w", t.username, err)
			}
			accounts = append(accounts, models.Teacher{
				Username:    t.username,
				DisplayName: t.displayName,
				Role:        t.role,
				Password:    hash,
			})
		}
		if err := teachers.CreateBatch(ctx, accounts); err != nil {
			return fmt.Errorf("failed to seed teachers: %w", err)
		}
		log.Info().Int("count", len(accounts)).Msg("seeded teacher accounts")
	}

	return nil
}

func initialActivities() []models.Activity {
	return []models.Activity{
		{
			Name:        "Chess Club",
			Description: "Learn strategies and compete in chess tournaments",
			Schedule:    "Mondays and Fridays, 3:15 PM - 4:45 PM",
			ScheduleDetails: &models.ScheduleDetails{
				Days: []string{"Monday", "Friday"}, StartTime: "15:15", EndTime: "16:45",
			},
			MaxParticipants: 12,
			Participants:    datatypes.NewJSONSlice([]string{"michael@mergington.edu", "daniel@mergington.edu"}),
		},
		{
			Name:        "Programming Class",
			Description: "Learn programming fundamentals and build software projects",
			Schedule:    "Tuesdays and Thursdays, 7:00 AM - 8:00 AM",
			ScheduleDetails: &models.ScheduleDetails{
				Days: []string{"Tuesday", "Thursday"}, StartTime: "07:00", EndTime: "08:00",
			},
			MaxParticipants: 20,
			Participants:    datatypes.NewJSONSlice([]string{"emma@mergington.edu", "sophia@mergington.edu"}),
		},
		{
			Name:        "Gym Class",
			Description: "Physical education and sports activities",
			Schedule:    "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			ScheduleDetails: &models.ScheduleDetails{
				Days: []string{"Monday", "Wednesday", "Friday"}, StartTime: "14:00", EndTime: "15:00",
			},
			MaxParticipants: 30,
			Participants:    datatypes.NewJSONSlice([]string{"john@mergington.edu", "olivia@mergington.edu"}),
		},
		{
			Name:        "Soccer Team",
			Description: "Join the school soccer team and compete in matches",
			Schedule:    "Tuesdays and Thursdays, 4:00 PM - 5:30 PM",
			ScheduleDetails: &models.ScheduleDetails{
				Days: []string{"Tuesday", "Thursday"}, StartTime: "16:00", EndTime: "17:30",
			},
			MaxParticipants: 22,
			Participants:    datatypes.NewJSONSlice([]string{"liam@mergington.edu", "noah@mergington.edu"}),
		},
		{
			Name:        "Basketball Team",
			Description: "Practice and play basketball with the school team",
			Schedule:    "Wednesdays and Fridays, 3:30 PM - 5:00 PM",
			ScheduleDetails: &models.ScheduleDetails{
				Days: []string{"Wednesday", "Friday"}, StartTime: "15:30", EndTime: "17:00",
			},
			MaxParticipants: 15,
			Participants:    datatypes.NewJSONSlice([]string{"ava@mergington.edu", "mia@mergington.edu"}),
		},
		{
			Name:        "Art Club",
			Description: "Explore your creativity through painting and drawing",
			Schedule:    "Thursdays, 3:15 PM - 5:00 PM",
			ScheduleDetails: &models.ScheduleDetails{
				Days: []string{"Thursday"}, StartTime: "15:15", EndTime: "17:00",
			},
			MaxParticipants: 15,
			Participants:    datatypes.NewJSONSlice([]string{"amelia@mergington.edu", "harper@mergington.edu"}),
		},
		{
			Name:        "Drama Club",
			Description: "Act, direct, and produce plays and performances",
			Schedule:    "Mondays and Wednesdays, 4:00 PM - 5:30 PM",
			ScheduleDetails: &models.ScheduleDetails{
				Days: []string{"Monday", "Wednesday"}, StartTime: "16:00", EndTime: "17:30",
			},
			MaxParticipants: 20,
			Participants:    datatypes.NewJSONSlice([]string{"ella@mergington.edu", "scarlett@mergington.edu"}),
		},
		{
			Name:        "Math Club",
			Description: "Solve challenging problems and prepare for math competitions",
			Schedule:    "Tuesdays, 7:15 AM - 8:00 AM",
			ScheduleDetails: &models.ScheduleDetails{
				Days: []string{"Tuesday"}, StartTime: "07:15", EndTime: "08:00",
			},
			MaxParticipants: 10,
			Participants:    datatypes.NewJSONSlice([]string{"james@mergington.edu", "benjamin@mergington.edu"}),
		},
		{
			Name:        "Debate Team",
			Description: "Develop public speaking and argumentation skills",
			Schedule:    "Fridays, 3:30 PM - 5:30 PM",
			ScheduleDetails: &models.ScheduleDetails{
				Days: []string{"Friday"}, StartTime: "15:30", EndTime: "17:30",
			},
			MaxParticipants: 12,
			Participants:    datatypes.NewJSONSlice([]string{"charlotte@mergington.edu", "henry@mergington.edu"}),
		},
		{
			Name:        "Weekend Robotics Workshop",
			Description: "Build and program robots in our state-of-the-art workshop",
			Schedule:    "Saturdays, 10:00 AM - 2:00 PM",
			ScheduleDetails: &models.ScheduleDetails{
				Days: []string{"Saturday"}, StartTime: "10:00", EndTime: "14:00",
			},
			MaxParticipants: 15,
			Participants:    datatypes.NewJSONSlice([]string{"ethan@mergington.edu", "oliver@mergington.edu"}),
		},
		{
			Name:        "Manga Maniacs",
			Description: "Read and discuss Japanese graphic novels and their creators",
			Schedule:    "Tuesdays, 7:00 PM - 8:00 PM",
			ScheduleDetails: &models.ScheduleDetails{
				Days: []string{"Tuesday"}, StartTime: "19:00", EndTime: "20:00",
			},
			MaxParticipants: 15,
			Participants:    datatypes.NewJSONSlice([]string{}),
		},
	}
}
