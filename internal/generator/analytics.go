package generator

import (
	"fmt"
	"time"

	"github.com/Lumos-Labs-HQ/seedforge/internal/models"
)

// courseEvents are the event types that carry a course_id reference.
var courseEvents = map[string]bool{
	"course_view": true,
	"enrollment":  true,
	"completion":  true,
}

// AnalyticsEvents generates the tracking stream. session_id is a fresh
// token per event rather than per logical session. Both pools must be
// non-empty: course-typed events always reference a real course.
func (g *Generator) AnalyticsEvents(count int, users []models.User, courses []models.Course) ([]models.AnalyticsEvent, error) {
	if count > 0 && (len(users) == 0 || len(courses) == 0) {
		return nil, fmt.Errorf("analytics events require at least one user and one course")
	}

	now := time.Now()
	events := make([]models.AnalyticsEvent, 0, count)

	for i := 0; i < count; i++ {
		user := users[g.faker.Number(0, len(users)-1)]
		eventType := g.weightedString(g.schema.EventTypes, []float64{0.2, 0.15, 0.3, 0.1, 0.05, 0.2})

		var courseID *string
		if courseEvents[eventType] {
			id := courses[g.faker.Number(0, len(courses)-1)].ID
			courseID = &id
		}

		var duration *int
		if eventType == "course_view" {
			seconds := g.faker.Number(30, 3600)
			duration = &seconds
		}

		events = append(events, models.AnalyticsEvent{
			ID:        newID(),
			UserID:    user.ID,
			EventType: eventType,
			CourseID:  courseID,
			SessionID: g.faker.UUID(),
			Properties: models.EventProperties{
				UserAgent:       g.faker.UserAgent(),
				IPAddress:       g.faker.IPv4Address(),
				DurationSeconds: duration,
			},
			Timestamp: models.NewDateTime(g.dateBetween(now.AddDate(0, -3, 0), now)),
		})
	}

	return events, nil
}
