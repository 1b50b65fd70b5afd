package generator

import (
	"fmt"
	"time"

	"github.com/Lumos-Labs-HQ/seedforge/internal/models"
)

// Enrollments links users to courses. (user_id, course_id) pairs are
// unique across the whole output; a count that exceeds the available pair
// space is rejected up front instead of looping forever.
func (g *Generator) Enrollments(count int, users []models.User, courses []models.Course) ([]models.Enrollment, error) {
	if count > 0 && (len(users) == 0 || len(courses) == 0) {
		return nil, fmt.Errorf("enrollments require at least one user and one course")
	}

	maxPairs := len(users) * len(courses)
	if count > maxPairs {
		return nil, fmt.Errorf("cannot generate %d enrollments: only %d unique user/course pairs exist (%d users × %d courses)",
			count, maxPairs, len(users), len(courses))
	}

	now := time.Now()
	used := make(map[string]struct{}, count)
	enrollments := make([]models.Enrollment, 0, count)

	for i := 0; i < count; i++ {
		var userID, courseID string
		for {
			userID = users[g.faker.Number(0, len(users)-1)].ID
			courseID = courses[g.faker.Number(0, len(courses)-1)].ID
			pair := userID + ":" + courseID
			if _, taken := used[pair]; !taken {
				used[pair] = struct{}{}
				break
			}
		}

		enrolledAt := g.dateBetween(now.AddDate(0, -6, 0), now)
		status := g.weightedString(g.schema.CompletionStatuses, []float64{0.1, 0.4, 0.3, 0.2})

		percentage := 0
		switch status {
		case "in_progress":
			percentage = g.faker.Number(10, 90)
		case "completed":
			percentage = 100
		case "dropped":
			percentage = g.faker.Number(5, 50)
		}

		var completionDate *models.DateTime
		certificateIssued := false
		if status == "completed" {
			completed := models.NewDateTime(g.dateBetween(enrolledAt, now))
			completionDate = &completed
			certificateIssued = g.faker.Bool()
		}

		enrollments = append(enrollments, models.Enrollment{
			ID:       newID(),
			UserID:   userID,
			CourseID: courseID,
			Progress: models.Progress{
				Percentage:       percentage,
				CompletedModules: g.faker.Number(0, percentage/10),
				CurrentModule:    fmt.Sprintf("Module %d", g.faker.Number(1, 8)),
				LastAccessed:     models.NewDateTime(g.dateBetween(enrolledAt, now)),
			},
			CompletionStatus:  status,
			CompletionDate:    completionDate,
			CertificateIssued: certificateIssued,
			EnrolledAt:        models.NewDateTime(enrolledAt),
			UpdatedAt:         models.NewDateTime(g.dateBetween(enrolledAt, now)),
		})
	}

	return enrollments, nil
}
