package generator

import (
	"time"

	"github.com/Lumos-Labs-HQ/seedforge/internal/models"
)

// Reviews only originate from completed or in-progress enrollments, so
// verified_purchase is always true. Completed enrollments skew toward
// higher ratings.
func (g *Generator) Reviews(count int, enrollments []models.Enrollment) []models.Review {
	eligible := make([]models.Enrollment, 0, len(enrollments))
	for _, e := range enrollments {
		if e.CompletionStatus == "completed" || e.CompletionStatus == "in_progress" {
			eligible = append(eligible, e)
		}
	}

	if count > len(eligible) {
		count = len(eligible)
	}

	now := time.Now()
	reviews := make([]models.Review, 0, count)

	for i := 0; i < count; i++ {
		enrollment := eligible[g.faker.Number(0, len(eligible)-1)]

		var rating int
		if enrollment.CompletionStatus == "completed" {
			rating = g.weightedInt([]int{3, 4, 5}, []float64{0.1, 0.3, 0.6})
		} else {
			rating = g.weightedInt([]int{2, 3, 4, 5}, []float64{0.1, 0.2, 0.4, 0.3})
		}

		reviews = append(reviews, models.Review{
			ID:               newID(),
			UserID:           enrollment.UserID,
			CourseID:         enrollment.CourseID,
			Rating:           rating,
			Title:            g.faker.Sentence(6),
			Comment:          g.faker.Paragraph(1, 3, 12, " "),
			HelpfulVotes:     g.faker.Number(0, 50),
			VerifiedPurchase: true,
			CreatedAt:        models.NewDateTime(g.dateBetween(enrollment.EnrolledAt.Time(), now)),
			UpdatedAt:        models.NewDateTime(g.dateBetween(now.AddDate(0, 0, -7), now)),
		})
	}

	return reviews
}
