package generator

import (
	"fmt"
	"strings"
	"time"

	"github.com/Lumos-Labs-HQ/seedforge/internal/models"
)

// Instructors generates the teaching pool. Always active; the stats block
// stays zeroed and is filled by downstream aggregation jobs, not here.
func (g *Generator) Instructors(count int) []models.Instructor {
	now := time.Now()
	instructors := make([]models.Instructor, 0, count)

	for i := 0; i < count; i++ {
		username := strings.ToLower(g.faker.Username())
		years := g.faker.Number(3, 15)

		instructor := models.Instructor{
			ID:           newID(),
			Email:        g.faker.Email(),
			Username:     username,
			PasswordHash: hashPassword("instructor123"),
			Profile: models.InstructorProfile{
				FirstName: g.faker.FirstName(),
				LastName:  g.faker.LastName(),
				Bio: fmt.Sprintf("Expert %s instructor with %d+ years experience",
					g.faker.RandomString(g.schema.Categories), years),
				AvatarURL: fmt.Sprintf("https://api.dicebear.com/7.x/avataaars/svg?seed=%s", username),
				SocialLinks: []string{
					"https://linkedin.com/in/" + username,
					"https://github.com/" + username,
				},
				Certifications: []string{
					fmt.Sprintf("Certified %s Professional", g.faker.RandomString(g.schema.Categories)),
					fmt.Sprintf("Advanced %s Specialist", g.faker.RandomString(g.schema.Categories)),
				},
				ExperienceYears: years,
				Specializations: g.sample(g.schema.Categories, g.faker.Number(2, 4)),
			},
			Preferences: models.Preferences{
				Language:           "en",
				Timezone:           g.faker.TimeZoneRegion(),
				EmailNotifications: true,
				DifficultyLevel:    "advanced",
			},
			Stats:     models.InstructorStats{},
			Status:    "active",
			CreatedAt: models.NewDateTime(g.dateBetween(now.AddDate(-3, 0, 0), now.AddDate(-1, 0, 0))),
			UpdatedAt: models.NewDateTime(g.dateBetween(now.AddDate(0, 0, -7), now)),
		}

		instructors = append(instructors, instructor)
	}

	return instructors
}
