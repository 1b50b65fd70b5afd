package generator

import (
	"fmt"
	"strings"
	"time"

	"github.com/Lumos-Labs-HQ/seedforge/internal/models"
)

var preferenceLanguages = []string{"en", "es", "fr", "de", "ja"}

// Users generates the learner pool. Instructors are a separate pool with
// their own ids, see Instructors.
func (g *Generator) Users(count int) []models.User {
	now := time.Now()
	users := make([]models.User, 0, count)

	for i := 0; i < count; i++ {
		fullName := g.faker.Name()
		parts := strings.Fields(fullName)
		firstName := parts[0]
		lastName := parts[len(parts)-1]
		username := strings.ToLower(g.faker.Username())

		user := models.User{
			ID:           newID(),
			Email:        g.faker.Email(),
			Username:     username,
			PasswordHash: hashPassword(demoPassword),
			Profile: models.Profile{
				FirstName: firstName,
				LastName:  lastName,
				Bio:       g.faker.Paragraph(1, 2, 10, " "),
				AvatarURL: fmt.Sprintf("https://api.dicebear.com/7.x/avataaars/svg?seed=%s", username),
				SocialLinks: []string{
					"https://linkedin.com/in/" + username,
					"https://github.com/" + username,
				},
			},
			Preferences: models.Preferences{
				Language:           g.faker.RandomString(preferenceLanguages),
				Timezone:           g.faker.TimeZoneRegion(),
				EmailNotifications: g.faker.Bool(),
				DifficultyLevel:    g.faker.RandomString(g.schema.DifficultyLevels),
			},
			Status:    g.weightedString(g.schema.UserStatuses, []float64{0.85, 0.1, 0.05}),
			CreatedAt: models.NewDateTime(g.dateBetween(now.AddDate(-2, 0, 0), now)),
			UpdatedAt: models.NewDateTime(g.dateBetween(now.AddDate(0, 0, -30), now)),
		}

		users = append(users, user)
	}

	return users
}
