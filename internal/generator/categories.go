package generator

import (
	"fmt"
	"strings"
	"time"

	"github.com/Lumos-Labs-HQ/seedforge/internal/models"
)

// Categories builds a two-level hierarchy: the first half of the target
// count becomes level-0 roots drawn from the vocabulary, the rest become
// level-1 children attached to a uniformly chosen existing category.
func (g *Generator) Categories(count int) []models.Category {
	now := time.Now()
	categories := make([]models.Category, 0, count)

	rootCount := count / 2
	if rootCount > len(g.schema.Categories) {
		rootCount = len(g.schema.Categories)
	}
	if rootCount == 0 && count > 0 && len(g.schema.Categories) > 0 {
		rootCount = 1
	}

	for _, name := range g.schema.Categories[:rootCount] {
		categories = append(categories, models.Category{
			ID:          newID(),
			Name:        name,
			Description: fmt.Sprintf("Comprehensive courses and tutorials about %s", name),
			ParentID:    nil,
			Level:       0,
			CourseCount: 0,
			Status:      "active",
			CreatedAt:   models.NewDateTime(g.dateBetween(now.AddDate(-1, 0, 0), now)),
			UpdatedAt:   models.NewDateTime(g.dateBetween(now.AddDate(0, 0, -30), now)),
		})
	}

	for len(categories) < count {
		parent := categories[g.faker.Number(0, len(categories)-1)]
		parentID := parent.ID

		categories = append(categories, models.Category{
			ID:          newID(),
			Name:        fmt.Sprintf("%s - %s", parent.Name, titleCase(g.faker.Word())),
			Description: fmt.Sprintf("Specialized %s topics and advanced concepts", strings.ToLower(parent.Name)),
			ParentID:    &parentID,
			Level:       1,
			CourseCount: 0,
			Status:      "active",
			CreatedAt:   models.NewDateTime(g.dateBetween(now.AddDate(0, -6, 0), now)),
			UpdatedAt:   models.NewDateTime(g.dateBetween(now.AddDate(0, 0, -30), now)),
		})
	}

	return categories
}
