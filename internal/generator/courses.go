package generator

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/Lumos-Labs-HQ/seedforge/internal/models"
)

var courseResources = []string{
	"Video Lectures", "Interactive Exercises", "Code Examples",
	"Reference Materials", "Community Access",
}

var baseTags = []string{
	"tutorial", "hands-on", "project-based", "beginner-friendly",
	"advanced", "certification", "practical",
}

// Courses generates the catalog. Each course snapshots one category name
// and references one instructor id; enrollment_count and rating stay
// zeroed for downstream aggregation.
func (g *Generator) Courses(count int, instructors []models.Instructor, categories []models.Category) []models.Course {
	now := time.Now()
	courses := make([]models.Course, 0, count)

	for i := 0; i < count; i++ {
		category := categories[g.faker.Number(0, len(categories)-1)]
		instructor := instructors[g.faker.Number(0, len(instructors)-1)]

		titles := []string{
			fmt.Sprintf("Complete %s Bootcamp", category.Name),
			fmt.Sprintf("Master %s from Scratch", category.Name),
			fmt.Sprintf("Advanced %s Techniques", category.Name),
			fmt.Sprintf("Professional %s Development", category.Name),
			fmt.Sprintf("%s for Beginners", category.Name),
			fmt.Sprintf("Modern %s Best Practices", category.Name),
		}

		tagPool := append([]string{strings.ToLower(category.Name)}, baseTags...)

		moduleCount := g.faker.Number(5, 12)
		modules := make([]string, 0, moduleCount)
		for j := 0; j < moduleCount; j++ {
			modules = append(modules, fmt.Sprintf("Module %d: %s", j+1, g.faker.Sentence(4)))
		}

		assignmentCount := g.faker.Number(2, 5)
		assignments := make([]string, 0, assignmentCount)
		for j := 0; j < assignmentCount; j++ {
			assignments = append(assignments, fmt.Sprintf("Project %d: %s", j+1, g.faker.Sentence(6)))
		}

		course := models.Course{
			ID:              newID(),
			Title:           g.faker.RandomString(titles),
			Description:     g.faker.Paragraph(2, 4, 12, " "),
			InstructorID:    instructor.ID,
			Category:        category.Name,
			Tags:            g.sample(tagPool, g.faker.Number(3, 6)),
			DifficultyLevel: g.faker.RandomString(g.schema.DifficultyLevels),
			DurationHours:   math.Round(g.faker.Float64Range(5.0, 40.0)*10) / 10,
			Price:           math.Round(g.faker.Float64Range(29.99, 299.99)*100) / 100,
			Currency:        "USD",
			Content: models.CourseContent{
				Modules:     modules,
				Resources:   courseResources,
				Assignments: assignments,
			},
			EnrollmentCount: 0,
			Rating:          models.CourseRating{},
			Status:          g.weightedString(g.schema.CourseStatuses, []float64{0.1, 0.85, 0.05}),
			CreatedAt:       models.NewDateTime(g.dateBetween(now.AddDate(-1, 0, 0), now)),
			UpdatedAt:       models.NewDateTime(g.dateBetween(now.AddDate(0, 0, -30), now)),
		}

		courses = append(courses, course)
	}

	return courses
}
