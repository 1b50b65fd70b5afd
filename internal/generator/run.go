package generator

import (
	"fmt"
	"time"

	"github.com/fatih/color"

	"github.com/Lumos-Labs-HQ/seedforge/internal/models"
)

// Writer persists one named collection and reports how many records it
// wrote. The JSON and SQLite sinks both satisfy it.
type Writer interface {
	WriteCollection(name string, records any) (int, error)
}

// Collections lists every generated collection in dependency order.
var Collections = []string{
	"categories", "users", "instructors", "courses",
	"enrollments", "reviews", "analytics_events",
}

// Run executes every factory in dependency order, persists each collection
// as soon as it is built, and finishes with a generation summary. A
// collection other than "all" still triggers the full pipeline: all
// downstream collections need the upstream ids to stay consistent.
func (g *Generator) Run(mode, collection string, w Writer) (*models.Summary, error) {
	if collection != "" && collection != "all" {
		color.Yellow("⚠️  %s requested, but single-collection runs still generate the full dataset", collection)
	}

	color.Cyan("🚀 Starting %s data generation...", mode)
	counts := make(map[string]int, len(Collections))

	color.Cyan("📁 Generating %d categories...", g.vol.Categories)
	categories := g.Categories(g.vol.Categories)
	if err := g.persist(w, "categories", categories, counts); err != nil {
		return nil, err
	}

	color.Cyan("👥 Generating %d users...", g.vol.Users)
	users := g.Users(g.vol.Users)
	if err := g.persist(w, "users", users, counts); err != nil {
		return nil, err
	}

	color.Cyan("🎓 Generating %d instructors...", g.vol.Instructors)
	instructors := g.Instructors(g.vol.Instructors)
	if err := g.persist(w, "instructors", instructors, counts); err != nil {
		return nil, err
	}

	color.Cyan("📚 Generating %d courses...", g.vol.Courses)
	courses := g.Courses(g.vol.Courses, instructors, categories)
	if err := g.persist(w, "courses", courses, counts); err != nil {
		return nil, err
	}

	color.Cyan("📝 Generating %d enrollments...", g.vol.Enrollments)
	enrollments, err := g.Enrollments(g.vol.Enrollments, users, courses)
	if err != nil {
		return nil, err
	}
	if err := g.persist(w, "enrollments", enrollments, counts); err != nil {
		return nil, err
	}

	color.Cyan("⭐ Generating up to %d reviews...", g.vol.Reviews)
	reviews := g.Reviews(g.vol.Reviews, enrollments)
	if err := g.persist(w, "reviews", reviews, counts); err != nil {
		return nil, err
	}

	color.Cyan("📊 Generating %d analytics events...", g.vol.AnalyticsEvents)
	events, err := g.AnalyticsEvents(g.vol.AnalyticsEvents, users, courses)
	if err != nil {
		return nil, err
	}
	if err := g.persist(w, "analytics_events", events, counts); err != nil {
		return nil, err
	}

	total := 0
	for _, n := range counts {
		total += n
	}

	summary := &models.Summary{
		GenerationMode: mode,
		GeneratedAt:    models.NewDateTime(time.Now()),
		Collections:    counts,
		TotalRecords:   total,
	}

	if _, err := w.WriteCollection("generation_summary", []*models.Summary{summary}); err != nil {
		return nil, fmt.Errorf("failed to persist generation summary: %w", err)
	}

	color.Green("\n🎉 Data generation complete! Generated %s dataset.", mode)
	return summary, nil
}

func (g *Generator) persist(w Writer, name string, records any, counts map[string]int) error {
	n, err := w.WriteCollection(name, records)
	if err != nil {
		return fmt.Errorf("failed to persist %s: %w", name, err)
	}

	counts[name] = n
	color.Green("  ✅ %s: %d records written", name, n)
	return nil
}
