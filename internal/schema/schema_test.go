package schema

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultSchema(t *testing.T) {
	sch := Default()

	if len(sch.Categories) != 12 {
		t.Errorf("Expected 12 default categories, got %d", len(sch.Categories))
	}
	if len(sch.UserStatuses) != 3 {
		t.Errorf("Expected 3 user statuses, got %d", len(sch.UserStatuses))
	}
	if len(sch.CompletionStatuses) != 4 {
		t.Errorf("Expected 4 completion statuses, got %d", len(sch.CompletionStatuses))
	}
	if len(sch.EventTypes) != 6 {
		t.Errorf("Expected 6 event types, got %d", len(sch.EventTypes))
	}
}

func TestVolumesFor(t *testing.T) {
	lite, err := VolumesFor("lite")
	if err != nil {
		t.Fatalf("Expected lite mode to resolve, got %v", err)
	}
	if lite.Users != 1000 {
		t.Errorf("Expected 1000 users in lite mode, got %d", lite.Users)
	}
	if lite.Enrollments != 5000 {
		t.Errorf("Expected 5000 enrollments in lite mode, got %d", lite.Enrollments)
	}

	full, err := VolumesFor("full")
	if err != nil {
		t.Fatalf("Expected full mode to resolve, got %v", err)
	}
	if full.Users != 10000 {
		t.Errorf("Expected 10000 users in full mode, got %d", full.Users)
	}
	if full.AnalyticsEvents != 100000 {
		t.Errorf("Expected 100000 analytics events in full mode, got %d", full.AnalyticsEvents)
	}

	if _, err := VolumesFor("medium"); err == nil {
		t.Error("Expected unknown mode to fail, but it resolved")
	}
}

func TestVolumesTotal(t *testing.T) {
	lite, _ := VolumesFor("lite")
	expected := 1000 + 50 + 100 + 20 + 5000 + 1500 + 10000
	if lite.Total() != expected {
		t.Errorf("Expected lite total %d, got %d", expected, lite.Total())
	}
}

func TestLoadMissingFileFallsBack(t *testing.T) {
	sch, err := Load(filepath.Join(t.TempDir(), "does-not-exist.json"))
	if err != nil {
		t.Fatalf("Expected missing schema file to fall back, got %v", err)
	}

	if len(sch.Categories) != len(Default().Categories) {
		t.Errorf("Expected default categories on fallback, got %d", len(sch.Categories))
	}
}

func TestLoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schemas.json")
	content := `{"categories": ["Robotics", "Astronomy"]}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write schema file: %v", err)
	}

	sch, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load schema: %v", err)
	}

	if len(sch.Categories) != 2 || sch.Categories[0] != "Robotics" {
		t.Errorf("Expected custom categories, got %v", sch.Categories)
	}

	// Vocabularies absent from the file come from the defaults
	if len(sch.EventTypes) != 6 {
		t.Errorf("Expected default event types to fill in, got %v", sch.EventTypes)
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schemas.yaml")
	content := "difficulty_levels:\n  - easy\n  - hard\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write schema file: %v", err)
	}

	sch, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load schema: %v", err)
	}

	if len(sch.DifficultyLevels) != 2 || sch.DifficultyLevels[1] != "hard" {
		t.Errorf("Expected custom difficulty levels, got %v", sch.DifficultyLevels)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schemas.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("Failed to write schema file: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Expected malformed schema file to fail, but it loaded")
	}
}
