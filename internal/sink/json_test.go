package sink

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Lumos-Labs-HQ/seedforge/internal/models"
)

func sampleEnrollments() []models.Enrollment {
	now := time.Now()
	completed := models.NewDateTime(now)

	return []models.Enrollment{
		{
			ID:       "65f2a1b4c3d2e1f001020304",
			UserID:   "65f2a1b4c3d2e1f001020305",
			CourseID: "65f2a1b4c3d2e1f001020306",
			Progress: models.Progress{
				Percentage:    100,
				CurrentModule: "Module 3",
				LastAccessed:  models.NewDateTime(now),
			},
			CompletionStatus:  "completed",
			CompletionDate:    &completed,
			CertificateIssued: true,
			EnrolledAt:        models.NewDateTime(now.AddDate(0, -1, 0)),
			UpdatedAt:         models.NewDateTime(now),
		},
		{
			ID:               "65f2a1b4c3d2e1f001020307",
			UserID:           "65f2a1b4c3d2e1f001020308",
			CourseID:         "65f2a1b4c3d2e1f001020306",
			Progress:         models.Progress{LastAccessed: models.NewDateTime(now)},
			CompletionStatus: "not_started",
			EnrolledAt:       models.NewDateTime(now.AddDate(0, 0, -3)),
			UpdatedAt:        models.NewDateTime(now),
		},
	}
}

func TestJSONWriteAndRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s := NewJSON(filepath.Join(dir, "generated"))

	records := sampleEnrollments()
	n, err := s.WriteCollection("enrollments", records)
	if err != nil {
		t.Fatalf("Failed to write collection: %v", err)
	}
	if n != len(records) {
		t.Errorf("Expected %d records reported, got %d", len(records), n)
	}

	data, err := os.ReadFile(filepath.Join(dir, "generated", "enrollments.json"))
	if err != nil {
		t.Fatalf("Failed to read output file: %v", err)
	}

	var parsed []models.Enrollment
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("Failed to parse output: %v", err)
	}

	if len(parsed) != len(records) {
		t.Fatalf("Expected %d records after round-trip, got %d", len(records), len(parsed))
	}
	for i := range records {
		if parsed[i].ID != records[i].ID {
			t.Errorf("Record %d id changed: %s != %s", i, parsed[i].ID, records[i].ID)
		}
		if parsed[i].UserID != records[i].UserID || parsed[i].CourseID != records[i].CourseID {
			t.Errorf("Record %d relations changed", i)
		}
		if !parsed[i].EnrolledAt.Time().Equal(records[i].EnrolledAt.Time()) {
			t.Errorf("Record %d enrolled_at changed: %v != %v", i, parsed[i].EnrolledAt.Time(), records[i].EnrolledAt.Time())
		}
	}

	if parsed[0].CompletionDate == nil {
		t.Error("Completed record lost its completion_date")
	}
	if parsed[1].CompletionDate != nil {
		t.Error("Not-started record gained a completion_date")
	}
}

func TestJSONDatesAreISO8601(t *testing.T) {
	dir := t.TempDir()
	s := NewJSON(dir)

	if _, err := s.WriteCollection("enrollments", sampleEnrollments()); err != nil {
		t.Fatalf("Failed to write collection: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "enrollments.json"))
	if err != nil {
		t.Fatalf("Failed to read output file: %v", err)
	}

	var raw []map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("Failed to parse output: %v", err)
	}

	enrolled, ok := raw[0]["enrolled_at"].(string)
	if !ok {
		t.Fatalf("Expected enrolled_at to be a string, got %T", raw[0]["enrolled_at"])
	}
	if _, err := time.Parse(time.RFC3339, enrolled); err != nil {
		t.Errorf("enrolled_at %q is not RFC 3339: %v", enrolled, err)
	}
}

func TestJSONCreatesOutputDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "generated")
	s := NewJSON(dir)

	if _, err := s.WriteCollection("users", []models.User{}); err != nil {
		t.Fatalf("Failed to write into nested directory: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "users.json"))
	if err != nil {
		t.Fatalf("Failed to read output file: %v", err)
	}
	if strings.TrimSpace(string(data)) != "[]" {
		t.Errorf("Expected empty array, got %q", string(data))
	}
}

func TestJSONRejectsUnserializableValues(t *testing.T) {
	s := NewJSON(t.TempDir())

	if _, err := s.WriteCollection("bad", []any{func() {}}); err == nil {
		t.Error("Expected marshal error for unserializable value, but write succeeded")
	}
}
