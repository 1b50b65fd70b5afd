package schema

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

// Schema holds the vocabularies every factory draws from. A project can
// override it with a JSON or YAML file; missing files fall back to the
// built-in defaults.
type Schema struct {
	Categories         []string `json:"categories" yaml:"categories"`
	DifficultyLevels   []string `json:"difficulty_levels" yaml:"difficulty_levels"`
	CourseStatuses     []string `json:"course_statuses" yaml:"course_statuses"`
	UserStatuses       []string `json:"user_statuses" yaml:"user_statuses"`
	CompletionStatuses []string `json:"completion_statuses" yaml:"completion_statuses"`
	EventTypes         []string `json:"event_types" yaml:"event_types"`
}

func Default() *Schema {
	return &Schema{
		Categories: []string{
			"Programming", "Data Science", "Web Development", "Database",
			"DevOps", "Machine Learning", "Cybersecurity", "Mobile Development",
			"Cloud Computing", "Blockchain", "Game Development", "UI/UX Design",
		},
		DifficultyLevels: []string{"beginner", "intermediate", "advanced"},
		CourseStatuses:   []string{"draft", "published", "archived"},
		UserStatuses:     []string{"active", "inactive", "suspended"},
		CompletionStatuses: []string{
			"not_started", "in_progress", "completed", "dropped",
		},
		EventTypes: []string{
			"login", "logout", "course_view", "enrollment",
			"completion", "quiz_attempt",
		},
	}
}

// Load reads a schema file. A missing file is not an error: the built-in
// defaults are returned and a warning is printed. Vocabularies left empty
// in the file are also filled from the defaults.
func Load(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			color.Yellow("⚠️  Schema file %s not found, using default schemas", path)
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}

	var sch Schema
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &sch); err != nil {
			return nil, fmt.Errorf("failed to parse schema file %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &sch); err != nil {
			return nil, fmt.Errorf("failed to parse schema file %s: %w", path, err)
		}
	}

	sch.fillDefaults()
	return &sch, nil
}

func (s *Schema) fillDefaults() {
	defaults := Default()

	if len(s.Categories) == 0 {
		s.Categories = defaults.Categories
	}
	if len(s.DifficultyLevels) == 0 {
		s.DifficultyLevels = defaults.DifficultyLevels
	}
	if len(s.CourseStatuses) == 0 {
		s.CourseStatuses = defaults.CourseStatuses
	}
	if len(s.UserStatuses) == 0 {
		s.UserStatuses = defaults.UserStatuses
	}
	if len(s.CompletionStatuses) == 0 {
		s.CompletionStatuses = defaults.CompletionStatuses
	}
	if len(s.EventTypes) == 0 {
		s.EventTypes = defaults.EventTypes
	}
}
