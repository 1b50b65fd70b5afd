package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateTime serializes as an RFC 3339 string so every date in the output
// files round-trips through standard JSON tooling.
type DateTime time.Time

func NewDateTime(t time.Time) DateTime {
	return DateTime(t.UTC().Truncate(time.Second))
}

func (d DateTime) Time() time.Time {
	return time.Time(d)
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Format(time.RFC3339))
}

func (d *DateTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("datetime must be a string: %w", err)
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("invalid datetime %q: %w", s, err)
	}

	*d = DateTime(t)
	return nil
}
