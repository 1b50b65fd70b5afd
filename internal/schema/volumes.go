package schema

import "fmt"

// Volumes is the per-collection record target for one generation run.
type Volumes struct {
	Users           int
	Instructors     int
	Courses         int
	Categories      int
	Enrollments     int
	Reviews         int
	AnalyticsEvents int
}

func (v Volumes) Total() int {
	return v.Users + v.Instructors + v.Courses + v.Categories +
		v.Enrollments + v.Reviews + v.AnalyticsEvents
}

// VolumesFor maps a mode name to its record targets. Unknown modes are a
// configuration error and must be rejected before any generation starts.
func VolumesFor(mode string) (Volumes, error) {
	switch mode {
	case "lite":
		return Volumes{
			Users:           1000,
			Instructors:     50,
			Courses:         100,
			Categories:      20,
			Enrollments:     5000,
			Reviews:         1500,
			AnalyticsEvents: 10000,
		}, nil
	case "full":
		return Volumes{
			Users:           10000,
			Instructors:     200,
			Courses:         1000,
			Categories:      50,
			Enrollments:     50000,
			Reviews:         15000,
			AnalyticsEvents: 100000,
		}, nil
	default:
		return Volumes{}, fmt.Errorf("unknown generation mode: %s. Supported modes: [lite full]", mode)
	}
}
