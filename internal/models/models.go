// Package models defines the record shapes written to the generated
// collection files. IDs are ObjectID hex strings and act as the only
// foreign-key currency between collections.
package models

type Profile struct {
	FirstName   string   `json:"first_name"`
	LastName    string   `json:"last_name"`
	Bio         string   `json:"bio"`
	AvatarURL   string   `json:"avatar_url"`
	SocialLinks []string `json:"social_links"`
}

type Preferences struct {
	Language           string `json:"language"`
	Timezone           string `json:"timezone"`
	EmailNotifications bool   `json:"email_notifications"`
	DifficultyLevel    string `json:"difficulty_level"`
}

type User struct {
	ID           string      `json:"_id"`
	Email        string      `json:"email"`
	Username     string      `json:"username"`
	PasswordHash string      `json:"password_hash"`
	Profile      Profile     `json:"profile"`
	Preferences  Preferences `json:"preferences"`
	Status       string      `json:"status"`
	CreatedAt    DateTime    `json:"created_at"`
	UpdatedAt    DateTime    `json:"updated_at"`
}

type InstructorProfile struct {
	FirstName       string   `json:"first_name"`
	LastName        string   `json:"last_name"`
	Bio             string   `json:"bio"`
	AvatarURL       string   `json:"avatar_url"`
	SocialLinks     []string `json:"social_links"`
	Certifications  []string `json:"certifications"`
	ExperienceYears int      `json:"experience_years"`
	Specializations []string `json:"specializations"`
}

type InstructorStats struct {
	TotalCourses  int     `json:"total_courses"`
	TotalStudents int     `json:"total_students"`
	AverageRating float64 `json:"average_rating"`
	TotalRevenue  float64 `json:"total_revenue"`
}

type Instructor struct {
	ID           string            `json:"_id"`
	Email        string            `json:"email"`
	Username     string            `json:"username"`
	PasswordHash string            `json:"password_hash"`
	Profile      InstructorProfile `json:"profile"`
	Preferences  Preferences       `json:"preferences"`
	Stats        InstructorStats   `json:"instructor_stats"`
	Status       string            `json:"status"`
	CreatedAt    DateTime          `json:"created_at"`
	UpdatedAt    DateTime          `json:"updated_at"`
}

type Category struct {
	ID          string   `json:"_id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	ParentID    *string  `json:"parent_id"`
	Level       int      `json:"level"`
	CourseCount int      `json:"course_count"`
	Status      string   `json:"status"`
	CreatedAt   DateTime `json:"created_at"`
	UpdatedAt   DateTime `json:"updated_at"`
}

type CourseContent struct {
	Modules     []string `json:"modules"`
	Resources   []string `json:"resources"`
	Assignments []string `json:"assignments"`
}

type CourseRating struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

type Course struct {
	ID              string        `json:"_id"`
	Title           string        `json:"title"`
	Description     string        `json:"description"`
	InstructorID    string        `json:"instructor_id"`
	Category        string        `json:"category"`
	Tags            []string      `json:"tags"`
	DifficultyLevel string        `json:"difficulty_level"`
	DurationHours   float64       `json:"duration_hours"`
	Price           float64       `json:"price"`
	Currency        string        `json:"currency"`
	Content         CourseContent `json:"content"`
	EnrollmentCount int           `json:"enrollment_count"`
	Rating          CourseRating  `json:"rating"`
	Status          string        `json:"status"`
	CreatedAt       DateTime      `json:"created_at"`
	UpdatedAt       DateTime      `json:"updated_at"`
}

type Progress struct {
	Percentage       int      `json:"percentage"`
	CompletedModules int      `json:"completed_modules"`
	CurrentModule    string   `json:"current_module"`
	LastAccessed     DateTime `json:"last_accessed"`
}

type Enrollment struct {
	ID                string    `json:"_id"`
	UserID            string    `json:"user_id"`
	CourseID          string    `json:"course_id"`
	Progress          Progress  `json:"progress"`
	CompletionStatus  string    `json:"completion_status"`
	CompletionDate    *DateTime `json:"completion_date"`
	CertificateIssued bool      `json:"certificate_issued"`
	EnrolledAt        DateTime  `json:"enrolled_at"`
	UpdatedAt         DateTime  `json:"updated_at"`
}

type Review struct {
	ID               string   `json:"_id"`
	UserID           string   `json:"user_id"`
	CourseID         string   `json:"course_id"`
	Rating           int      `json:"rating"`
	Title            string   `json:"title"`
	Comment          string   `json:"comment"`
	HelpfulVotes     int      `json:"helpful_votes"`
	VerifiedPurchase bool     `json:"verified_purchase"`
	CreatedAt        DateTime `json:"created_at"`
	UpdatedAt        DateTime `json:"updated_at"`
}

type EventProperties struct {
	UserAgent       string `json:"user_agent"`
	IPAddress       string `json:"ip_address"`
	DurationSeconds *int   `json:"duration_seconds"`
}

type AnalyticsEvent struct {
	ID         string          `json:"_id"`
	UserID     string          `json:"user_id"`
	EventType  string          `json:"event_type"`
	CourseID   *string         `json:"course_id"`
	SessionID  string          `json:"session_id"`
	Properties EventProperties `json:"properties"`
	Timestamp  DateTime        `json:"timestamp"`
}

// Summary is written once after every collection has been persisted.
type Summary struct {
	GenerationMode string         `json:"generation_mode"`
	GeneratedAt    DateTime       `json:"generated_at"`
	Collections    map[string]int `json:"collections"`
	TotalRecords   int            `json:"total_records"`
}
