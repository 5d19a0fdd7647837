// internal/domain/models/course.go
package models

import "time"

// Course publication states.
const (
	CourseDraft     = "draft"
	CoursePublished = "published"
	CourseArchived  = "archived"
)

// Course is the root of the strict Course → Module → Topic containment
// hierarchy. A course belongs to one owning customer and may additionally
// be visible to other customers via SharedWith (a non-owning, read-only
// grant).
type Course struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	TitleCI     string `json:"title_ci"` // lowercase, diacritics-stripped
	Description string `json:"description"`
	Status      string `json:"status"` // draft | published | archived

	Modules []Module `json:"modules"`

	CustomerID string   `json:"customer_id"`
	SharedWith []string `json:"shared_with,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Module is an ordered section of a course containing ordered topics.
type Module struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Topics      []Topic `json:"topics"`
	Order       int     `json:"order"`
}

// Topic is the leaf unit of course content.
type Topic struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	VideoURL    string `json:"video_url,omitempty"`
	Duration    int    `json:"duration"` // minutes
	Order       int    `json:"order"`

	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	Ratings []Rating `json:"ratings,omitempty"`
}

// Rating is a single user's 1–5 rating of a topic.
type Rating struct {
	UserID    string    `json:"user_id"`
	Rating    int       `json:"rating"` // 1–5
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// SharedWithCustomer reports whether the course carries a read-only grant
// for the given customer id.
func (c *Course) SharedWithCustomer(customerID string) bool {
	for _, id := range c.SharedWith {
		if id == customerID {
			return true
		}
	}
	return false
}

// Module returns the module with the given id, if any.
func (c *Course) Module(moduleID string) (*Module, bool) {
	for i := range c.Modules {
		if c.Modules[i].ID == moduleID {
			return &c.Modules[i], true
		}
	}
	return nil, false
}

// Topic returns the topic with the given id, if any.
func (m *Module) Topic(topicID string) (*Topic, bool) {
	for i := range m.Topics {
		if m.Topics[i].ID == topicID {
			return &m.Topics[i], true
		}
	}
	return nil, false
}

// RatingBy returns the rating left by the given user, if any.
func (t *Topic) RatingBy(userID string) (Rating, bool) {
	for _, r := range t.Ratings {
		if r.UserID == userID {
			return r, true
		}
	}
	return Rating{}, false
}
