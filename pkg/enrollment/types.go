package enrollment

import (
	"strings"
	"time"
)

// CourseMode describes one way a learner can enroll in a course: its slug
// (honor, verified, ...), display name, and pricing metadata.
type CourseMode struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
	// MinPrice is the minimum charge for the mode, in the mode's currency.
	MinPrice int `json:"min_price"`
	// SuggestedPrices is the raw comma-separated list as the endpoint returns
	// it; use Prices for the split form.
	SuggestedPrices string     `json:"suggested_prices"`
	Currency        string     `json:"currency"`
	Expiration      *time.Time `json:"expiration_datetime,omitempty"`
	Description     string     `json:"description,omitempty"`
}

// Prices returns the suggested prices split on commas. An empty raw value
// yields a single empty-string element, matching the wire contract the
// payment step's configuration uses.
func (m CourseMode) Prices() []string {
	return strings.Split(m.SuggestedPrices, ",")
}

// CourseDetails is the enrollment view of a course: its identity, enrollment
// window, and available modes.
type CourseDetails struct {
	CourseID        string       `json:"course_id"`
	EnrollmentStart *time.Time   `json:"enrollment_start,omitempty"`
	EnrollmentEnd   *time.Time   `json:"enrollment_end,omitempty"`
	CourseStart     *time.Time   `json:"course_start,omitempty"`
	CourseEnd       *time.Time   `json:"course_end,omitempty"`
	InviteOnly      bool         `json:"invite_only"`
	Modes           []CourseMode `json:"course_modes"`
}

// Mode looks up a course mode by slug.
func (d CourseDetails) Mode(slug string) (CourseMode, bool) {
	for _, mode := range d.Modes {
		if mode.Slug == slug {
			return mode, true
		}
	}
	return CourseMode{}, false
}

// Enrollment records one learner's membership in one course.
type Enrollment struct {
	Created       *time.Time    `json:"created,omitempty"`
	Mode          string        `json:"mode"`
	IsActive      bool          `json:"is_active"`
	CourseDetails CourseDetails `json:"course_details"`
}
