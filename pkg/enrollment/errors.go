package enrollment

import (
	"errors"
	"fmt"
)

// Sentinel errors mirroring the enrollment endpoint's failure taxonomy.
var (
	// ErrEnrollmentNotFound reports that the learner has no enrollment in the
	// requested course.
	ErrEnrollmentNotFound = errors.New("enrollment: enrollment not found")
	// ErrCourseModeNotFound reports that the requested mode is not offered by
	// the course.
	ErrCourseModeNotFound = errors.New("enrollment: course mode not found")
	// ErrCourseNotFound reports that the course itself is unknown.
	ErrCourseNotFound = errors.New("enrollment: course not found")
)

// APIError carries an unexpected response from the enrollment endpoint.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("enrollment: api error (status %d)", e.StatusCode)
	}
	return fmt.Sprintf("enrollment: api error (status %d): %s", e.StatusCode, e.Message)
}
