package learner

import (
	"fmt"

	"github.com/mind-engage/serendipity-ink/internal/catalog"
)

const (
	Header        = "Welcome to Serendipity Ink"
	Subheader     = "Empowering Domestic Workers through Education"
	CoursesHeader = "Available Courses"
)

// View is what the screen shows for a session. Only the fields of the
// current state are set.
type View struct {
	SessionID string `json:"session_id,omitempty"`
	State     State  `json:"state"`

	// profile
	Header    string `json:"header,omitempty"`
	Subheader string `json:"subheader,omitempty"`

	// course list
	Greeting      string           `json:"greeting,omitempty"`
	CoursesHeader string           `json:"courses_header,omitempty"`
	Courses       []catalog.Course `json:"courses,omitempty"`

	// course detail
	Course   *catalog.Course `json:"course,omitempty"`
	Steps    []string        `json:"steps,omitempty"`
	Prompt   string          `json:"prompt,omitempty"`
	Answer   string          `json:"answer,omitempty"`
	Feedback string          `json:"feedback,omitempty"`
}

func Greeting(name string) string { return fmt.Sprintf("Hello, %s!", name) }

func (s *Session) Render() View {
	v := View{State: s.state}
	switch s.state {
	case StateProfile:
		v.Header = Header
		v.Subheader = Subheader
	case StateCourseList:
		v.Greeting = Greeting(s.name)
		v.CoursesHeader = CoursesHeader
		v.Courses = catalog.All()
	case StateCourseDetail:
		c := *s.course
		v.Course = &c
		v.Steps = catalog.Steps(c)
		v.Prompt = catalog.Prompt(c)
		v.Answer = s.answer
		v.Feedback = s.feedback
	}
	return v
}
