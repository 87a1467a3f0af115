package learner

import (
	"errors"
	"fmt"

	"github.com/mind-engage/serendipity-ink/internal/catalog"
	"github.com/mind-engage/serendipity-ink/internal/grading"
)

// State is the screen a session is on. Transitions only move forward out of
// StateProfile; there is no way back to it.
type State int

const (
	StateProfile      State = iota // S0: enter a name
	StateCourseList                // S1: browse the catalog
	StateCourseDetail              // S2: read a course and answer
)

func (s State) String() string {
	switch s {
	case StateProfile:
		return "profile"
	case StateCourseList:
		return "course_list"
	case StateCourseDetail:
		return "course_detail"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

func (s State) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *State) UnmarshalText(b []byte) error {
	for _, st := range []State{StateProfile, StateCourseList, StateCourseDetail} {
		if st.String() == string(b) {
			*s = st
			return nil
		}
	}
	return fmt.Errorf("unknown state %q", b)
}

var (
	ErrActionNotAllowed = errors.New("action not allowed in current state")
	ErrSessionNotFound  = errors.New("session not found")
)

// Session is the single mutable object behind one screen. It is not safe for
// concurrent use; Store serializes access.
type Session struct {
	grader grading.Grader

	state    State
	name     string
	course   *catalog.Course
	answer   string
	feedback string
}

func NewSession(g grading.Grader) *Session {
	if g == nil {
		g = grading.NewDefaultGrader()
	}
	return &Session{grader: g}
}

func (s *Session) State() State     { return s.state }
func (s *Session) Name() string     { return s.name }
func (s *Session) Answer() string   { return s.answer }
func (s *Session) Feedback() string { return s.feedback }

// Course returns the selected course, or false outside StateCourseDetail.
func (s *Session) Course() (catalog.Course, bool) {
	if s.course == nil {
		return catalog.Course{}, false
	}
	return *s.course, true
}

func (s *Session) require(st State, action string) error {
	if s.state != st {
		return fmt.Errorf("%s in %s: %w", action, s.state, ErrActionNotAllowed)
	}
	return nil
}

func (s *Session) SetName(name string) error {
	if err := s.require(StateProfile, "set name"); err != nil {
		return err
	}
	s.name = name
	return nil
}

// CreateProfile moves to the course list when a name has been entered.
// An empty name leaves the session where it is and is not an error.
func (s *Session) CreateProfile() (bool, error) {
	if err := s.require(StateProfile, "create profile"); err != nil {
		return false, err
	}
	if s.name == "" {
		return false, nil
	}
	s.state = StateCourseList
	return true, nil
}

func (s *Session) SelectCourse(c catalog.Course) error {
	if err := s.require(StateCourseList, "select course"); err != nil {
		return err
	}
	s.course = &c
	s.answer = ""
	s.feedback = ""
	s.state = StateCourseDetail
	return nil
}

func (s *Session) SetAnswer(text string) error {
	if err := s.require(StateCourseDetail, "set answer"); err != nil {
		return err
	}
	s.answer = text
	return nil
}

// SubmitAnswer grades the current answer and keeps the result as feedback.
func (s *Session) SubmitAnswer() (grading.Result, error) {
	if err := s.require(StateCourseDetail, "submit answer"); err != nil {
		return grading.Result{}, err
	}
	res := s.grader.Grade(s.answer, s.course.ID)
	s.feedback = res.Feedback
	return res, nil
}

// GoBack returns to the course list. Answer and feedback are cleared on the
// next SelectCourse, not here.
func (s *Session) GoBack() error {
	if err := s.require(StateCourseDetail, "go back"); err != nil {
		return err
	}
	s.course = nil
	s.state = StateCourseList
	return nil
}
