package learner

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/mind-engage/serendipity-ink/internal/grading"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func TestStoreCreateAndDo(t *testing.T) {
	st := NewInMemoryStore(grading.NewDefaultGrader())
	v, err := st.Create()
	if err != nil {
		t.Fatal(err)
	}
	if v.SessionID == "" || v.State != StateProfile {
		t.Fatalf("created view = %+v", v)
	}
	if st.Len() != 1 {
		t.Fatalf("Len = %d", st.Len())
	}

	v, err = st.Do(v.SessionID, func(s *Session) error {
		if err := s.SetName("Ana"); err != nil {
			return err
		}
		_, err := s.CreateProfile()
		return err
	})
	if err != nil {
		t.Fatal(err)
	}
	if v.State != StateCourseList || v.Greeting != "Hello, Ana!" {
		t.Fatalf("view = %+v", v)
	}

	got, err := st.View(v.SessionID)
	if err != nil || got.State != StateCourseList || got.SessionID != v.SessionID {
		t.Fatalf("View = %+v, %v", got, err)
	}
}

func TestStoreDoReturnsViewOnError(t *testing.T) {
	st := NewInMemoryStore(nil)
	v, _ := st.Create()
	got, err := st.Do(v.SessionID, func(s *Session) error { return s.GoBack() })
	if !errors.Is(err, ErrActionNotAllowed) {
		t.Fatalf("err = %v", err)
	}
	if got.State != StateProfile {
		t.Fatalf("view = %+v", got)
	}
}

func TestStoreUnknownSession(t *testing.T) {
	st := NewInMemoryStore(nil)
	if _, err := st.View("nope"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("err = %v", err)
	}
}

func TestStoreExpiry(t *testing.T) {
	clk := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	st := NewInMemoryStore(nil, WithTTL(time.Hour), WithClock(clk.Now))

	a, _ := st.Create()
	clk.Advance(30 * time.Minute)
	b, _ := st.Create()

	clk.Advance(45 * time.Minute)
	// a is idle for 75m, b for 45m
	if n := st.Sweep(clk.Now()); n != 1 {
		t.Fatalf("Sweep = %d want 1", n)
	}
	if _, err := st.View(a.SessionID); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("a err = %v", err)
	}
	if _, err := st.View(b.SessionID); err != nil {
		t.Fatalf("b err = %v", err)
	}

	// access refreshed b; an expired lookup removes it without a sweep
	clk.Advance(2 * time.Hour)
	if _, err := st.View(b.SessionID); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("b after idle err = %v", err)
	}
	if st.Len() != 0 {
		t.Fatalf("Len = %d", st.Len())
	}
}

func TestStoreNoTTLNeverExpires(t *testing.T) {
	clk := &fakeClock{t: time.Unix(0, 0)}
	st := NewInMemoryStore(nil, WithClock(clk.Now))
	v, _ := st.Create()
	clk.Advance(1000 * time.Hour)
	if n := st.Sweep(clk.Now()); n != 0 {
		t.Fatalf("Sweep = %d", n)
	}
	if _, err := st.View(v.SessionID); err != nil {
		t.Fatal(err)
	}
}

func TestStoreDoSerializesActions(t *testing.T) {
	st := NewInMemoryStore(grading.NewDefaultGrader())
	v, _ := st.Create()
	c := course(t, "3")
	if _, err := st.Do(v.SessionID, func(s *Session) error {
		_ = s.SetName("Ana")
		if _, err := s.CreateProfile(); err != nil {
			return err
		}
		return s.SelectCourse(c)
	}); err != nil {
		t.Fatal(err)
	}

	const workers = 16
	calls := 0 // only touched inside fn; the race detector flags unserialized access
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			answer := fmt.Sprintf("answer %d", i)
			if i%2 == 0 {
				answer += " budgeting"
			}
			_, err := st.Do(v.SessionID, func(s *Session) error {
				calls++
				if err := s.SetAnswer(answer); err != nil {
					return err
				}
				res, err := s.SubmitAnswer()
				if err != nil {
					return err
				}
				if s.Answer() != answer || res.Passed != (i%2 == 0) {
					return fmt.Errorf("worker %d saw answer %q passed=%v", i, s.Answer(), res.Passed)
				}
				return nil
			})
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Error(err)
		}
	}
	if calls != workers {
		t.Fatalf("calls = %d want %d", calls, workers)
	}
	got, err := st.View(v.SessionID)
	if err != nil || got.State != StateCourseDetail || got.Feedback == "" {
		t.Fatalf("View = %+v, %v", got, err)
	}
}
