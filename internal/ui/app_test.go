package ui

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/mind-engage/serendipity-ink/internal/catalog"
	"github.com/mind-engage/serendipity-ink/internal/grading"
	"github.com/mind-engage/serendipity-ink/internal/learner"
)

// scriptedPicker returns the given course ids in order, then cancels.
type scriptedPicker struct {
	ids   []string
	calls int
	err   error
}

func (p *scriptedPicker) PickCourse(courses []catalog.Course) (catalog.Course, bool, error) {
	p.calls++
	if p.err != nil {
		return catalog.Course{}, false, p.err
	}
	if len(p.ids) == 0 {
		return catalog.Course{}, false, nil
	}
	id := p.ids[0]
	p.ids = p.ids[1:]
	for _, c := range courses {
		if c.ID == id {
			return c, true, nil
		}
	}
	return catalog.Course{}, false, nil
}

func run(t *testing.T, input string, p Picker) (*learner.Session, string, error) {
	t.Helper()
	sess := learner.NewSession(grading.NewDefaultGrader())
	var out bytes.Buffer
	err := NewApp(sess, strings.NewReader(input), &out, p, nil).Run(context.Background())
	return sess, out.String(), err
}

func TestScenarioPositive(t *testing.T) {
	p := &scriptedPicker{ids: []string{"3"}}
	sess, out, err := run(t, "Ana\nI learned budgeting\nq\n", p)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		learner.Header,
		"Hello, Ana!",
		"8. Gardening and Landscaping",
		"Financial Management",
		"1. Understand the basics of Financial Management.",
		"What have you learned about Financial Management?",
		grading.FeedbackPositive,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
	if sess.State() != learner.StateCourseDetail || sess.Feedback() != grading.FeedbackPositive {
		t.Fatalf("session = %s / %q", sess.State(), sess.Feedback())
	}
}

func TestScenarioRetryThenBack(t *testing.T) {
	p := &scriptedPicker{ids: []string{"3"}}
	sess, out, err := run(t, "Ana\nI learned nothing\n\nstill nothing\nb\n", p)
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(out, grading.FeedbackRetry); n != 2 {
		t.Errorf("retry feedback shown %d times want 2", n)
	}
	if sess.State() != learner.StateCourseList {
		t.Fatalf("state = %s", sess.State())
	}
	// after going back, the picker is shown again and cancelled
	if p.calls != 2 {
		t.Fatalf("picker calls = %d want 2", p.calls)
	}
}

func TestEmptyNameAsksAgain(t *testing.T) {
	p := &scriptedPicker{}
	sess, out, err := run(t, "\n\nBo\n", p)
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(out, "Enter your name: "); n != 3 {
		t.Fatalf("name prompt shown %d times want 3", n)
	}
	if sess.State() != learner.StateCourseList || sess.Name() != "Bo" {
		t.Fatalf("session = %s / %q", sess.State(), sess.Name())
	}
}

func TestClosedInputEndsCleanly(t *testing.T) {
	sess, _, err := run(t, "", &scriptedPicker{})
	if err != nil || sess.State() != learner.StateProfile {
		t.Fatalf("Run = %v, state %s", err, sess.State())
	}
	// an answer without trailing newline is still graded
	sess, out, err := run(t, "Ana\nbudgeting", &scriptedPicker{ids: []string{"3"}})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, grading.FeedbackPositive) || sess.Answer() != "budgeting" {
		t.Fatalf("answer = %q\n%s", sess.Answer(), out)
	}
}

func TestPickerError(t *testing.T) {
	boom := errors.New("no tty")
	_, _, err := run(t, "Ana\n", &scriptedPicker{err: boom})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v", err)
	}
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sess := learner.NewSession(nil)
	err := NewApp(sess, strings.NewReader("Ana\n"), &bytes.Buffer{}, &scriptedPicker{}, nil).Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v", err)
	}
}

func TestCancelWhileWaitingForInput(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	ctx, cancel := context.WithCancel(context.Background())
	sess := learner.NewSession(nil)
	done := make(chan error, 1)
	go func() {
		done <- NewApp(sess, pr, io.Discard, &scriptedPicker{}, nil).Run(ctx)
	}()

	// nothing is ever written, so Run sits on the name prompt
	time.Sleep(20 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("err = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	if sess.State() != learner.StateProfile {
		t.Fatalf("state = %s", sess.State())
	}
}

func TestCoursePreview(t *testing.T) {
	c, _ := catalog.ByID("4")
	got := coursePreview(c, 30)
	if !strings.HasPrefix(got, "Health & Safety\n") || !strings.Contains(got, "Job Opportunities:") {
		t.Fatalf("preview = %q", got)
	}
	for _, line := range strings.Split(got, "\n") {
		if len(line) > 30 {
			t.Errorf("line longer than width: %q", line)
		}
	}
}
