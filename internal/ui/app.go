package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mind-engage/serendipity-ink/internal/catalog"
	"github.com/mind-engage/serendipity-ink/internal/learner"
	"github.com/mind-engage/serendipity-ink/internal/logger"
)

// App drives one learner session on a terminal: text prompts for the name
// and answer, a Picker for the course list.
type App struct {
	sess   *learner.Session
	in     *bufio.Reader
	out    io.Writer
	picker Picker
	log    *logger.Logger
}

func NewApp(sess *learner.Session, in io.Reader, out io.Writer, p Picker, log *logger.Logger) *App {
	if log == nil {
		log = logger.Nop()
	}
	return &App{sess: sess, in: bufio.NewReader(in), out: out, picker: p, log: log}
}

// Run returns nil when the user quits, cancels the picker or closes stdin.
func (a *App) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		var (
			done bool
			err  error
		)
		switch a.sess.State() {
		case learner.StateProfile:
			done, err = a.profile(ctx)
		case learner.StateCourseList:
			done, err = a.courseList()
		case learner.StateCourseDetail:
			done, err = a.courseDetail(ctx)
		default:
			return fmt.Errorf("unexpected state %s", a.sess.State())
		}
		if err != nil || done {
			return err
		}
	}
}

func (a *App) profile(ctx context.Context) (bool, error) {
	renderProfile(a.out, a.sess.Render())
	name, err := a.readLine(ctx, "Enter your name: ")
	if err != nil {
		return eof(err)
	}
	if err := a.sess.SetName(name); err != nil {
		return false, err
	}
	ok, err := a.sess.CreateProfile()
	if err != nil {
		return false, err
	}
	if ok {
		a.log.Debug("profile created")
	}
	return false, nil
}

func (a *App) courseList() (bool, error) {
	renderList(a.out, a.sess.Render())
	c, ok, err := a.picker.PickCourse(catalog.All())
	if err != nil {
		return false, err
	}
	if !ok {
		return true, nil
	}
	return false, a.sess.SelectCourse(c)
}

// courseDetail shows the course once, then loops answer, feedback and the
// retry/back/quit choice until the user leaves the screen.
func (a *App) courseDetail(ctx context.Context) (bool, error) {
	v := a.sess.Render()
	renderDetail(a.out, v)
	for {
		answer, err := a.readLine(ctx, v.Prompt+" ")
		if err != nil {
			return eof(err)
		}
		if err := a.sess.SetAnswer(answer); err != nil {
			return false, err
		}
		res, err := a.sess.SubmitAnswer()
		if err != nil {
			return false, err
		}
		a.log.Debug("answer graded", "course_id", v.Course.ID, "passed", res.Passed)
		renderFeedback(a.out, a.sess.Feedback())

		choice, err := a.readLine(ctx, "[Enter] try again, [b] back to course list, [q] quit: ")
		if err != nil {
			return eof(err)
		}
		switch strings.ToLower(strings.TrimSpace(choice)) {
		case "b", "back":
			return false, a.sess.GoBack()
		case "q", "quit":
			return true, nil
		}
	}
}

type line struct {
	text string
	err  error
}

// readLine returns ctx.Err() as soon as ctx is done. The pending read is
// left to finish on its own since Run returns right after.
func (a *App) readLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprint(a.out, prompt)
	ch := make(chan line, 1)
	go func() {
		s, err := a.in.ReadString('\n')
		ch <- line{s, err}
	}()
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l := <-ch:
		if l.err != nil && (l.text == "" || !errors.Is(l.err, io.EOF)) {
			return "", l.err
		}
		return strings.TrimRight(l.text, "\r\n"), nil
	}
}

// eof turns a closed input into a clean exit.
func eof(err error) (bool, error) {
	if errors.Is(err, io.EOF) {
		return true, nil
	}
	return false, err
}
