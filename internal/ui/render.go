package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/mind-engage/serendipity-ink/internal/catalog"
	"github.com/mind-engage/serendipity-ink/internal/learner"
)

const wrapWidth = 72

var (
	pink = lipgloss.Color("#FF69B4")

	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(pink)
	greetingStyle = lipgloss.NewStyle().Foreground(pink)
	sectionStyle  = lipgloss.NewStyle().Bold(true)
	feedbackStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

func renderProfile(w io.Writer, v learner.View) {
	fmt.Fprintln(w, headerStyle.Render(v.Header))
	fmt.Fprintln(w, v.Subheader)
	fmt.Fprintln(w)
}

func renderList(w io.Writer, v learner.View) {
	fmt.Fprintln(w, greetingStyle.Render(v.Greeting))
	fmt.Fprintln(w, sectionStyle.Render(v.CoursesHeader))
	for i, c := range v.Courses {
		fmt.Fprintf(w, "  %d. %s\n", i+1, c.Title)
	}
	fmt.Fprintln(w)
}

func renderDetail(w io.Writer, v learner.View) {
	c := v.Course
	fmt.Fprintln(w, sectionStyle.Render(c.Title))
	fmt.Fprintln(w)
	fmt.Fprintln(w, wordwrap.String(c.Description, wrapWidth))
	fmt.Fprintln(w)
	fmt.Fprintln(w, wordwrap.String("Benefits: "+c.Benefits, wrapWidth))
	fmt.Fprintln(w, wordwrap.String("Job Opportunities: "+c.Jobs, wrapWidth))
	fmt.Fprintln(w)
	fmt.Fprintln(w, sectionStyle.Render("Learning Steps:"))
	for i, s := range v.Steps {
		fmt.Fprintf(w, "%d. %s\n", i+1, s)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, sectionStyle.Render("Test Your Knowledge:"))
}

func renderFeedback(w io.Writer, feedback string) {
	if feedback == "" {
		return
	}
	fmt.Fprintln(w, feedbackStyle.Render(wordwrap.String(feedback, wrapWidth)))
}

// coursePreview is shown next to the picker list.
func coursePreview(c catalog.Course, width int) string {
	if width <= 0 {
		width = wrapWidth
	}
	var b strings.Builder
	b.WriteString(c.Title + "\n\n")
	b.WriteString(wordwrap.String(c.Description, width) + "\n\n")
	b.WriteString(wordwrap.String("Benefits: "+c.Benefits, width) + "\n")
	b.WriteString(wordwrap.String("Job Opportunities: "+c.Jobs, width) + "\n")
	return b.String()
}
