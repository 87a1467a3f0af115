package ui

import (
	"errors"

	"github.com/koki-develop/go-fzf"

	"github.com/mind-engage/serendipity-ink/internal/catalog"
)

// Picker chooses one course from the list. ok is false when the user cancels.
type Picker interface {
	PickCourse(courses []catalog.Course) (c catalog.Course, ok bool, err error)
}

// FZFPicker presents the catalog in an interactive fuzzy finder with the
// course details in a preview pane.
type FZFPicker struct{}

func (FZFPicker) PickCourse(courses []catalog.Course) (catalog.Course, bool, error) {
	if len(courses) == 0 {
		return catalog.Course{}, false, nil
	}
	f, err := fzf.New(
		fzf.WithPrompt("Available Courses > "),
		fzf.WithInputPosition(fzf.InputPositionTop),
		fzf.WithLimit(1),
	)
	if err != nil {
		return catalog.Course{}, false, err
	}
	idxs, err := f.Find(
		courses,
		func(i int) string { return courses[i].Title },
		fzf.WithPreviewWindow(func(i, w, h int) string {
			if i < 0 || i >= len(courses) {
				return ""
			}
			return coursePreview(courses[i], w-2)
		}),
	)
	if errors.Is(err, fzf.ErrAbort) {
		return catalog.Course{}, false, nil
	}
	if err != nil {
		return catalog.Course{}, false, err
	}
	if len(idxs) == 0 {
		return catalog.Course{}, false, nil
	}
	return courses[idxs[0]], true, nil
}
