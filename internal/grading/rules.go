package grading

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mind-engage/serendipity-ink/internal/catalog"
)

// RuleFile is the on-disk form of extra keyword rules:
//
//	rules:
//	  - course_id: "6"
//	    keywords: [budgeting, organization]
//	    feedback: "Nice! You know how to keep a household running."
type RuleFile struct {
	Rules []RuleSpec `yaml:"rules"`
}

type RuleSpec struct {
	CourseID string   `yaml:"course_id"`
	Keywords []string `yaml:"keywords"`
	Feedback string   `yaml:"feedback,omitempty"`
}

func (s RuleSpec) rule() Rule {
	ps := make([]Predicate, 0, len(s.Keywords))
	for _, k := range s.Keywords {
		if k = strings.TrimSpace(k); k != "" {
			ps = append(ps, ContainsFold(k))
		}
	}
	return Rule{Match: AnyOf(ps...), Feedback: s.Feedback}
}

func (s RuleSpec) validate() error {
	if s.CourseID == "" {
		return errors.New("course_id is required")
	}
	if _, ok := catalog.ByID(s.CourseID); !ok {
		return fmt.Errorf("unknown course %q", s.CourseID)
	}
	n := 0
	for _, k := range s.Keywords {
		if strings.TrimSpace(k) != "" {
			n++
		}
	}
	if n == 0 {
		return fmt.Errorf("course %q: at least one keyword is required", s.CourseID)
	}
	return nil
}

// ParseRules decodes a rule file and turns each entry into a WithRule option.
func ParseRules(r io.Reader) ([]Option, error) {
	var f RuleFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode rules: %w", err)
	}
	opts := make([]Option, 0, len(f.Rules))
	seen := make(map[string]int, len(f.Rules))
	for i, s := range f.Rules {
		if err := s.validate(); err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
		if j, dup := seen[s.CourseID]; dup {
			return nil, fmt.Errorf("rule %d: course %q already has rule %d", i, s.CourseID, j)
		}
		seen[s.CourseID] = i
		opts = append(opts, WithRule(s.CourseID, s.rule()))
	}
	return opts, nil
}

// LoadRulesFile reads path with ParseRules. An empty path yields no options.
func LoadRulesFile(path string) ([]Option, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseRules(f)
}
