// Package product holds the product summary served by the API.
package product

import (
	_ "embed"
	"io"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed summary.yaml
var summaryYAML string

// Summary describes the product. Values are read-only once loaded.
type Summary struct {
	Problem          string   `json:"problem" yaml:"problem"`
	Solution         []string `json:"solution" yaml:"solution"`
	Features         []string `json:"features" yaml:"features"`
	TargetUsers      []string `json:"targetUsers" yaml:"targetUsers"`
	ValueProposition string   `json:"valueProposition" yaml:"valueProposition"`
	SuccessMetrics   []string `json:"successMetrics" yaml:"successMetrics"`
	TechStack        []string `json:"techStack" yaml:"techStack"`
	Monetization     string   `json:"monetization" yaml:"monetization"`
}

var (
	defaultSummary     Summary
	defaultSummaryOnce sync.Once
)

// Default returns a copy of the summary compiled into the binary. It panics
// if the embedded document is invalid.
func Default() Summary {
	defaultSummaryOnce.Do(func() {
		s, err := Load(strings.NewReader(summaryYAML))
		if err != nil {
			panic("product: embedded summary: " + err.Error())
		}
		defaultSummary = s
	})
	return defaultSummary.Clone()
}

// Load decodes a summary document. Unknown keys and empty fields are errors.
func Load(r io.Reader) (Summary, error) {
	var s Summary
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return Summary{}, errors.Wrap(err, "decode summary")
	}
	if err := s.Validate(); err != nil {
		return Summary{}, err
	}
	return s, nil
}

// Validate reports the first empty field.
func (s Summary) Validate() error {
	text := []struct {
		name  string
		value string
	}{
		{"problem", s.Problem},
		{"valueProposition", s.ValueProposition},
		{"monetization", s.Monetization},
	}
	for _, f := range text {
		if strings.TrimSpace(f.value) == "" {
			return errors.Errorf("summary field %q is empty", f.name)
		}
	}

	lists := []struct {
		name  string
		value []string
	}{
		{"solution", s.Solution},
		{"features", s.Features},
		{"targetUsers", s.TargetUsers},
		{"successMetrics", s.SuccessMetrics},
		{"techStack", s.TechStack},
	}
	for _, f := range lists {
		if len(f.value) == 0 {
			return errors.Errorf("summary field %q is empty", f.name)
		}
	}
	return nil
}

// Clone returns a deep copy.
func (s Summary) Clone() Summary {
	c := s
	c.Solution = append([]string(nil), s.Solution...)
	c.Features = append([]string(nil), s.Features...)
	c.TargetUsers = append([]string(nil), s.TargetUsers...)
	c.SuccessMetrics = append([]string(nil), s.SuccessMetrics...)
	c.TechStack = append([]string(nil), s.TechStack...)
	return c
}
