// Package answers serves canned training content keyed by field and subtopic.
package answers

import (
	_ "embed"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"ippt-coach/internal/domain"
)

//go:embed answers.yaml
var defaultContent []byte

type entry struct {
	Field    string `yaml:"field"`
	Subtopic string `yaml:"subtopic"`
	Text     string `yaml:"text"`
}

type document struct {
	Answers []entry `yaml:"answers"`
}

type key struct {
	field    string
	subtopic string
}

// Catalog is an immutable (field, subtopic) -> text table.
type Catalog struct {
	entries map[key]string
}

// Parse builds a Catalog from a YAML document.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("answers: decode: %w", err)
	}
	if len(doc.Answers) == 0 {
		return nil, errors.New("answers: document has no answers")
	}
	c := &Catalog{entries: make(map[key]string, len(doc.Answers))}
	for i, e := range doc.Answers {
		k := key{field: strings.TrimSpace(e.Field), subtopic: strings.TrimSpace(e.Subtopic)}
		if k.field == "" || k.subtopic == "" || strings.TrimSpace(e.Text) == "" {
			return nil, fmt.Errorf("answers: entry %d: field, subtopic and text are required", i)
		}
		if _, dup := c.entries[k]; dup {
			return nil, fmt.Errorf("answers: duplicate entry %s/%s", k.field, k.subtopic)
		}
		c.entries[k] = e.Text
	}
	return c, nil
}

// Default returns the catalog built from the embedded content.
func Default() *Catalog {
	c, err := Parse(defaultContent)
	if err != nil {
		panic(err)
	}
	return c
}

// Get returns the answer for a field and subtopic. Body part fields are
// served from the exercise that trains them.
func (c *Catalog) Get(field, subtopic string) (string, bool) {
	if field == "" {
		return "", false
	}
	text, ok := c.entries[key{field: alias(field), subtopic: subtopic}]
	if !ok {
		return "", false
	}
	return Reflow(text), true
}

func alias(field string) string {
	switch field {
	case "chest", "triceps":
		return domain.FieldPushUp
	case domain.FieldAbs, domain.FieldHip:
		return domain.FieldSitUp
	}
	return field
}

var inlineListItem = regexp.MustCompile(`[ \t]+(\d+\.[ \t])`)

// Reflow moves inline numbered steps ("... 1. Do this 2. Do that") onto
// their own lines and trims the result. It is idempotent.
func Reflow(text string) string {
	return strings.TrimSpace(inlineListItem.ReplaceAllString(text, "\n${1}"))
}
