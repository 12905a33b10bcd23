package ai

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// rawPreviewLen bounds how much model output a ParseError carries.
const rawPreviewLen = 300

// StatBlockSuggestion is a stat block proposed by the model. Every field is
// optional; callers default or sanitize before persisting anything.
type StatBlockSuggestion struct {
	Name         string `json:"name"`
	Race         string `json:"race"`
	Class        string `json:"char_class"`
	Level        int    `json:"level"`
	Alignment    string `json:"alignment"`
	Strength     int    `json:"strength"`
	Dexterity    int    `json:"dexterity"`
	Constitution int    `json:"constitution"`
	Intelligence int    `json:"intelligence"`
	Wisdom       int    `json:"wisdom"`
	Charisma     int    `json:"charisma"`
	ArmorClass   int    `json:"armor_class"`
	MaxHP        int    `json:"max_hp"`
	Speed        int    `json:"speed"`
	Notes        string `json:"notes"`
	Reasoning    string `json:"reasoning"`
}

// ParseError reports that no stat block could be extracted from model
// output. Raw holds a bounded prefix of the original text for diagnosis.
type ParseError struct {
	Raw string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse AI response: %s", e.Raw)
}

func newParseError(raw string) *ParseError {
	if len(raw) > rawPreviewLen {
		raw = raw[:rawPreviewLen]
	}
	return &ParseError{Raw: raw}
}

// ExtractStatBlock pulls a single JSON object out of free-form model text.
// Markdown code fences are stripped, then the region from the first '{' to
// the last '}' is parsed. The match is outermost-greedy, so prose before and
// after the object is discarded while nested braces survive. Fields are
// coerced loosely: numbers may arrive as floats or digit strings.
func ExtractStatBlock(raw string) (*StatBlockSuggestion, error) {
	text := stripFences(raw)

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return nil, newParseError(raw)
	}

	var fields map[string]any
	if err := json.Unmarshal([]byte(text[start:end+1]), &fields); err != nil {
		return nil, newParseError(raw)
	}

	return &StatBlockSuggestion{
		Name:         stringField(fields, "name"),
		Race:         stringField(fields, "race"),
		Class:        stringField(fields, "char_class"),
		Level:        intField(fields, "level"),
		Alignment:    stringField(fields, "alignment"),
		Strength:     intField(fields, "strength"),
		Dexterity:    intField(fields, "dexterity"),
		Constitution: intField(fields, "constitution"),
		Intelligence: intField(fields, "intelligence"),
		Wisdom:       intField(fields, "wisdom"),
		Charisma:     intField(fields, "charisma"),
		ArmorClass:   intField(fields, "armor_class"),
		MaxHP:        intField(fields, "max_hp"),
		Speed:        intField(fields, "speed"),
		Notes:        stringField(fields, "notes"),
		Reasoning:    stringField(fields, "reasoning"),
	}, nil
}

func stripFences(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}

func stringField(fields map[string]any, key string) string {
	if v, ok := fields[key].(string); ok {
		return v
	}
	return ""
}

func intField(fields map[string]any, key string) int {
	switch v := fields[key].(type) {
	case float64:
		return int(v)
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return 0
}
