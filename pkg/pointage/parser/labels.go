package parser

import "strings"

// DefaultValueOffset is the distance from a label cell to its value cell:
// the export writes "Label", a separator cell, then the value.
const DefaultValueOffset = 2

// Labels lists the prefixes that mark the fields of an employee block.
// A cell matches a field when its trimmed text starts with one of the
// field's prefixes (case-sensitive).
type Labels struct {
	ID         []string
	Name       []string
	Department []string
	// ValueOffset is the column distance from label to value.
	ValueOffset int
}

// DefaultLabels returns the labels of the French clock export plus their
// English equivalents.
func DefaultLabels() Labels {
	return Labels{
		ID:          []string{"Non", "ID"},
		Name:        []string{"Nom", "Name"},
		Department:  []string{"Département", "Department", "Dept"},
		ValueOffset: DefaultValueOffset,
	}
}

func (l Labels) offset() int {
	if l.ValueOffset < 1 {
		return DefaultValueOffset
	}
	return l.ValueOffset
}

// LabelMatch is the result of a label lookup in one row.
type LabelMatch struct {
	// Found reports whether a cell starts with the label.
	Found bool
	// LabelCol is the column of the label cell.
	LabelCol int
	// ValueCol is LabelCol plus the value offset.
	ValueCol int
	// HasValue is false when the row ends before ValueCol.
	HasValue bool
	// Value is the trimmed value cell, "" when absent.
	Value string
}

// TokenizeRow trims every cell of a row.
func TokenizeRow(cells []string) []string {
	tokens := make([]string, len(cells))
	for i, cell := range cells {
		tokens[i] = strings.TrimSpace(cell)
	}
	return tokens
}

// FindLabel returns the first token starting with any of prefixes and the
// token offset columns after it.
func FindLabel(tokens []string, prefixes []string, offset int) LabelMatch {
	for col, token := range tokens {
		if !hasAnyPrefix(token, prefixes) {
			continue
		}
		m := LabelMatch{Found: true, LabelCol: col, ValueCol: col + offset}
		if m.ValueCol < len(tokens) {
			m.HasValue = true
			m.Value = tokens[m.ValueCol]
		}
		return m
	}
	return LabelMatch{}
}

func hasAnyPrefix(token string, prefixes []string) bool {
	for _, p := range prefixes {
		if p != "" && strings.HasPrefix(token, p) {
			return true
		}
	}
	return false
}
