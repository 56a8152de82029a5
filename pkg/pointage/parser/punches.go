package parser

import (
	"strings"
	"time"

	"github.com/ukaji3/pointage-go/pkg/pointage/models"
)

// punchLayout takes one or two digits for both hour and minute.
const punchLayout = "15:4"

// SplitPunchTokens splits a punch cell on line breaks, trims every line and
// drops blank ones.
func SplitPunchTokens(text string) []string {
	lines := strings.FieldsFunc(text, isLineBreak)
	tokens := make([]string, 0, len(lines))
	for _, line := range lines {
		if t := strings.TrimSpace(line); t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', 0x1c, 0x1d, 0x1e, 0x85, 0x2028, 0x2029:
		return true
	}
	return false
}

// ParsePunch parses an "HH:MM" token. Single-digit fields ("8:5") are accepted.
func ParsePunch(token string) (models.TimePunch, error) {
	t, err := time.Parse(punchLayout, token)
	if err != nil {
		return models.TimePunch{}, err
	}
	return models.TimePunch{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// PairPunches pairs punches in order: (0,1), (2,3), ... A trailing
// unmatched punch is ignored.
func PairPunches(punches []models.TimePunch) []models.WorkInterval {
	intervals := make([]models.WorkInterval, 0, len(punches)/2)
	for k := 0; k+1 < len(punches); k += 2 {
		intervals = append(intervals, models.WorkInterval{Start: punches[k], End: punches[k+1]})
	}
	return intervals
}

// SumMinutes totals interval lengths, each corrected for midnight rollover.
func SumMinutes(intervals []models.WorkInterval) int {
	total := 0
	for _, iv := range intervals {
		total += iv.Minutes()
	}
	return total
}

// ParsePunchCell turns the text of one day cell into work intervals. row and
// col only locate the cell in drops and errors.
func ParsePunchCell(text string, row, col int, policy PunchPolicy) ([]models.WorkInterval, error) {
	tokens := SplitPunchTokens(text)

	punches := make([]models.TimePunch, 0, len(tokens))
	for _, token := range tokens {
		p, err := ParsePunch(token)
		if err != nil {
			if policy.Strict {
				return nil, &PunchError{Row: row, Col: col, Token: token, Reason: "not an HH:MM time"}
			}
			policy.drop(Drop{Reason: DropInvalidToken, Row: row, Col: col, Token: token})
			continue
		}
		punches = append(punches, p)
	}

	if len(punches)%2 == 1 {
		last := punches[len(punches)-1]
		if policy.Strict {
			return nil, &PunchError{Row: row, Col: col, Token: last.String(), Reason: "unpaired punch"}
		}
		policy.drop(Drop{Reason: DropUnpairedPunch, Row: row, Col: col, Token: last.String()})
		punches = punches[:len(punches)-1]
	}

	return PairPunches(punches), nil
}
