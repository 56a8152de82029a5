package parser

import (
	"errors"
	"reflect"
	"testing"

	"github.com/ukaji3/pointage-go/pkg/pointage/models"
)

func TestSplitPunchTokens(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"08:00\n12:00", []string{"08:00", "12:00"}},
		{" 08:00 \r\n\r\n 12:00\n", []string{"08:00", "12:00"}},
		{"08:00\r12:00 ", []string{"08:00", "12:00"}},
		{"\n \n", []string{}},
		{"", []string{}},
	}

	for _, tt := range tests {
		got := SplitPunchTokens(tt.input)
		if !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("SplitPunchTokens(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestParsePunch(t *testing.T) {
	tests := []struct {
		input    string
		expected models.TimePunch
		valid    bool
	}{
		{"08:00", models.TimePunch{Hour: 8}, true},
		{"8:05", models.TimePunch{Hour: 8, Minute: 5}, true},
		{"8:5", models.TimePunch{Hour: 8, Minute: 5}, true},
		{"08:5", models.TimePunch{Hour: 8, Minute: 5}, true},
		{"17:30", models.TimePunch{Hour: 17, Minute: 30}, true},
		{"08:005", models.TimePunch{}, false},
		{"08:", models.TimePunch{}, false},
		{"23:59", models.TimePunch{Hour: 23, Minute: 59}, true},
		{"00:15", models.TimePunch{Minute: 15}, true},
		{"24:00", models.TimePunch{}, false},
		{"12:60", models.TimePunch{}, false},
		{"08:00:00", models.TimePunch{}, false},
		{"absent", models.TimePunch{}, false},
		{"08h00", models.TimePunch{}, false},
	}

	for _, tt := range tests {
		got, err := ParsePunch(tt.input)
		if (err == nil) != tt.valid || got != tt.expected {
			t.Errorf("ParsePunch(%q) = (%v, %v), expected (%v, valid=%v)", tt.input, got, err, tt.expected, tt.valid)
		}
	}
}

func TestWorkIntervalMidnightRollover(t *testing.T) {
	tests := []struct {
		start, end string
		minutes    int
		overnight  bool
	}{
		{"23:30", "00:15", 45, true},
		{"22:00", "06:00", 480, true},
		{"08:00", "12:00", 240, false},
		{"12:00", "12:00", 0, false},
	}

	for _, tt := range tests {
		start, _ := ParsePunch(tt.start)
		end, _ := ParsePunch(tt.end)
		iv := models.WorkInterval{Start: start, End: end}
		if iv.Minutes() != tt.minutes || iv.Overnight() != tt.overnight {
			t.Errorf("%s-%s = %d min (overnight %v), expected %d (overnight %v)",
				tt.start, tt.end, iv.Minutes(), iv.Overnight(), tt.minutes, tt.overnight)
		}
		if iv.Minutes() < 0 {
			t.Errorf("%s-%s has negative duration", tt.start, tt.end)
		}
	}

	if got := HoursFromMinutes(45); got != 0.75 {
		t.Errorf("HoursFromMinutes(45) = %v, expected 0.75", got)
	}
}

func TestParsePunchCellLenient(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		minutes int
		pairs   int
		dropped []DropReason
	}{
		{"two pairs", "08:00\n12:15\n13:00\n17:00", 495, 2, nil},
		{"odd drops last", "08:00\n12:00\n13:00", 240, 1, []DropReason{DropUnpairedPunch}},
		{"single punch", "08:00", 0, 0, []DropReason{DropUnpairedPunch}},
		{"annotation dropped", "08:00\noubli badge\n12:00", 240, 1, []DropReason{DropInvalidToken}},
		{"overnight", "22:00\n02:30", 270, 1, nil},
		{"garbage only", "congé", 0, 0, []DropReason{DropInvalidToken}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var dropped []DropReason
			policy := LenientPunchPolicy().WithDropHook(func(d Drop) {
				dropped = append(dropped, d.Reason)
				if d.Row != 4 || d.Col != 9 {
					t.Errorf("drop located at (%d,%d), expected (4,9)", d.Row, d.Col)
				}
			})

			intervals, err := ParsePunchCell(tt.text, 4, 9, policy)
			if err != nil {
				t.Fatalf("ParsePunchCell failed: %v", err)
			}
			if len(intervals) != tt.pairs {
				t.Errorf("Expected %d intervals, got %d", tt.pairs, len(intervals))
			}
			if got := SumMinutes(intervals); got != tt.minutes {
				t.Errorf("Expected %d minutes, got %d", tt.minutes, got)
			}
			if !reflect.DeepEqual(dropped, tt.dropped) {
				t.Errorf("dropped = %v, expected %v", dropped, tt.dropped)
			}
		})
	}
}

func TestParsePunchCellStrict(t *testing.T) {
	tests := []struct {
		text  string
		token string
	}{
		{"08:00\n12:00\n13:00", "13:00"},
		{"08:00\noubli\n12:00", "oubli"},
	}

	for _, tt := range tests {
		_, err := ParsePunchCell(tt.text, 0, 0, StrictPunchPolicy())
		if !errors.Is(err, ErrInvalidPunch) {
			t.Fatalf("ParsePunchCell(%q) error = %v, expected ErrInvalidPunch", tt.text, err)
		}
		var pe *PunchError
		if !errors.As(err, &pe) || pe.Token != tt.token {
			t.Errorf("ParsePunchCell(%q) error = %#v, expected token %q", tt.text, err, tt.token)
		}
	}

	intervals, err := ParsePunchCell("08:00\n12:00", 0, 0, StrictPunchPolicy())
	if err != nil || len(intervals) != 1 {
		t.Errorf("strict well-formed cell = (%v, %v), expected one interval", intervals, err)
	}
}

func TestPairPunches(t *testing.T) {
	punches := []models.TimePunch{{Hour: 8}, {Hour: 12}, {Hour: 13}}
	got := PairPunches(punches)
	expected := []models.WorkInterval{{Start: models.TimePunch{Hour: 8}, End: models.TimePunch{Hour: 12}}}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("PairPunches = %v, expected %v", got, expected)
	}
}
