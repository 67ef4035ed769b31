package parser

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	salaryRangeRe  = regexp.MustCompile(`(\d+(?:\.\d+)?)(k?)\s*(?:-|–|—|to)\s*(\d+(?:\.\d+)?)(k?)`)
	salarySingleRe = regexp.MustCompile(`(\d+(?:\.\d+)?)(k?)`)
	currencyRe     = regexp.MustCompile(`[$€£,]`)
)

// ParseSalary parses a free-text salary field into an annualized
// (min, max) range. A single number becomes a degenerate range. Text with
// no numeric pattern ("Competitive", "DOE", empty) yields (nil, nil),
// which is a valid no-data outcome, not an error. A range where min > max
// is discarded rather than swapped.
func ParseSalary(raw string, rules SalaryRules) (min, max *float64) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return nil, nil
	}

	hourly := strings.Contains(s, "/hr") || strings.Contains(s, "hour")
	monthly := strings.Contains(s, "/mo") || strings.Contains(s, "month")

	s = currencyRe.ReplaceAllString(s, "")

	if m := salaryRangeRe.FindStringSubmatch(s); m != nil {
		lo := normalizeSalary(m[1], m[2] != "", hourly, monthly, rules)
		hi := normalizeSalary(m[3], m[4] != "", hourly, monthly, rules)
		if lo > hi {
			return nil, nil
		}
		return &lo, &hi
	}

	if m := salarySingleRe.FindStringSubmatch(s); m != nil {
		v := normalizeSalary(m[1], m[2] != "", hourly, monthly, rules)
		return &v, &v
	}

	return nil, nil
}

// normalizeSalary applies unit normalization to one side of a range
// independently, so mixed-unit ranges ("$80K - 120000") come out
// comparable.
func normalizeSalary(num string, thousands, hourly, monthly bool, rules SalaryRules) float64 {
	v, _ := strconv.ParseFloat(num, 64)
	if thousands {
		v *= 1000
	}
	switch {
	case hourly && v < rules.HourlyThreshold:
		v *= rules.HoursPerYear
	case monthly && !thousands:
		v *= rules.MonthsPerYear
	}
	return v
}

// FormatSalary renders a parsed range back into canonical text. Parsing
// that text again returns the same pair.
func FormatSalary(min, max float64) string {
	return strconv.FormatFloat(min, 'f', -1, 64) + " - " + strconv.FormatFloat(max, 'f', -1, 64)
}
