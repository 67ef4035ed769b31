package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSalary(t *testing.T) {
	rules := Defaults().Salary

	tests := []struct {
		name    string
		raw     string
		wantMin float64
		wantMax float64
	}{
		{name: "plain range", raw: "$80,000 - $120,000", wantMin: 80000, wantMax: 120000},
		{name: "k notation", raw: "80k-120k", wantMin: 80000, wantMax: 120000},
		{name: "mixed units", raw: "$80K - 120000", wantMin: 80000, wantMax: 120000},
		{name: "range with to", raw: "90000 to 110000", wantMin: 90000, wantMax: 110000},
		{name: "single value", raw: "$95,000", wantMin: 95000, wantMax: 95000},
		{name: "single k value", raw: "100k", wantMin: 100000, wantMax: 100000},
		{name: "hourly annualized", raw: "$25/hr", wantMin: 52000, wantMax: 52000},
		{name: "hourly range", raw: "$25 - $35 per hour", wantMin: 52000, wantMax: 72800},
		{name: "monthly annualized", raw: "$8000/month", wantMin: 96000, wantMax: 96000},
		{name: "glassdoor style", raw: "$53K-$91K (Glassdoor est.)", wantMin: 53000, wantMax: 91000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			min, max := ParseSalary(tt.raw, rules)
			require.NotNil(t, min)
			require.NotNil(t, max)
			assert.Equal(t, tt.wantMin, *min)
			assert.Equal(t, tt.wantMax, *max)
		})
	}
}

func TestParseSalaryNoData(t *testing.T) {
	rules := Defaults().Salary

	for _, raw := range []string{"", "   ", "Competitive", "DOE", "Negotiable"} {
		min, max := ParseSalary(raw, rules)
		assert.Nil(t, min, "raw=%q", raw)
		assert.Nil(t, max, "raw=%q", raw)
	}
}

func TestParseSalaryInvertedRange(t *testing.T) {
	rules := Defaults().Salary

	min, max := ParseSalary("120k - 80k", rules)
	assert.Nil(t, min)
	assert.Nil(t, max)
}

func TestParseSalaryHighHourlyNotAnnualized(t *testing.T) {
	rules := Defaults().Salary

	// Values over the hourly threshold are already annual even when the
	// text mentions hours.
	min, max := ParseSalary("80000 per year, 40 hour weeks", rules)
	if assert.NotNil(t, min) {
		assert.Equal(t, 80000.0, *min)
	}
	_ = max
}

func TestFormatSalaryRoundTrip(t *testing.T) {
	rules := Defaults().Salary

	min, max := ParseSalary(FormatSalary(80000, 120000), rules)
	require.NotNil(t, min)
	require.NotNil(t, max)
	assert.Equal(t, 80000.0, *min)
	assert.Equal(t, 120000.0, *max)
}
