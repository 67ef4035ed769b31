package parser

import (
	"regexp"
	"strings"
)

// Classifier derives job category and seniority level from title text via
// ordered keyword rules. Both classifications are total: every title maps
// to some label, so downstream grouping never loses rows.
type Classifier struct {
	categories       []compiledRule
	seniority        []compiledRule
	defaultCategory  string
	defaultSeniority string
}

type compiledRule struct {
	label    string
	keywords []*regexp.Regexp
}

// NewClassifier compiles the keyword rules once up front. Keywords match on
// word boundaries so "sr" never fires inside an unrelated word.
func NewClassifier(rules *Rules) *Classifier {
	return &Classifier{
		categories:       compileRules(rules.Categories),
		seniority:        compileRules(rules.Seniority),
		defaultCategory:  rules.DefaultCategory,
		defaultSeniority: rules.DefaultSeniority,
	}
}

// Classify returns (category, seniority) for a job title. The two labels
// are derived independently, each by first-match over its rule list.
func (c *Classifier) Classify(title string) (category, seniority string) {
	lower := strings.ToLower(title)
	return matchRules(lower, c.categories, c.defaultCategory),
		matchRules(lower, c.seniority, c.defaultSeniority)
}

func matchRules(lower string, rules []compiledRule, fallback string) string {
	for _, rule := range rules {
		for _, re := range rule.keywords {
			if re.MatchString(lower) {
				return rule.label
			}
		}
	}
	return fallback
}

// Matcher applies one ordered keyword rule list with no fallback; the
// caller decides what absence of a match means.
type Matcher struct {
	rules []compiledRule
}

// NewEmploymentClassifier builds a matcher over the employment-type rules.
func NewEmploymentClassifier(rules *Rules) *Matcher {
	return &Matcher{rules: compileRules(rules.EmploymentTypes)}
}

// Match returns the first matching label, or false when no rule fires.
func (m *Matcher) Match(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, rule := range m.rules {
		for _, re := range rule.keywords {
			if re.MatchString(lower) {
				return rule.label, true
			}
		}
	}
	return "", false
}

func compileRules(rules []KeywordRule) []compiledRule {
	out := make([]compiledRule, 0, len(rules))
	for _, rule := range rules {
		cr := compiledRule{label: rule.Label}
		for _, kw := range rule.Keywords {
			cr.keywords = append(cr.keywords, compileKeyword(kw))
		}
		out = append(out, cr)
	}
	return out
}

// compileKeyword builds a word-bounded pattern for one lowercase keyword.
// Boundaries are only anchored on edges that are word characters, so terms
// like "c++" still match at end of sentence.
func compileKeyword(kw string) *regexp.Regexp {
	kw = strings.ToLower(kw)
	pattern := regexp.QuoteMeta(kw)
	if isWordChar(kw[0]) {
		pattern = `\b` + pattern
	}
	if isWordChar(kw[len(kw)-1]) {
		pattern += `\b`
	}
	return regexp.MustCompile(pattern)
}

func isWordChar(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}
