package parser

import (
	"regexp"
	"strings"
)

// SkillExtractor scans free text for lexicon entries and returns canonical
// skill names. Matching is word-bounded so "R" never fires inside
// "Director", and multiple mentions of the same skill contribute one
// result (set semantics).
type SkillExtractor struct {
	entries []compiledSkill
}

type compiledSkill struct {
	canonical string
	surfaces  []*regexp.Regexp
}

// NewSkillExtractor compiles the lexicon's surface forms once up front.
func NewSkillExtractor(rules *Rules) *SkillExtractor {
	e := &SkillExtractor{entries: make([]compiledSkill, 0, len(rules.Skills))}
	for _, entry := range rules.Skills {
		cs := compiledSkill{canonical: entry.Canonical}
		for _, surface := range entry.Surfaces {
			cs.surfaces = append(cs.surfaces, compileKeyword(surface))
		}
		e.entries = append(e.entries, cs)
	}
	return e
}

// Extract returns the canonical names of all lexicon skills found in the
// text, in lexicon order so output stays deterministic. Empty or skill-less
// text yields an empty result, which is valid.
func (e *SkillExtractor) Extract(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	lower := strings.ToLower(text)

	var found []string
	for _, entry := range e.entries {
		for _, re := range entry.surfaces {
			if re.MatchString(lower) {
				found = append(found, entry.canonical)
				break
			}
		}
	}
	return found
}
