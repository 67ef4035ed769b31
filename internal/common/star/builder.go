package star

import (
	"strconv"
	"strings"

	"github.com/project-tktt/job-market-etl/internal/domain"
	pkgerrors "github.com/project-tktt/job-market-etl/internal/errors"
)

// Builder turns normalized postings into the star-schema table bundle in
// one pass. Fact and bridge rows only ever reference keys assigned during
// the same pass, so referential integrity holds by construction.
type Builder struct {
	skillCategories map[string]string
}

// NewBuilder creates a builder. skillCategories maps canonical skill names
// to their lexicon category for dim_skill; unknown names get "Other".
func NewBuilder(skillCategories map[string]string) *Builder {
	return &Builder{skillCategories: skillCategories}
}

// Build constructs the five dimensions, the fact table, and the bridge
// table. Zero input is a fatal condition: empty output would be
// indistinguishable from a successful no-op downstream.
func (b *Builder) Build(postings []*domain.NormalizedPosting) (*domain.TableBundle, error) {
	if len(postings) == 0 {
		return nil, pkgerrors.NoInput("no normalized postings to build from", nil)
	}

	bundle := &domain.TableBundle{}
	jobs := newKeyspace()
	companies := newKeyspace()
	locations := newKeyspace()
	employmentTypes := newKeyspace()
	skills := newKeyspace()

	for _, p := range postings {
		jobID, isNew := jobs.assign(p.JobTitle, p.JobCategory, p.SeniorityLevel)
		if isNew {
			bundle.Jobs = append(bundle.Jobs, domain.DimJob{
				JobID:          jobID,
				JobTitle:       p.JobTitle,
				JobCategory:    p.JobCategory,
				SeniorityLevel: p.SeniorityLevel,
			})
		}

		// Company name is the one mandatory identity field: postings
		// without it get a null company key instead of a dimension row.
		var companyID *int
		if strings.TrimSpace(p.CompanyName) != "" {
			id, isNew := companies.assign(p.CompanyName)
			if isNew {
				bundle.Companies = append(bundle.Companies, domain.DimCompany{
					CompanyID:   id,
					CompanyName: p.CompanyName,
					Industry:    p.Industry,
					CompanySize: p.CompanySize,
				})
			}
			companyID = &id
		}

		locationID, isNew := locations.assign(
			deref(p.City), deref(p.State), deref(p.Country), strconv.FormatBool(p.IsRemote),
		)
		if isNew {
			bundle.Locations = append(bundle.Locations, domain.DimLocation{
				LocationID: locationID,
				City:       p.City,
				State:      p.State,
				Country:    p.Country,
				Region:     p.Region,
				IsRemote:   p.IsRemote,
			})
		}

		employmentTypeID, isNew := employmentTypes.assign(p.EmploymentType, p.WorkArrangement)
		if isNew {
			bundle.EmploymentTypes = append(bundle.EmploymentTypes, domain.DimEmploymentType{
				EmploymentTypeID: employmentTypeID,
				EmploymentType:   p.EmploymentType,
				WorkArrangement:  p.WorkArrangement,
			})
		}

		bundle.Facts = append(bundle.Facts, domain.FactPosting{
			PostingID:        p.PostingID,
			JobID:            jobID,
			CompanyID:        companyID,
			LocationID:       locationID,
			EmploymentTypeID: employmentTypeID,
			SalaryMin:        p.SalaryMin,
			SalaryMax:        p.SalaryMax,
			PostedDate:       p.PostedDate,
			ApplicationURL:   p.ApplicationURL,
		})

		// Case-folding can collapse two extracted names to one skill key;
		// track per-posting keys so the bridge never gets duplicate pairs.
		linked := make(map[int]struct{}, len(p.Skills))
		for _, skill := range p.Skills {
			skillID, isNew := skills.assign(skill)
			if isNew {
				bundle.Skills = append(bundle.Skills, domain.DimSkill{
					SkillID:       skillID,
					SkillName:     skill,
					SkillCategory: b.skillCategory(skill),
				})
			}
			if _, ok := linked[skillID]; ok {
				continue
			}
			linked[skillID] = struct{}{}
			bundle.Bridge = append(bundle.Bridge, domain.BridgePostingSkill{
				PostingID: p.PostingID,
				SkillID:   skillID,
			})
		}
	}

	return bundle, nil
}

func (b *Builder) skillCategory(name string) string {
	if cat, ok := b.skillCategories[name]; ok {
		return cat
	}
	return "Other"
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
