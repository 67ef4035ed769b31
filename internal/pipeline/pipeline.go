package pipeline

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/project-tktt/job-market-etl/internal/common/dedup"
	"github.com/project-tktt/job-market-etl/internal/common/normalizer"
	"github.com/project-tktt/job-market-etl/internal/common/parser"
	"github.com/project-tktt/job-market-etl/internal/common/star"
	"github.com/project-tktt/job-market-etl/internal/domain"
	pkgerrors "github.com/project-tktt/job-market-etl/internal/errors"
)

// postingNamespace seeds deterministic IDs for records whose source had
// none, so re-running on identical input assigns identical IDs.
var postingNamespace = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

// Pipeline runs one batch transformation: drop structurally invalid
// records, skip duplicates, normalize every surviving record, and build
// the dimensional model.
type Pipeline struct {
	logger     *zap.Logger
	normalizer *normalizer.Normalizer
	dedup      dedup.Deduplicator
	builder    *star.Builder
	workers    int
}

// Config holds pipeline tuning knobs.
type Config struct {
	// Workers fans record normalization across goroutines. Output order
	// stays input order regardless, so key assignment is deterministic.
	Workers int
}

// Result bundles everything one run produces.
type Result struct {
	Tables   *domain.TableBundle
	Postings []*domain.NormalizedPosting
	Report   *Report
}

// Report carries the run-level data-quality counts so a human can sanity-
// check a run without inspecting rows.
type Report struct {
	TotalRecords     int
	DroppedRecords   int
	DuplicateRecords int
	WithSalary       int
	WithSkills       int
	RemotePostings   int
	JobRows          int
	CompanyRows      int
	LocationRows     int
	EmploymentRows   int
	SkillRows        int
	FactRows         int
	BridgeRows       int
}

// SalaryPct is the share of processed postings with a parsed salary range.
func (r *Report) SalaryPct() float64 {
	if r.FactRows == 0 {
		return 0
	}
	return float64(r.WithSalary) / float64(r.FactRows) * 100
}

// SkillsPct is the share of processed postings with at least one skill.
func (r *Report) SkillsPct() float64 {
	if r.FactRows == 0 {
		return 0
	}
	return float64(r.WithSkills) / float64(r.FactRows) * 100
}

// New creates a pipeline. A nil deduplicator defaults to the in-memory
// backend, scoping duplicate detection to this one run.
func New(logger *zap.Logger, rules *parser.Rules, dd dedup.Deduplicator, cfg Config) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	if dd == nil {
		dd = dedup.NewMemoryDeduplicator()
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}

	return &Pipeline{
		logger:     logger,
		normalizer: normalizer.NewNormalizer(rules),
		dedup:      dd,
		builder:    star.NewBuilder(rules.SkillCategories()),
		workers:    cfg.Workers,
	}
}

// Run executes one batch over the raw input. Zero raw records is a fatal
// condition; per-record problems are recovered locally and counted.
func (p *Pipeline) Run(ctx context.Context, raws []*domain.RawPosting) (*Result, error) {
	if len(raws) == 0 {
		return nil, pkgerrors.NoInput("no raw postings in input", nil)
	}

	report := &Report{TotalRecords: len(raws)}

	accepted, err := p.filterRecords(ctx, raws, report)
	if err != nil {
		return nil, err
	}
	if len(accepted) == 0 {
		return nil, pkgerrors.NoInput("all raw postings were dropped or duplicates", nil)
	}

	postings := p.normalizeAll(ctx, accepted)
	if err := ctx.Err(); err != nil {
		return nil, pkgerrors.Internal("run cancelled", err)
	}

	tables, err := p.builder.Build(postings)
	if err != nil {
		return nil, err
	}

	for _, np := range postings {
		if np.HasSalary() {
			report.WithSalary++
		}
		if len(np.Skills) > 0 {
			report.WithSkills++
		}
		if np.IsRemote {
			report.RemotePostings++
		}
	}
	report.JobRows = len(tables.Jobs)
	report.CompanyRows = len(tables.Companies)
	report.LocationRows = len(tables.Locations)
	report.EmploymentRows = len(tables.EmploymentTypes)
	report.SkillRows = len(tables.Skills)
	report.FactRows = len(tables.Facts)
	report.BridgeRows = len(tables.Bridge)

	p.logger.Info("pipeline run complete",
		zap.Int("total_records", report.TotalRecords),
		zap.Int("dropped", report.DroppedRecords),
		zap.Int("duplicates", report.DuplicateRecords),
		zap.Float64("salary_pct", report.SalaryPct()),
		zap.Float64("skills_pct", report.SkillsPct()),
		zap.Int("remote", report.RemotePostings),
		zap.Int("fact_rows", report.FactRows),
		zap.Int("skill_rows", report.SkillRows),
		zap.Int("bridge_rows", report.BridgeRows),
	)

	return &Result{Tables: tables, Postings: postings, Report: report}, nil
}

// filterRecords drops structurally invalid records, derives IDs for
// records lacking one, and skips duplicates. Runs serially so duplicate
// resolution and ID order stay deterministic.
func (p *Pipeline) filterRecords(ctx context.Context, raws []*domain.RawPosting, report *Report) ([]*domain.RawPosting, error) {
	accepted := make([]*domain.RawPosting, 0, len(raws))
	for _, raw := range raws {
		if raw == nil || raw.Empty() {
			report.DroppedRecords++
			continue
		}

		if strings.TrimSpace(raw.ID) == "" {
			raw.ID = derivePostingID(raw)
		}

		seen, err := p.dedup.Seen(ctx, raw.ID)
		if err != nil {
			return nil, pkgerrors.Internal("dedup check failed", err)
		}
		if seen {
			report.DuplicateRecords++
			continue
		}
		if err := p.dedup.Mark(ctx, raw.ID); err != nil {
			return nil, pkgerrors.Internal("dedup mark failed", err)
		}

		accepted = append(accepted, raw)
	}
	return accepted, nil
}

// normalizeAll fans normalization across the worker pool. Results land at
// their input index, so the output slice preserves input order no matter
// which worker finishes first.
func (p *Pipeline) normalizeAll(ctx context.Context, raws []*domain.RawPosting) []*domain.NormalizedPosting {
	results := make([]*domain.NormalizedPosting, len(raws))
	indices := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < p.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indices {
				results[i] = p.normalizer.Normalize(raws[i])
			}
		}()
	}

	for i := range raws {
		select {
		case <-ctx.Done():
			close(indices)
			wg.Wait()
			return results[:i]
		case indices <- i:
		}
	}
	close(indices)
	wg.Wait()

	return results
}

// derivePostingID builds a deterministic ID from record content so runs
// over the same input agree on IDs without coordination.
func derivePostingID(raw *domain.RawPosting) string {
	content := strings.Join([]string{
		raw.Title, raw.Company, raw.Location, raw.Salary,
		raw.Description, raw.PostedDate, raw.URL,
	}, "\x1f")
	return uuid.NewSHA1(postingNamespace, []byte(content)).String()
}
