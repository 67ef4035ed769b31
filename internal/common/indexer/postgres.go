package indexer

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/project-tktt/job-market-etl/internal/domain"
)

// PostgresLoader loads the star schema into PostgreSQL. The schema mirrors
// the build-time invariants with real constraints: fact and bridge keys
// reference their dimensions, and the bridge's composite key forbids
// duplicate (posting_id, skill_id) pairs.
type PostgresLoader struct {
	db *sql.DB
}

const starSchemaDDL = `
CREATE TABLE IF NOT EXISTS dim_job (
	job_id INTEGER PRIMARY KEY,
	job_title TEXT NOT NULL,
	job_category TEXT NOT NULL,
	seniority_level TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS dim_company (
	company_id INTEGER PRIMARY KEY,
	company_name TEXT NOT NULL,
	industry TEXT,
	company_size TEXT
);

CREATE TABLE IF NOT EXISTS dim_location (
	location_id INTEGER PRIMARY KEY,
	city TEXT,
	state TEXT,
	country TEXT,
	region TEXT,
	is_remote BOOLEAN NOT NULL
);

CREATE TABLE IF NOT EXISTS dim_employment_type (
	employment_type_id INTEGER PRIMARY KEY,
	employment_type TEXT,
	work_arrangement TEXT
);

CREATE TABLE IF NOT EXISTS dim_skill (
	skill_id INTEGER PRIMARY KEY,
	skill_name TEXT NOT NULL,
	skill_category TEXT
);

CREATE TABLE IF NOT EXISTS fact_posting (
	posting_id TEXT PRIMARY KEY,
	job_id INTEGER NOT NULL REFERENCES dim_job(job_id),
	company_id INTEGER REFERENCES dim_company(company_id),
	location_id INTEGER NOT NULL REFERENCES dim_location(location_id),
	employment_type_id INTEGER NOT NULL REFERENCES dim_employment_type(employment_type_id),
	salary_min DOUBLE PRECISION,
	salary_max DOUBLE PRECISION,
	posted_date DATE,
	application_url TEXT
);

CREATE TABLE IF NOT EXISTS bridge_posting_skill (
	posting_id TEXT NOT NULL REFERENCES fact_posting(posting_id),
	skill_id INTEGER NOT NULL REFERENCES dim_skill(skill_id),
	PRIMARY KEY (posting_id, skill_id)
);
`

// NewPostgresLoader connects to PostgreSQL and ensures the star-schema
// tables exist.
func NewPostgresLoader(connStr string) (*PostgresLoader, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("open postgres connection: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	if _, err := db.Exec(starSchemaDDL); err != nil {
		return nil, fmt.Errorf("ensure star schema: %w", err)
	}

	return &PostgresLoader{db: db}, nil
}

// Load replaces the stored star schema with the given bundle in one
// transaction. Deletion runs child-first and insertion parent-first so FK
// constraints hold at every point.
func (l *PostgresLoader) Load(ctx context.Context, tables *domain.TableBundle) error {
	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{
		"bridge_posting_skill", "fact_posting",
		"dim_skill", "dim_employment_type", "dim_location", "dim_company", "dim_job",
	} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for _, row := range tables.Jobs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO dim_job (job_id, job_title, job_category, seniority_level) VALUES ($1, $2, $3, $4)`,
			row.JobID, row.JobTitle, row.JobCategory, row.SeniorityLevel,
		); err != nil {
			return fmt.Errorf("insert dim_job %d: %w", row.JobID, err)
		}
	}

	for _, row := range tables.Companies {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO dim_company (company_id, company_name, industry, company_size) VALUES ($1, $2, $3, $4)`,
			row.CompanyID, row.CompanyName, row.Industry, row.CompanySize,
		); err != nil {
			return fmt.Errorf("insert dim_company %d: %w", row.CompanyID, err)
		}
	}

	for _, row := range tables.Locations {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO dim_location (location_id, city, state, country, region, is_remote) VALUES ($1, $2, $3, $4, $5, $6)`,
			row.LocationID, row.City, row.State, row.Country, row.Region, row.IsRemote,
		); err != nil {
			return fmt.Errorf("insert dim_location %d: %w", row.LocationID, err)
		}
	}

	for _, row := range tables.EmploymentTypes {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO dim_employment_type (employment_type_id, employment_type, work_arrangement) VALUES ($1, $2, $3)`,
			row.EmploymentTypeID, row.EmploymentType, row.WorkArrangement,
		); err != nil {
			return fmt.Errorf("insert dim_employment_type %d: %w", row.EmploymentTypeID, err)
		}
	}

	for _, row := range tables.Skills {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO dim_skill (skill_id, skill_name, skill_category) VALUES ($1, $2, $3)`,
			row.SkillID, row.SkillName, row.SkillCategory,
		); err != nil {
			return fmt.Errorf("insert dim_skill %d: %w", row.SkillID, err)
		}
	}

	factStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO fact_posting (
			posting_id, job_id, company_id, location_id, employment_type_id,
			salary_min, salary_max, posted_date, application_url
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`)
	if err != nil {
		return fmt.Errorf("prepare fact insert: %w", err)
	}
	defer factStmt.Close()

	for _, row := range tables.Facts {
		if _, err := factStmt.ExecContext(ctx,
			row.PostingID, row.JobID, row.CompanyID, row.LocationID, row.EmploymentTypeID,
			row.SalaryMin, row.SalaryMax, row.PostedDate, row.ApplicationURL,
		); err != nil {
			return fmt.Errorf("insert fact_posting %s: %w", row.PostingID, err)
		}
	}

	bridgeStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO bridge_posting_skill (posting_id, skill_id) VALUES ($1, $2)`,
	)
	if err != nil {
		return fmt.Errorf("prepare bridge insert: %w", err)
	}
	defer bridgeStmt.Close()

	for _, row := range tables.Bridge {
		if _, err := bridgeStmt.ExecContext(ctx, row.PostingID, row.SkillID); err != nil {
			return fmt.Errorf("insert bridge_posting_skill %s/%d: %w", row.PostingID, row.SkillID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

// Close closes the database connection
func (l *PostgresLoader) Close() error {
	return l.db.Close()
}
