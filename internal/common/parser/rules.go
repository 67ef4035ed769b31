package parser

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Rules holds every lookup table driving the field parsers. Classification
// is ordered first-match over this data, so new rules are added by editing
// the tables (or shipping a YAML rules file), not by changing control flow.
type Rules struct {
	Salary           SalaryRules       `yaml:"salary"`
	RemoteMarkers    []string          `yaml:"remote_markers"`
	HybridMarkers    []string          `yaml:"hybrid_markers"`
	DefaultCountry   string            `yaml:"default_country"`
	StateRegions     map[string]string `yaml:"state_regions"`
	Categories       []KeywordRule     `yaml:"categories"`
	DefaultCategory  string            `yaml:"default_category"`
	Seniority        []KeywordRule     `yaml:"seniority"`
	DefaultSeniority string            `yaml:"default_seniority"`
	EmploymentTypes  []KeywordRule     `yaml:"employment_types"`
	CompanySizes     map[string]string `yaml:"company_sizes"`
	Skills           []SkillEntry      `yaml:"skills"`
}

// SalaryRules controls unit normalization of parsed salary values.
type SalaryRules struct {
	// Values below this with an hourly marker are annualized.
	HourlyThreshold float64 `yaml:"hourly_threshold"`
	HoursPerYear    float64 `yaml:"hours_per_year"`
	MonthsPerYear   float64 `yaml:"months_per_year"`
}

// KeywordRule maps a set of keywords to a label. Rule order is priority
// order: the first rule with a matching keyword wins.
type KeywordRule struct {
	Label    string   `yaml:"label"`
	Keywords []string `yaml:"keywords"`
}

// SkillEntry maps surface forms found in free text to one canonical skill
// name and its category.
type SkillEntry struct {
	Canonical string   `yaml:"canonical"`
	Category  string   `yaml:"category"`
	Surfaces  []string `yaml:"surfaces"`
}

// SkillCategories returns a canonical-name → category lookup for dimension
// building.
func (r *Rules) SkillCategories() map[string]string {
	out := make(map[string]string, len(r.Skills))
	for _, s := range r.Skills {
		out[s.Canonical] = s.Category
	}
	return out
}

// LoadRules reads a YAML rules file over the built-in defaults. Tables
// present in the file replace the corresponding default table wholesale.
func LoadRules(path string) (*Rules, error) {
	rules := Defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules file: %w", err)
	}
	if err := yaml.Unmarshal(data, rules); err != nil {
		return nil, fmt.Errorf("parse rules file: %w", err)
	}
	return rules, nil
}

// Defaults returns the built-in rule tables. The lexicons cover the data /
// analytics job market the pipeline was built for; other verticals supply
// their own rules file.
func Defaults() *Rules {
	return &Rules{
		Salary: SalaryRules{
			HourlyThreshold: 500,
			HoursPerYear:    2080,
			MonthsPerYear:   12,
		},
		RemoteMarkers: []string{
			"remote", "work from home", "wfh", "telecommute", "anywhere", "distributed",
		},
		HybridMarkers:  []string{"hybrid"},
		DefaultCountry: "USA",
		StateRegions: map[string]string{
			"CT": "Northeast", "ME": "Northeast", "MA": "Northeast", "NH": "Northeast",
			"RI": "Northeast", "VT": "Northeast", "NJ": "Northeast", "NY": "Northeast",
			"PA": "Northeast",
			"IL": "Midwest", "IN": "Midwest", "MI": "Midwest", "OH": "Midwest",
			"WI": "Midwest", "IA": "Midwest", "KS": "Midwest", "MN": "Midwest",
			"MO": "Midwest", "NE": "Midwest", "ND": "Midwest", "SD": "Midwest",
			"DE": "Southeast", "FL": "Southeast", "GA": "Southeast", "MD": "Southeast",
			"NC": "Southeast", "SC": "Southeast", "VA": "Southeast", "DC": "Southeast",
			"WV": "Southeast", "AL": "Southeast", "KY": "Southeast", "MS": "Southeast",
			"TN": "Southeast", "AR": "Southeast", "LA": "Southeast",
			"AZ": "Southwest", "NM": "Southwest", "OK": "Southwest", "TX": "Southwest",
			"CO": "West", "ID": "West", "MT": "West", "NV": "West", "UT": "West",
			"WY": "West", "AK": "West", "CA": "West", "HI": "West", "OR": "West",
			"WA": "West",
		},
		Categories: []KeywordRule{
			{Label: "Data Science", Keywords: []string{
				"data scientist", "machine learning", "ml engineer", "ai engineer",
				"research scientist", "applied scientist", "deep learning",
			}},
			{Label: "Data Engineering", Keywords: []string{
				"data engineer", "etl developer", "big data engineer", "pipeline engineer",
				"data platform",
			}},
			{Label: "Business Intelligence", Keywords: []string{
				"business intelligence", "bi developer", "bi analyst", "bi engineer",
				"tableau developer", "power bi developer",
			}},
			{Label: "Data Analytics", Keywords: []string{
				"analytics engineer", "data analyst", "analyst", "analytics",
			}},
		},
		DefaultCategory: "Other",
		Seniority: []KeywordRule{
			{Label: "Lead", Keywords: []string{"lead", "principal", "staff"}},
			{Label: "Senior", Keywords: []string{"senior", "sr"}},
			{Label: "Junior", Keywords: []string{"junior", "jr", "entry", "intern", "associate"}},
			{Label: "Management", Keywords: []string{
				"manager", "director", "head of", "vp", "vice president", "chief",
			}},
		},
		DefaultSeniority: "Mid-level",
		EmploymentTypes: []KeywordRule{
			{Label: "Full-time", Keywords: []string{"full-time", "full time", "ft", "permanent", "regular"}},
			{Label: "Contract", Keywords: []string{"contract", "contractor", "temp", "temporary", "consultant"}},
			{Label: "Part-time", Keywords: []string{"part-time", "part time", "pt"}},
			{Label: "Internship", Keywords: []string{"intern", "internship", "co-op", "coop"}},
		},
		CompanySizes: map[string]string{
			"1 to 50 employees":       "1-50",
			"51 to 200 employees":     "51-200",
			"201 to 500 employees":    "201-500",
			"501 to 1000 employees":   "501-1000",
			"1001 to 5000 employees":  "1001-5000",
			"5001 to 10000 employees": "5001-10000",
			"10000+ employees":        "10000+",
		},
		Skills: []SkillEntry{
			{Canonical: "Python", Category: "Programming Languages", Surfaces: []string{"python"}},
			{Canonical: "R", Category: "Programming Languages", Surfaces: []string{"r"}},
			{Canonical: "SQL", Category: "Programming Languages", Surfaces: []string{"sql"}},
			{Canonical: "Java", Category: "Programming Languages", Surfaces: []string{"java"}},
			{Canonical: "Scala", Category: "Programming Languages", Surfaces: []string{"scala"}},
			{Canonical: "C++", Category: "Programming Languages", Surfaces: []string{"c++"}},
			{Canonical: "JavaScript", Category: "Programming Languages", Surfaces: []string{"javascript"}},
			{Canonical: "Julia", Category: "Programming Languages", Surfaces: []string{"julia"}},
			{Canonical: "SAS", Category: "Programming Languages", Surfaces: []string{"sas"}},
			{Canonical: "Go", Category: "Programming Languages", Surfaces: []string{"golang"}},
			{Canonical: "MySQL", Category: "Databases", Surfaces: []string{"mysql"}},
			{Canonical: "PostgreSQL", Category: "Databases", Surfaces: []string{"postgresql", "postgres"}},
			{Canonical: "MongoDB", Category: "Databases", Surfaces: []string{"mongodb", "mongo"}},
			{Canonical: "Cassandra", Category: "Databases", Surfaces: []string{"cassandra"}},
			{Canonical: "Redis", Category: "Databases", Surfaces: []string{"redis"}},
			{Canonical: "Oracle", Category: "Databases", Surfaces: []string{"oracle"}},
			{Canonical: "SQL Server", Category: "Databases", Surfaces: []string{"sql server", "mssql"}},
			{Canonical: "DynamoDB", Category: "Databases", Surfaces: []string{"dynamodb"}},
			{Canonical: "BigQuery", Category: "Databases", Surfaces: []string{"bigquery"}},
			{Canonical: "Snowflake", Category: "Databases", Surfaces: []string{"snowflake"}},
			{Canonical: "Redshift", Category: "Databases", Surfaces: []string{"redshift"}},
			{Canonical: "Tableau", Category: "BI Tools", Surfaces: []string{"tableau"}},
			{Canonical: "Power BI", Category: "BI Tools", Surfaces: []string{"power bi", "powerbi"}},
			{Canonical: "Looker", Category: "BI Tools", Surfaces: []string{"looker"}},
			{Canonical: "Qlik", Category: "BI Tools", Surfaces: []string{"qlik", "qlikview", "qlik sense"}},
			{Canonical: "Metabase", Category: "BI Tools", Surfaces: []string{"metabase"}},
			{Canonical: "AWS", Category: "Cloud Platforms", Surfaces: []string{"aws", "amazon web services"}},
			{Canonical: "Azure", Category: "Cloud Platforms", Surfaces: []string{"azure"}},
			{Canonical: "GCP", Category: "Cloud Platforms", Surfaces: []string{"gcp", "google cloud"}},
			{Canonical: "Databricks", Category: "Cloud Platforms", Surfaces: []string{"databricks"}},
			{Canonical: "Spark", Category: "Data Engineering", Surfaces: []string{"spark", "pyspark"}},
			{Canonical: "Hadoop", Category: "Data Engineering", Surfaces: []string{"hadoop"}},
			{Canonical: "Kafka", Category: "Data Engineering", Surfaces: []string{"kafka"}},
			{Canonical: "Airflow", Category: "Data Engineering", Surfaces: []string{"airflow"}},
			{Canonical: "Hive", Category: "Data Engineering", Surfaces: []string{"hive"}},
			{Canonical: "dbt", Category: "Data Engineering", Surfaces: []string{"dbt"}},
			{Canonical: "Fivetran", Category: "Data Engineering", Surfaces: []string{"fivetran"}},
			{Canonical: "TensorFlow", Category: "Machine Learning", Surfaces: []string{"tensorflow"}},
			{Canonical: "PyTorch", Category: "Machine Learning", Surfaces: []string{"pytorch"}},
			{Canonical: "Keras", Category: "Machine Learning", Surfaces: []string{"keras"}},
			{Canonical: "Scikit-learn", Category: "Machine Learning", Surfaces: []string{"scikit-learn", "sklearn"}},
			{Canonical: "XGBoost", Category: "Machine Learning", Surfaces: []string{"xgboost"}},
			{Canonical: "MLflow", Category: "Machine Learning", Surfaces: []string{"mlflow"}},
			{Canonical: "SageMaker", Category: "Machine Learning", Surfaces: []string{"sagemaker"}},
			{Canonical: "Excel", Category: "Analytics Tools", Surfaces: []string{"excel"}},
			{Canonical: "Google Sheets", Category: "Analytics Tools", Surfaces: []string{"google sheets"}},
			{Canonical: "Jupyter", Category: "Analytics Tools", Surfaces: []string{"jupyter"}},
			{Canonical: "Alteryx", Category: "Analytics Tools", Surfaces: []string{"alteryx"}},
			{Canonical: "SPSS", Category: "Analytics Tools", Surfaces: []string{"spss"}},
			{Canonical: "Matplotlib", Category: "Data Visualization", Surfaces: []string{"matplotlib"}},
			{Canonical: "Plotly", Category: "Data Visualization", Surfaces: []string{"plotly"}},
			{Canonical: "D3.js", Category: "Data Visualization", Surfaces: []string{"d3.js", "d3js"}},
			{Canonical: "ggplot2", Category: "Data Visualization", Surfaces: []string{"ggplot2", "ggplot"}},
			{Canonical: "Streamlit", Category: "Data Visualization", Surfaces: []string{"streamlit"}},
			{Canonical: "Git", Category: "Version Control", Surfaces: []string{"git", "github", "gitlab"}},
			{Canonical: "A/B Testing", Category: "Statistics", Surfaces: []string{"a/b testing", "ab testing"}},
			{Canonical: "Regression", Category: "Statistics", Surfaces: []string{"regression"}},
			{Canonical: "Time Series", Category: "Statistics", Surfaces: []string{"time series"}},
		},
	}
}
