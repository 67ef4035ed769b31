package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/project-tktt/job-market-etl/internal/common/dedup"
	"github.com/project-tktt/job-market-etl/internal/common/indexer"
	"github.com/project-tktt/job-market-etl/internal/common/parser"
	"github.com/project-tktt/job-market-etl/internal/config"
	"github.com/project-tktt/job-market-etl/internal/ingest"
	"github.com/project-tktt/job-market-etl/internal/pipeline"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	logger, err := newLogger(cfg.Logging)
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("Pipeline run failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	rules, err := loadRules(cfg.Rules.Path)
	if err != nil {
		return err
	}

	raws, err := ingest.ReadFiles(cfg.Input.Paths, nil)
	if err != nil {
		return err
	}
	logger.Info("Ingested raw postings",
		zap.Int("records", len(raws)),
		zap.Strings("files", cfg.Input.Paths))

	dd := newDeduplicator(ctx, cfg.Redis, logger)

	p := pipeline.New(logger, rules, dd, pipeline.Config{Workers: cfg.Pipeline.Workers})
	result, err := p.Run(ctx, raws)
	if err != nil {
		return err
	}

	exporter, err := indexer.NewCSVExporter(cfg.Output.Dir)
	if err != nil {
		return err
	}
	if err := exporter.Load(ctx, result.Tables); err != nil {
		return err
	}
	logger.Info("Exported star schema to CSV", zap.String("dir", cfg.Output.Dir))

	if cfg.Postgres.Enabled {
		loader, err := indexer.NewPostgresLoader(cfg.Postgres.ConnectionString)
		if err != nil {
			return err
		}
		defer loader.Close()
		if err := loader.Load(ctx, result.Tables); err != nil {
			return err
		}
		logger.Info("Loaded star schema into Postgres")
	}

	if cfg.Elasticsearch.Enabled {
		es, err := indexer.NewElasticsearchIndexer(cfg.Elasticsearch.Addresses, cfg.Elasticsearch.Index)
		if err != nil {
			return err
		}
		if err := es.BulkIndex(ctx, result.Postings); err != nil {
			return err
		}
		logger.Info("Indexed postings into Elasticsearch",
			zap.String("index", cfg.Elasticsearch.Index),
			zap.Int("postings", len(result.Postings)))
	}

	report := result.Report
	logger.Info("Run report",
		zap.Int("total_records", report.TotalRecords),
		zap.Int("dropped_records", report.DroppedRecords),
		zap.Int("duplicate_records", report.DuplicateRecords),
		zap.Int("fact_rows", report.FactRows),
		zap.Float64("salary_pct", report.SalaryPct()),
		zap.Float64("skills_pct", report.SkillsPct()))

	return nil
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	if cfg.Development {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func loadRules(path string) (*parser.Rules, error) {
	if path == "" {
		return parser.Defaults(), nil
	}
	return parser.LoadRules(path)
}

// newDeduplicator falls back to the in-memory backend when Redis is disabled
// or unreachable, so a run never fails on the seen-cache.
func newDeduplicator(ctx context.Context, cfg config.RedisConfig, logger *zap.Logger) dedup.Deduplicator {
	if !cfg.Enabled {
		return dedup.NewMemoryDeduplicator()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Warn("Redis unavailable, using in-memory duplicate detection", zap.Error(err))
		return dedup.NewMemoryDeduplicator()
	}
	return dedup.NewRedisDeduplicator(client, cfg.Prefix, cfg.TTL)
}
