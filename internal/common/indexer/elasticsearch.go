package indexer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/elastic/go-elasticsearch/v8"

	"github.com/project-tktt/job-market-etl/internal/domain"
)

// ElasticsearchIndexer indexes denormalized posting documents for
// search-side analytics, alongside the relational star schema.
type ElasticsearchIndexer struct {
	client    *elasticsearch.Client
	indexName string
}

// NewElasticsearchIndexer creates a new Elasticsearch indexer
func NewElasticsearchIndexer(addresses []string, indexName string) (*ElasticsearchIndexer, error) {
	cfg := elasticsearch.Config{
		Addresses: addresses,
	}

	client, err := elasticsearch.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("create es client: %w", err)
	}

	// Check connection
	res, err := client.Info()
	if err != nil {
		return nil, fmt.Errorf("es info: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("es error: %s", res.Status())
	}

	return &ElasticsearchIndexer{
		client:    client,
		indexName: indexName,
	}, nil
}

// BulkIndex indexes multiple postings at once
func (i *ElasticsearchIndexer) BulkIndex(ctx context.Context, postings []*domain.NormalizedPosting) error {
	if len(postings) == 0 {
		return nil
	}

	var buf bytes.Buffer

	for _, posting := range postings {
		// Meta line
		meta := map[string]any{
			"index": map[string]any{
				"_index": i.indexName,
				"_id":    posting.PostingID,
			},
		}
		metaBytes, _ := json.Marshal(meta)
		buf.Write(metaBytes)
		buf.WriteByte('\n')

		// Document line
		docBytes, err := json.Marshal(posting)
		if err != nil {
			return fmt.Errorf("marshal posting %s: %w", posting.PostingID, err)
		}
		buf.Write(docBytes)
		buf.WriteByte('\n')
	}

	res, err := i.client.Bulk(bytes.NewReader(buf.Bytes()), i.client.Bulk.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("bulk request: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("bulk error: %s", res.Status())
	}

	// Parse response to check for individual errors
	var bulkRes struct {
		Errors bool `json:"errors"`
		Items  []struct {
			Index struct {
				ID     string `json:"_id"`
				Status int    `json:"status"`
				Error  *struct {
					Type   string `json:"type"`
					Reason string `json:"reason"`
				} `json:"error,omitempty"`
			} `json:"index"`
		} `json:"items"`
	}
	if err := json.NewDecoder(res.Body).Decode(&bulkRes); err != nil {
		return fmt.Errorf("decode bulk response: %w", err)
	}

	if bulkRes.Errors {
		for _, item := range bulkRes.Items {
			if item.Index.Error != nil {
				return fmt.Errorf("index %s: %s: %s",
					item.Index.ID, item.Index.Error.Type, item.Index.Error.Reason)
			}
		}
	}

	return nil
}
