package elastic

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"github.com/logitrack/logistics-api/internal/domain/entity"
	"github.com/logitrack/logistics-api/internal/domain/repository"
)

// TrackingRepository stores tracking events as documents in Elasticsearch.
// package_id is a keyword field, which gives getHistory its secondary index.
type TrackingRepository struct {
	es    *elasticsearch.Client
	index string
}

func NewTrackingRepository(es *elasticsearch.Client, index string) *TrackingRepository {
	return &TrackingRepository{es: es, index: index}
}

type eventDoc struct {
	PackageID    string `json:"package_id"`
	Location     string `json:"location"`
	Status       string `json:"status"`
	Description  string `json:"description,omitempty"`
	RegisteredBy string `json:"registered_by"`
	Timestamp    string `json:"timestamp"`
}

func (r *TrackingRepository) Save(ctx context.Context, e *entity.TrackingEvent) error {
	doc := eventDoc{
		PackageID:    e.PackageID,
		Location:     e.Location,
		Status:       e.Status,
		Description:  e.Description,
		RegisteredBy: e.RegisteredBy,
		Timestamp:    e.Timestamp.UTC().Format(time.RFC3339Nano),
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	// wait_for so a history read right after the append sees the event
	req := esapi.IndexRequest{
		Index:      r.index,
		DocumentID: e.ID,
		Body:       strings.NewReader(string(b)),
		Refresh:    "wait_for",
	}
	c, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	res, err := req.Do(c, r.es)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return fmt.Errorf("index tracking event: %s", res.Status())
	}
	return nil
}

func (r *TrackingRepository) FindByPackageID(ctx context.Context, packageID string) ([]*entity.TrackingEvent, error) {
	query := map[string]any{
		"query": map[string]any{
			"term": map[string]any{
				"package_id": packageID,
			},
		},
		"sort": []map[string]any{
			{"timestamp": map[string]any{"order": "desc"}},
		},
		"size": 1000,
	}
	b, err := json.Marshal(query)
	if err != nil {
		return nil, err
	}

	c, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.es.Search(
		r.es.Search.WithContext(c),
		r.es.Search.WithIndex(r.index),
		r.es.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	// a package with no events may predate the index itself
	if res.StatusCode == http.StatusNotFound {
		return []*entity.TrackingEvent{}, nil
	}
	if res.IsError() {
		return nil, fmt.Errorf("search tracking events: %s", res.Status())
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string   `json:"_id"`
				Source eventDoc `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	events := make([]*entity.TrackingEvent, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		ts, err := time.Parse(time.RFC3339Nano, h.Source.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("parse event timestamp: %w", err)
		}
		events = append(events, &entity.TrackingEvent{
			ID:           h.ID,
			PackageID:    h.Source.PackageID,
			Location:     h.Source.Location,
			Status:       h.Source.Status,
			Description:  h.Source.Description,
			RegisteredBy: h.Source.RegisteredBy,
			Timestamp:    ts,
		})
	}
	return events, nil
}

var _ repository.TrackingRepository = (*TrackingRepository)(nil)
