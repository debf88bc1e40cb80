package repository

import (
	apperrors "GSM_Uptime_Microservice/internal/uptime-service/errors"
	"GSM_Uptime_Microservice/internal/uptime-service/model"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/elastic/go-elasticsearch/v9"
)

// UptimeStatsRepository mirrors the check history into Elasticsearch so
// dashboards can run uptime aggregations without scanning the postgres
// time series. Indexing is best effort, postgres stays the source of truth.
type UptimeStatsRepository interface {
	IndexRecord(ctx context.Context, record model.UptimeRecord) error
	GetServerUptimePercentage(ctx context.Context, serverID string, startTime time.Time, endTime time.Time) (float64, error)
}

const esUptimeIndexName = "uptime_records"

type uptimeStatsRepository struct {
	es *elasticsearch.Client
}

type esUptimeDocument struct {
	ServerID      string    `json:"server_id"`
	Online        bool      `json:"online"`
	OnlineNumeric int       `json:"online_numeric"`
	PlayersOnline int       `json:"players_online"`
	PlayersMax    int       `json:"players_max"`
	LatencyMs     *int64    `json:"latency_ms"`
	Method        string    `json:"method"`
	Timestamp     time.Time `json:"timestamp"`
}

type esErrorResponse struct {
	Error struct {
		Type   string `json:"type"`
		Reason string `json:"reason"`
	}
}

type esUptimePercentageResponse struct {
	Aggregations struct {
		UptimePercentage struct {
			Value float64 `json:"value"`
		} `json:"uptime_percentage"`
	} `json:"aggregations"`
}

func (u *uptimeStatsRepository) IndexRecord(ctx context.Context, record model.UptimeRecord) error {
	doc := esUptimeDocument{
		ServerID:      record.ServerID,
		Online:        record.Online,
		PlayersOnline: record.PlayersOnline,
		PlayersMax:    record.PlayersMax,
		LatencyMs:     record.LatencyMs,
		Method:        string(record.Method),
		Timestamp:     record.CreatedAt,
	}
	if record.Online {
		doc.OnlineNumeric = 1
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("UptimeStatsRepository.IndexRecord encode document: %w", err)
	}
	res, err := u.es.Index(esUptimeIndexName, bytes.NewReader(b), u.es.Index.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("UptimeStatsRepository.IndexRecord: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		var e esErrorResponse
		if err = json.NewDecoder(res.Body).Decode(&e); err != nil {
			return fmt.Errorf("UptimeStatsRepository.IndexRecord decode err response: %w", err)
		}
		return fmt.Errorf("UptimeStatsRepository.IndexRecord: %w", apperrors.NewElasticSearchError(res.StatusCode, e.Error.Type, e.Error.Reason))
	}
	return nil
}

func (u *uptimeStatsRepository) GetServerUptimePercentage(ctx context.Context, serverID string, startTime time.Time, endTime time.Time) (float64, error) {
	query := map[string]interface{}{
		"size": 0,
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"filter": []map[string]interface{}{
					{
						"term": map[string]interface{}{
							"server_id": serverID,
						},
					},
					{
						"range": map[string]interface{}{
							"timestamp": map[string]interface{}{
								"gte": startTime,
								"lt":  endTime,
							},
						},
					},
				},
			},
		},
		"aggs": map[string]interface{}{
			"uptime_percentage": map[string]interface{}{
				"avg": map[string]interface{}{
					"field": "online_numeric",
				},
			},
		},
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(query); err != nil {
		return 0, fmt.Errorf("UptimeStatsRepository.GetServerUptimePercentage encode query: %w", err)
	}
	res, err := u.es.Search(
		u.es.Search.WithContext(ctx),
		u.es.Search.WithIndex(esUptimeIndexName),
		u.es.Search.WithBody(&buf))
	if err != nil {
		return 0, fmt.Errorf("UptimeStatsRepository.GetServerUptimePercentage: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		var e esErrorResponse
		if err = json.NewDecoder(res.Body).Decode(&e); err != nil {
			return 0, fmt.Errorf("UptimeStatsRepository.GetServerUptimePercentage decode err response: %w", err)
		}
		return 0, fmt.Errorf("UptimeStatsRepository.GetServerUptimePercentage: %w", apperrors.NewElasticSearchError(res.StatusCode, e.Error.Type, e.Error.Reason))
	}

	var uptimeResponse esUptimePercentageResponse
	if err = json.NewDecoder(res.Body).Decode(&uptimeResponse); err != nil {
		return 0, fmt.Errorf("UptimeStatsRepository.GetServerUptimePercentage decode response: %w", err)
	}
	return uptimeResponse.Aggregations.UptimePercentage.Value * 100, nil
}

func NewUptimeStatsRepository(esClient *elasticsearch.Client) UptimeStatsRepository {
	return &uptimeStatsRepository{
		es: esClient,
	}
}
