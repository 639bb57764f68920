package statsclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"explorewithme/internal/domain"
)

type hitRequest struct {
	App       string `json:"app"`
	URI       string `json:"uri"`
	IP        string `json:"ip"`
	Timestamp string `json:"timestamp"`
}

type httpRecorder struct {
	baseURL string
	client  *http.Client
}

// NewHTTPRecorder returns a ViewStatsRecorder that talks to the stats server at baseURL.
func NewHTTPRecorder(baseURL string, client *http.Client) domain.ViewStatsRecorder {
	if client == nil {
		client = http.DefaultClient
	}
	return &httpRecorder{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

func (r *httpRecorder) RecordHit(ctx context.Context, hit domain.EndpointHit) error {
	body, err := json.Marshal(hitRequest{
		App:       hit.App,
		URI:       hit.URI,
		IP:        hit.IP,
		Timestamp: domain.FormatDateTime(hit.Timestamp),
	})
	if err != nil {
		return fmt.Errorf("failed to encode hit: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/hit", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to post hit: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return fmt.Errorf("stats server returned status: %d", resp.StatusCode)
	}
	return nil
}

func (r *httpRecorder) ViewCounts(ctx context.Context, q domain.StatsQuery) ([]domain.ViewStats, error) {
	params := url.Values{}
	params.Set("start", domain.FormatDateTime(q.Start))
	params.Set("end", domain.FormatDateTime(q.End))
	for _, uri := range q.URIs {
		params.Add("uris", uri)
	}
	params.Set("unique", strconv.FormatBool(q.Unique))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"/stats?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stats: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("stats server returned status: %d", resp.StatusCode)
	}

	var envelope struct {
		Data []domain.ViewStats `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to decode stats response: %w", err)
	}
	return envelope.Data, nil
}
