// Package nba is a minimal stats.nba.com client covering the two endpoints
// the pipeline needs: the per-player game log and the league-wide player
// directory. Responses use the site's resultSets/rowSet tabular JSON; rows
// are decoded by header name so column reordering upstream doesn't break us.
package nba

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
)

// seasonTypeRegular is the only season type the pipeline queries.
const seasonTypeRegular = "Regular Season"

// Config holds client settings, populated from NBAMETRICS_* environment
// variables. stats.nba.com rejects requests without browser-like headers,
// hence the default User-Agent and the Referer set on every request.
type Config struct {
	BaseURL   string        `envconfig:"BASE_URL" default:"https://stats.nba.com/stats"`
	Timeout   time.Duration `envconfig:"TIMEOUT" default:"15s"`
	UserAgent string        `envconfig:"USER_AGENT" default:"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"`
}

// ConfigFromEnv parses client settings from the environment.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process("nbametrics", &cfg); err != nil {
		return Config{}, fmt.Errorf("parse client config: %w", err)
	}
	return cfg, nil
}

// Client is a stats.nba.com API client.
type Client struct {
	cfg  Config
	http *http.Client
	log  zerolog.Logger
}

// NewClient returns a client using the given settings and logger.
func NewClient(cfg Config, log zerolog.Logger) *Client {
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
		log:  log,
	}
}

// statsResponse is the tabular envelope every stats.nba.com endpoint returns.
type statsResponse struct {
	ResultSets []resultSet `json:"resultSets"`
}

type resultSet struct {
	Name    string          `json:"name"`
	Headers []string        `json:"headers"`
	RowSet  [][]interface{} `json:"rowSet"`
}

// get performs a GET against endpoint with the given query parameters and
// decodes the tabular response.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values) (*statsResponse, error) {
	u := c.cfg.BaseURL + "/" + endpoint + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Referer", "https://www.nba.com/")
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("endpoint", endpoint).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("stats.nba.com request")

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 200))
		return nil, fmt.Errorf("GET %s: HTTP %d: %s", endpoint, resp.StatusCode, snippet)
	}

	var out statsResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("GET %s: decode response: %w", endpoint, err)
	}
	return &out, nil
}

// columns maps header names to their column index.
func (rs *resultSet) columns() map[string]int {
	idx := make(map[string]int, len(rs.Headers))
	for i, h := range rs.Headers {
		idx[h] = i
	}
	return idx
}

// cellString reads the named column of row as a string; missing or null
// cells come back empty.
func cellString(row []interface{}, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(row) {
		return ""
	}
	switch v := row[i].(type) {
	case string:
		return v
	case float64:
		// Some IDs arrive as JSON numbers.
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

// cellFloat reads the named column of row as a float64. The API serves most
// stat cells as numbers but minutes occasionally come back as strings; both
// are handled, anything else reads as 0.
func cellFloat(row []interface{}, cols map[string]int, name string) float64 {
	i, ok := cols[name]
	if !ok || i >= len(row) {
		return 0
	}
	switch v := row[i].(type) {
	case float64:
		return v
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
