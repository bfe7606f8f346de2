package tmdb

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/narwhalmedia/tracker/internal/catalog/domain"
	"github.com/narwhalmedia/tracker/pkg/errors"
)

// Config holds TMDB client settings
type Config struct {
	BaseURL      string
	ImageBaseURL string
	APIKey       string
	Language     string
	Timeout      time.Duration
}

// Client represents a TMDB API client
type Client struct {
	baseURL      string
	imageBaseURL string
	apiKey       string
	language     string
	httpClient   *http.Client
}

// NewClient creates a new TMDB client
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		imageBaseURL: strings.TrimRight(cfg.ImageBaseURL, "/"),
		apiKey:       cfg.APIKey,
		language:     cfg.Language,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// SearchResponse is the body of /search/movie
type SearchResponse struct {
	Page         int           `json:"page"`
	Results      []MovieResult `json:"results"`
	TotalResults int           `json:"total_results"`
}

// MovieResult is one hit of a movie search
type MovieResult struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	ReleaseDate string  `json:"release_date"`
	PosterPath  string  `json:"poster_path"`
	VoteAverage float64 `json:"vote_average"`
}

type statusMessage struct {
	StatusMessage string `json:"status_message"`
}

// SearchMovies queries /search/movie and maps hits to candidates.
func (c *Client) SearchMovies(ctx context.Context, query string) ([]domain.Candidate, error) {
	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("query", query)
	if c.language != "" {
		params.Set("language", c.language)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search/movie?"+params.Encode(), nil)
	if err != nil {
		return nil, errors.Lookup("creating request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, errors.Lookup("request cancelled", ctxErr)
		}
		// url.Error embeds the request URL and with it the key
		return nil, errors.Lookup("executing request", redact(err, c.apiKey))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var msg statusMessage
		_ = json.NewDecoder(resp.Body).Decode(&msg)
		if msg.StatusMessage == "" {
			msg.StatusMessage = http.StatusText(resp.StatusCode)
		}
		return nil, errors.Lookup("metadata provider error",
			fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, msg.StatusMessage))
	}

	var body SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errors.Lookup("decoding response", err)
	}

	candidates := make([]domain.Candidate, 0, len(body.Results))
	for _, r := range body.Results {
		candidates = append(candidates, c.toCandidate(r))
	}
	return candidates, nil
}

func (c *Client) toCandidate(r MovieResult) domain.Candidate {
	candidate := domain.Candidate{
		Title:         r.Title,
		AverageRating: r.VoteAverage,
		ReleaseYear:   releaseYear(r.ReleaseDate),
	}
	if r.PosterPath != "" {
		candidate.PosterURL = c.imageBaseURL + "/" + strings.TrimLeft(r.PosterPath, "/")
	}
	return candidate
}

// releaseYear parses the year of a YYYY-MM-DD date; 0 when absent.
func releaseYear(date string) int {
	if len(date) < 4 {
		return 0
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0
	}
	return year
}

func redact(err error, secret string) error {
	if secret == "" {
		return err
	}
	msg := strings.ReplaceAll(err.Error(), url.QueryEscape(secret), "REDACTED")
	return fmt.Errorf("%s", strings.ReplaceAll(msg, secret, "REDACTED"))
}
