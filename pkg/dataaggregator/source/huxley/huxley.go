package huxley

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
	"github.com/travigo/railboard/pkg/dataaggregator/query"
	"github.com/travigo/railboard/pkg/ldb"
	"github.com/travigo/railboard/pkg/util"
)

const defaultBaseURL = "https://huxley2.azurewebsites.net"
const defaultTimeout = 30 * time.Second
const defaultMaxRetries = 3

// Source fetches boards from a Huxley 2 proxy of the National Rail Live
// Departure Boards web service.
type Source struct {
	BaseURL     string
	AccessToken string
	MaxRetries  uint64

	HTTPClient *http.Client
}

// New builds a Source from RAILBOARD_HUXLEY_URL, DARWIN_API_KEY and
// RAILBOARD_HTTP_TIMEOUT.
func New() Source {
	env := util.GetEnvironmentVariables()

	baseURL := defaultBaseURL
	if env["RAILBOARD_HUXLEY_URL"] != "" {
		baseURL = env["RAILBOARD_HUXLEY_URL"]
	}

	timeout := defaultTimeout
	if env["RAILBOARD_HTTP_TIMEOUT"] != "" {
		if parsed, err := time.ParseDuration(env["RAILBOARD_HTTP_TIMEOUT"]); err == nil {
			timeout = parsed
		} else {
			log.Warn().Err(err).Msg("Ignoring invalid RAILBOARD_HTTP_TIMEOUT")
		}
	}

	return Source{
		BaseURL:     baseURL,
		AccessToken: env["DARWIN_API_KEY"],
		MaxRetries:  defaultMaxRetries,
		HTTPClient:  &http.Client{Timeout: timeout},
	}
}

func (s Source) GetName() string {
	return "Huxley Live Departure Boards"
}

func (s Source) Lookup(ctx context.Context, q query.Board) (*ldb.Board, error) {
	endpoint := s.endpoint(q)

	log.Debug().Str("url", redact(endpoint)).Msg("Requesting board from Huxley")

	retryBackoff := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), s.MaxRetries), ctx)

	return backoff.RetryNotifyWithData(
		func() (*ldb.Board, error) {
			return s.fetch(ctx, endpoint)
		},
		retryBackoff,
		func(err error, wait time.Duration) {
			log.Warn().Err(err).Str("crs", q.Crs).Str("wait", wait.String()).Msg("Huxley request failed, retrying")
		},
	)
}

func (s Source) fetch(ctx context.Context, endpoint string) (*ldb.Board, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("creating request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "railboard")

	client := s.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		statusErr := fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))

		if resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests {
			return nil, statusErr
		}
		return nil, backoff.Permanent(statusErr)
	}

	board, err := ldb.DecodeBoard(resp.Body)
	if err != nil {
		return nil, backoff.Permanent(err)
	}

	return board, nil
}

func (s Source) endpoint(q query.Board) string {
	direction := q.Direction
	if direction == "" {
		direction = ldb.DirectionDepartures
	}

	rows := q.Rows
	if rows == 0 {
		rows = query.DefaultRows
	}

	params := url.Values{}
	if s.AccessToken != "" {
		params.Set("accessToken", s.AccessToken)
	}
	params.Set("expand", strconv.FormatBool(q.Expand))
	if q.TimeOffset != 0 {
		params.Set("timeOffset", strconv.Itoa(int(q.TimeOffset.Minutes())))
	}
	if q.TimeWindow != 0 {
		params.Set("timeWindow", strconv.Itoa(int(q.TimeWindow.Minutes())))
	}

	return fmt.Sprintf("%s/%s/%s/%d?%s",
		strings.TrimRight(s.BaseURL, "/"), direction, url.PathEscape(strings.ToLower(q.Crs)), rows, params.Encode())
}

func redact(endpoint string) string {
	parsed, err := url.Parse(endpoint)
	if err != nil {
		return endpoint
	}

	params := parsed.Query()
	if params.Has("accessToken") {
		params.Set("accessToken", "REDACTED")
		parsed.RawQuery = params.Encode()
	}

	return parsed.String()
}
