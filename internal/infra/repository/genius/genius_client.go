package genius

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/soundshelf/soundshelf-api/internal/app/domain"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/oauth2"
)

type GeniusClientConfig struct {
	host        string
	accessToken string
	timeout     time.Duration
	httpClient  *http.Client
	tracer      trace.Tracer
}

func NewGeniusClientConfig(
	host string,
	accessToken string,
	timeout time.Duration,
	httpClient *http.Client,
	tracer trace.Tracer,
) *GeniusClientConfig {
	return &GeniusClientConfig{
		host:        host,
		accessToken: accessToken,
		timeout:     timeout,
		httpClient:  httpClient,
		tracer:      tracer,
	}
}

type GeniusClient struct {
	tracer     trace.Tracer
	searchURL  string
	httpClient *http.Client
}

// New builds a client whose transport attaches the access token as a bearer
// header on every request.
func New(ctx context.Context, config *GeniusClientConfig) *GeniusClient {
	if config.httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, config.httpClient)
	}

	httpClient := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: config.accessToken,
		TokenType:   "Bearer",
	}))
	httpClient.Timeout = config.timeout

	return &GeniusClient{
		tracer:     config.tracer,
		searchURL:  strings.TrimSuffix(config.host, "/") + "/search",
		httpClient: httpClient,
	}
}

type searchResponse struct {
	Meta struct {
		Status  int    `json:"status"`
		Message string `json:"message"`
	} `json:"meta"`
	Response struct {
		Hits []domain.SearchHit `json:"hits"`
	} `json:"response"`
}

func (client *GeniusClient) Search(ctx context.Context, query string) ([]domain.SearchHit, error) {
	ctx, span := client.tracer.Start(ctx, "GeniusClient.Search")
	defer span.End()

	endpoint := client.searchURL + "?" + url.Values{"q": {query}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: http.NewRequestWithContext: %s", domain.ErrUpstream, err.Error())
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.httpClient.Do(req)
	if err != nil {
		span.RecordError(err)
		if isTimeout(err) {
			return nil, fmt.Errorf("%w: %w: %s", domain.ErrUpstream, domain.ErrUpstreamTimeout, err.Error())
		}
		return nil, fmt.Errorf("%w: %s", domain.ErrUpstream, err.Error())
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: unexpected status %d", domain.ErrUpstream, resp.StatusCode)
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %s", domain.ErrUpstream, err.Error())
	}

	span.SetAttributes(attribute.Int("genius.hits", len(body.Response.Hits)))

	return body.Response.Hits, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
