// Package indexnow notifies search engines about changed URLs using the
// IndexNow protocol (https://www.indexnow.org/documentation).
package indexnow

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ka2n/sitemapgen/log"
	"github.com/morikuni/failure/v2"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultEndpoint = "https://api.indexnow.org/indexnow"
	// MaxURLsPerRequest is the protocol limit for a single POST
	MaxURLsPerRequest = 10_000
)

// ErrorCode defines error types for IndexNow submissions
type ErrorCode string

const (
	ErrInvalidSubmission ErrorCode = "InvalidSubmission"
	ErrRequest           ErrorCode = "RequestError"
	ErrRejected          ErrorCode = "Rejected"
)

func (c ErrorCode) ErrorCode() string {
	return string(c)
}

var validate = validator.New()

// Submission is one batch of URLs of a single host
type Submission struct {
	Host        string   `json:"host" validate:"required,hostname_rfc1123"`
	Key         string   `json:"key" validate:"required,min=8,max=128"`
	KeyLocation string   `json:"keyLocation,omitempty" validate:"omitempty,url"`
	URLs        []string `json:"urlList" validate:"required,min=1,dive,url"`
}

// Client posts submissions to an IndexNow endpoint
type Client struct {
	Endpoint   string
	HTTPClient *http.Client
	// Concurrency bounds the number of batches in flight
	Concurrency int
}

// NewClient returns a client whose requests are logged at debug level
func NewClient(endpoint string) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		Endpoint: endpoint,
		HTTPClient: &http.Client{
			Transport: log.Transport,
			Timeout:   30 * time.Second,
		},
		Concurrency: 2,
	}
}

// Submit sends s in batches of at most MaxURLsPerRequest URLs.
// It returns the first failure; batches already accepted stay accepted.
func (c *Client) Submit(ctx context.Context, s Submission) error {
	if err := validate.StructCtx(ctx, s); err != nil {
		return failure.New(ErrInvalidSubmission,
			failure.Message(fmt.Sprintf("invalid IndexNow submission: %v", err)),
			failure.Context{"host": s.Host},
		)
	}

	batches := lo.Chunk(s.URLs, MaxURLsPerRequest)

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(max(c.Concurrency, 1))
	for i, batch := range batches {
		eg.Go(func() error {
			b := s
			b.URLs = batch
			if err := c.post(ctx, b); err != nil {
				return failure.Wrap(err, failure.Context{"batch": strconv.Itoa(i + 1)})
			}
			log.Info("submitted URLs to IndexNow", "host", s.Host, "batch", i+1, "urls", len(batch))
			return nil
		})
	}
	return eg.Wait()
}

func (c *Client) post(ctx context.Context, s Submission) error {
	body, err := json.Marshal(s)
	if err != nil {
		return failure.Wrap(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(body))
	if err != nil {
		return failure.Wrap(err, failure.WithCode(ErrRequest),
			failure.Message(fmt.Sprintf("cannot create IndexNow request for %s", c.Endpoint)),
			failure.Context{"endpoint": c.Endpoint},
		)
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return failure.Wrap(err, failure.WithCode(ErrRequest),
			failure.Message(fmt.Sprintf("IndexNow request to %s failed", c.Endpoint)),
			failure.Context{"endpoint": c.Endpoint},
		)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusAccepted:
		return nil
	}

	detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
	return failure.New(ErrRejected,
		failure.Message(fmt.Sprintf("IndexNow rejected the submission: %s", statusText(resp.StatusCode))),
		failure.Context{
			"status": strconv.Itoa(resp.StatusCode),
			"body":   string(detail),
		},
	)
}

// statusText explains the status codes documented by the protocol
func statusText(code int) string {
	switch code {
	case http.StatusBadRequest:
		return "400 bad request"
	case http.StatusForbidden:
		return "403 key not valid"
	case http.StatusUnprocessableEntity:
		return "422 URLs do not belong to the host or the key does not match"
	case http.StatusTooManyRequests:
		return "429 too many requests"
	}
	return fmt.Sprintf("%d %s", code, http.StatusText(code))
}
