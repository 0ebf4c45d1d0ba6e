package httputil

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/matzehuels/calgrid/pkg/buildinfo"
	apperrors "github.com/matzehuels/calgrid/pkg/errors"
)

// MaxBodySize bounds the size of a fetched document.
const MaxBodySize = 32 << 20

// Client fetches documents over HTTP with retry.
// The zero value uses http.DefaultClient, 3 attempts and a 1s initial delay.
type Client struct {
	HTTP      *http.Client
	Attempts  int
	Delay     time.Duration
	UserAgent string
}

var defaultClient = &Client{UserAgent: buildinfo.UserAgent()}

// Fetch GETs url with the default client.
func Fetch(ctx context.Context, url string) ([]byte, error) {
	return defaultClient.Fetch(ctx, url)
}

// Fetch GETs url and returns the response body.
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	if err := apperrors.ValidateURL(url); err != nil {
		return nil, err
	}

	attempts, delay := c.Attempts, c.Delay
	if attempts <= 0 {
		attempts = 3
	}
	if delay <= 0 {
		delay = time.Second
	}

	var body []byte
	err := Retry(ctx, attempts, delay, func() error {
		var err error
		body, err = c.get(ctx, url)
		return err
	})
	if err == nil {
		return body, nil
	}

	switch {
	case apperrors.GetCode(err) != "":
		return nil, err
	case errors.Is(err, context.DeadlineExceeded):
		return nil, apperrors.Wrap(apperrors.ErrCodeTimeout, err, "fetch %s", url)
	default:
		return nil, apperrors.Wrap(apperrors.ErrCodeNetwork, err, "fetch %s", url)
	}
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "build request")
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	hc := c.HTTP
	if hc == nil {
		hc = http.DefaultClient
	}
	resp, err := hc.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, err
		}
		return nil, &RetryableError{Err: err}
	}
	defer resp.Body.Close()

	if err := checkStatus(url, resp.StatusCode); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize+1))
	if err != nil {
		return nil, &RetryableError{Err: err}
	}
	if len(body) > MaxBodySize {
		return nil, apperrors.New(apperrors.ErrCodeInvalidInput, "%s: response larger than %d bytes", url, MaxBodySize)
	}
	return body, nil
}

func checkStatus(url string, code int) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusTooManyRequests || code >= 500:
		return &RetryableError{Err: fmt.Errorf("%s: status %d", url, code)}
	case code == http.StatusNotFound:
		return apperrors.New(apperrors.ErrCodeNotFound, "%s: not found", url)
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return apperrors.New(apperrors.ErrCodeUnauthorized, "%s: status %d", url, code)
	default:
		return apperrors.New(apperrors.ErrCodeNetwork, "%s: status %d", url, code)
	}
}
