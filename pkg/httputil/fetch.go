package httputil

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultAttempts is the number of tries [Fetch] makes before giving up.
const DefaultAttempts = 3

// retryDelay is the initial backoff delay; shortened in tests.
var retryDelay = time.Second

// Fetch downloads url and returns the response body. Transport failures
// and 5xx responses are retried with exponential backoff (1s initial
// delay, [DefaultAttempts] attempts); 4xx responses fail immediately.
// A nil client falls back to http.DefaultClient.
func Fetch(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	if client == nil {
		client = http.DefaultClient
	}

	var body []byte
	err := Retry(ctx, DefaultAttempts, retryDelay, func() error {
		var err error
		body, err = fetchOnce(ctx, client, url)
		return err
	})
	return body, err
}

func fetchOnce(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, Retryable(err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 500:
		return nil, Retryable(fmt.Errorf("GET %s: %s", url, resp.Status))
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("GET %s: %s", url, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, Retryable(fmt.Errorf("read %s: %w", url, err))
	}
	return body, nil
}
