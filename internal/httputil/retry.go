// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared by the network fetchers.
package httputil

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"time"
)

// RetryBaseDelay is the first backoff after an HTTP 429. arXiv asks
// clients to wait at least three seconds between requests. Tests override
// this to avoid real sleeps.
var RetryBaseDelay = 3 * time.Second

// maxRetryAfter caps a server-provided Retry-After so a misbehaving server
// cannot stall the command indefinitely.
const maxRetryAfter = time.Minute

// DoWithRetry executes req and, when maxRetries is positive, retries on
// HTTP 429 (Too Many Requests). The wait is the response's Retry-After in
// seconds when present, otherwise RetryBaseDelay doubled per attempt.
//
// With maxRetries <= 0 exactly one attempt is made. On each retried 429 the
// body is drained and closed first. If ctx is cancelled while waiting the
// function returns ctx.Err(). After the last attempt any response,
// including a 429, is returned for the caller to inspect.
func DoWithRetry(ctx context.Context, client *http.Client, req *http.Request, maxRetries int) (*http.Response, error) {
	for attempt := 0; ; attempt++ {
		resp, err := client.Do(req.Clone(ctx))
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusTooManyRequests || attempt >= maxRetries {
			return resp, nil
		}

		wait := backoff(attempt, resp.Header.Get("Retry-After"))
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}
}

func backoff(attempt int, retryAfter string) time.Duration {
	if secs, err := strconv.Atoi(retryAfter); err == nil && secs >= 0 {
		d := time.Duration(secs) * time.Second
		if d > maxRetryAfter {
			d = maxRetryAfter
		}
		return d
	}
	return RetryBaseDelay << attempt
}
