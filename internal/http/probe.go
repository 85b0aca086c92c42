package httpx

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"

	"shopadmin/internal/apiclient"
)

// WaitForBackend polls the backend until it answers or maxWait elapses.
// Any HTTP response counts as reachable, even an error status; only
// transport failures are retried.
func WaitForBackend(ctx context.Context, client *apiclient.Client, maxWait time.Duration) error {
	probe := func() error {
		_, err := client.Get(ctx, "/health", nil)
		if err == nil {
			return nil
		}
		var netErr *apiclient.NetworkError
		if errors.As(err, &netErr) {
			log.Debug().Err(err).Str("baseURL", client.BaseURL()).Msg("backend not reachable yet")
			return err
		}
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 500 * time.Millisecond
	bo.MaxInterval = 10 * time.Second
	bo.MaxElapsedTime = maxWait

	return backoff.Retry(probe, backoff.WithContext(bo, ctx))
}
