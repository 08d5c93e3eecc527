package acl

import (
	"context"
	"fmt"
)

// mediaServiceName matches the name given to the underlying
// [httpclient.Client] for tracing and metrics.
const mediaServiceName = "media-storage"

// Name returns the identifier used when this component is registered with a
// [ports.HealthRegistry].
func (c *MediaClient) Name() string {
	return mediaServiceName
}

// HealthCheck reports the media-storage API's availability from the circuit
// breaker state; no network call is made.
//
// This reports downstream status, not service readiness: uploads fail with
// domain errors while the breaker is open, and every other endpoint keeps
// working.
func (c *MediaClient) HealthCheck(_ context.Context) error {
	state := c.req.CircuitBreakerState()
	switch state {
	case "closed":
		return nil
	case "half-open":
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", mediaServiceName)
	case "open":
		return fmt.Errorf("%s: failing (circuit breaker open)", mediaServiceName)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %q", mediaServiceName, state)
	}
}
