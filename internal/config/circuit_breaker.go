package config

import (
	"errors"
	"time"

	"github.com/sony/gobreaker"

	"ppalog/internal/core/domain"
)

// NewCircuitBreaker creates a circuit breaker with standard settings
// for calls against the dashboard backend. The name uniquely
// identifies the breaker instance. Opens after three consecutive
// failures, half-opens after 15 seconds.
//
// Only transport-level failures count against the breaker: a 4xx is
// the backend answering, not the backend being down, and must keep
// reaching the caller verbatim.
func NewCircuitBreaker(name string, onStateChange func(name, from, to string)) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 3,
		Interval:    time.Second * 10,
		Timeout:     time.Second * 15,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		IsSuccessful: func(err error) bool {
			if err == nil {
				return true
			}
			var re *domain.RequestError
			var nf *domain.NotFoundError
			var ae *domain.AuthError
			return errors.As(err, &re) || errors.As(err, &nf) || errors.As(err, &ae)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			if onStateChange != nil {
				onStateChange(name, from.String(), to.String())
			}
		},
	})
}
