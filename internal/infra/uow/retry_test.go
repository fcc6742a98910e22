//go:build unit

package uow

import (
	"errors"
	"testing"
	"time"

	"rfq-offer-service/internal/infra"
	"rfq-offer-service/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestRetryPolicy_ShouldRetry(t *testing.T) {
	p := retryPolicy{maxRetries: 3, base: time.Millisecond}
	serialization := &pgconn.PgError{Code: pgErrCodeSerializationFailure}
	deadlock := &pgconn.PgError{Code: pgErrCodeDeadlockDetected}
	unique := &pgconn.PgError{Code: "23505"}

	tests := []struct {
		name    string
		err     error
		attempt int
		want    bool
	}{
		{"serialization failure", serialization, 0, true},
		{"deadlock", deadlock, 2, true},
		{"wrapped by repository", infra.WrapRepoErr("lock offer", serialization), 1, true},
		{"marked by use case", errs.Mark(infra.WrapRepoErr("lock offer", deadlock), errors.New("db failed")), 0, true},
		{"attempts exhausted", serialization, 3, false},
		{"unique violation", unique, 0, false},
		{"plain error", errors.New("boom"), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.shouldRetry(tt.err, tt.attempt))
		})
	}
}

func TestRetryPolicy_Backoff(t *testing.T) {
	p := retryPolicy{maxRetries: 3, base: 100 * time.Millisecond}

	for attempt, floor := range []time.Duration{100 * time.Millisecond, 200 * time.Millisecond, 400 * time.Millisecond} {
		got := p.backoff(attempt)
		assert.GreaterOrEqual(t, got, floor)
		assert.Less(t, got, floor+floor/5+time.Nanosecond)
	}
}
