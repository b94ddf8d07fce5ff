package circuitbreaker

import (
	"errors"
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew_OpensAfterMaxFailures(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	cb := New[struct{}](Config{Name: "test", MaxFailures: 2, OpenTimeout: time.Minute}, zap.New(core))

	fail := func() (struct{}, error) { return struct{}{}, errors.New("boom") }

	_, err := cb.Execute(fail)
	require.Error(t, err)
	_, err = cb.Execute(fail)
	require.Error(t, err)

	assert.Equal(t, gobreaker.StateOpen, cb.State())

	calls := 0
	_, err = cb.Execute(func() (struct{}, error) {
		calls++
		return struct{}{}, nil
	})
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Zero(t, calls)
	assert.Equal(t, 1, logs.FilterMessage("circuit breaker state changed").Len())
}

func TestNew_SuccessKeepsClosed(t *testing.T) {
	cb := New[int](DefaultConfig("test"), zap.NewNop())

	v, err := cb.Execute(func() (int, error) { return 42, nil })

	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.Equal(t, gobreaker.StateClosed, cb.State())
}
