package closer

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloser_LIFO(t *testing.T) {
	c := NewCloser(time.Second)

	var order []string
	for _, name := range []string{"db", "cache", "server"} {
		c.AddFunc(name, func() error {
			order = append(order, name)
			return nil
		})
	}

	require.NoError(t, c.Close(context.Background()))
	assert.Equal(t, []string{"server", "cache", "db"}, order)
}

func TestCloser_CollectsErrors(t *testing.T) {
	c := NewCloser(time.Second)
	c.AddFunc("redis", func() error { return errors.New("connection reset") })
	c.AddFunc("ok", func() error { return nil })

	err := c.Close(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[!] redis: connection reset")
}

func TestCloser_CloseOnce(t *testing.T) {
	c := NewCloser(time.Second)

	calls := 0
	c.AddFunc("res", func() error {
		calls++
		return nil
	})

	require.NoError(t, c.Close(context.Background()))
	require.NoError(t, c.Close(context.Background()))
	assert.Equal(t, 1, calls)
}

func TestCloser_ForcedAfterTimeout(t *testing.T) {
	c := NewCloser(50 * time.Millisecond)

	release := make(chan struct{})
	defer close(release)

	var calls atomic.Int32
	c.AddFunc("done", func() error { return nil })
	c.Add("stuck", func(ctx context.Context) error {
		if calls.Add(1) == 1 {
			<-release
			return nil
		}
		return errors.New("still busy")
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := c.Close(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shutdown interrupted after 0/2 resources")
	assert.Contains(t, err.Error(), "[FORCED] stuck: still busy")
	assert.Equal(t, int32(2), calls.Load())
}
