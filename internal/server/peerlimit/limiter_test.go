package peerlimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLimiter_BurstThenDenied(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	l := New(1, 2, time.Minute)
	l.now = func() time.Time { return now }

	assert.True(t, l.Allow("10.0.0.1"))
	assert.True(t, l.Allow("10.0.0.1"))
	assert.False(t, l.Allow("10.0.0.1"))

	// peers are independent
	assert.True(t, l.Allow("10.0.0.2"))

	now = now.Add(time.Second)
	assert.True(t, l.Allow("10.0.0.1"))
}

func TestLimiter_EvictsIdlePeers(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	l := New(1, 1, time.Minute)
	l.now = func() time.Time { return now }

	l.Allow("a")
	l.Allow("b")
	assert.Equal(t, 2, l.Size())

	now = now.Add(2 * time.Minute)
	l.Allow("a")
	assert.Equal(t, 1, l.Size())
}

func TestLimiter_SweepsAtMostOncePerTTL(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	now := start
	l := New(1, 1, time.Minute)
	l.now = func() time.Time { return now }

	l.Allow("a")
	now = start.Add(30 * time.Second)
	l.Allow("b")

	now = start.Add(61 * time.Second)
	l.Allow("c")
	assert.Equal(t, 2, l.Size(), "a evicted, b still fresh")

	// b is idle past the ttl, but the next sweep is not due yet
	now = start.Add(100 * time.Second)
	l.Allow("d")
	assert.Equal(t, 3, l.Size())

	now = start.Add(121 * time.Second)
	l.Allow("e")
	assert.Equal(t, 3, l.Size(), "b evicted, c d e kept")
}

func TestLimiter_DisabledAllowsEverything(t *testing.T) {
	l := New(0, 0, 0)
	for i := 0; i < 100; i++ {
		assert.True(t, l.Allow("x"))
	}
}

func TestHost(t *testing.T) {
	assert.Equal(t, "10.0.0.1", Host("10.0.0.1:1234"))
	assert.Equal(t, "::1", Host("[::1]:80"))
	assert.Equal(t, "bufconn", Host("bufconn"))
}
