package parallel

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForSequentialBelowThreshold(t *testing.T) {
	cfg := Config{Enabled: true, Workers: 4, MinIters: 100}

	out := make([]int, 10)
	For(10, func(i int) { out[i] = i * i }, cfg)

	for i, v := range out {
		assert.Equal(t, i*i, v)
	}
}

func TestForParallelCoversRange(t *testing.T) {
	cfg := Config{Enabled: true, Workers: 4, MinIters: 1}

	const n = 1000
	var hits [n]int32
	For(n, func(i int) { atomic.AddInt32(&hits[i], 1) }, cfg)

	for i := 0; i < n; i++ {
		assert.Equal(t, int32(1), hits[i], "index %d", i)
	}
}

func TestForDisabled(t *testing.T) {
	cfg := Config{Enabled: false, Workers: 4, MinIters: 1}

	sum := 0
	For(5, func(i int) { sum += i }, cfg)
	assert.Equal(t, 10, sum)
}

func TestForZeroIterations(t *testing.T) {
	called := false
	For(0, func(int) { called = true }, DefaultConfig())
	assert.False(t, called)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Positive(t, cfg.Workers)
	assert.Positive(t, cfg.MinIters)
}
