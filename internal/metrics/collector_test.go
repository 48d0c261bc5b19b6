package metrics

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

var namespaceSeq uint64

func nextTestNamespace() string {
	seq := atomic.AddUint64(&namespaceSeq, 1)
	return fmt.Sprintf("test_metrics_%d", seq)
}

func TestNewCollector(t *testing.T) {
	c := NewCollector(nextTestNamespace())

	assert.NotNil(t, c.requestsTotal)
	assert.NotNil(t, c.requestDuration)
	assert.NotNil(t, c.requestSize)
	assert.NotNil(t, c.responseSize)
	assert.NotNil(t, c.cacheHits)
	assert.NotNil(t, c.cacheMisses)
}

func TestCollector_ObserveRequest(t *testing.T) {
	c := NewCollector(nextTestNamespace())

	c.ObserveRequest("POST", "/transform", "200", 5*time.Millisecond, 128, 256)
	c.ObserveRequest("POST", "/transform", "200", 7*time.Millisecond, 64, 32)
	c.ObserveRequest("POST", "/transform", "400", time.Millisecond, 16, 8)

	assert.Equal(t, float64(2), testutil.ToFloat64(c.requestsTotal.WithLabelValues("POST", "/transform", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.requestsTotal.WithLabelValues("POST", "/transform", "400")))
}

func TestCollector_Cache(t *testing.T) {
	c := NewCollector(nextTestNamespace())

	c.CacheHit()
	c.CacheHit()
	c.CacheMiss()

	assert.Equal(t, float64(2), testutil.ToFloat64(c.cacheHits))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.cacheMisses))
}
