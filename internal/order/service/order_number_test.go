package service

import (
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var orderNumberPattern = regexp.MustCompile(`^ORD-\d{13}-\d{3}$`)

func TestOrderNumberGenerator_Format(t *testing.T) {
	gen := NewOrderNumberGenerator()

	for i := 0; i < 100; i++ {
		number := gen.Next()
		assert.Regexp(t, orderNumberPattern, number)
	}
}

func TestOrderNumberGenerator_TimestampComponent(t *testing.T) {
	fixed := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	gen := NewOrderNumberGenerator()
	gen.now = func() time.Time { return fixed }

	number := gen.Next()
	assert.True(t, strings.HasPrefix(number, "ORD-1749988800000-"), "number = %s", number)
}

// With only 1000 suffixes per millisecond, numbers generated within the same
// millisecond can collide; the store's unique constraint plus the creation
// retry handle that. Across distinct milliseconds they never collide, which
// is what this test pins down.
func TestOrderNumberGenerator_DistinctAcrossMilliseconds(t *testing.T) {
	gen := NewOrderNumberGenerator()
	ts := time.Now()
	gen.now = func() time.Time { return ts }

	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		ts = ts.Add(time.Millisecond)
		number := gen.Next()
		_, dup := seen[number]
		assert.False(t, dup, "duplicate order number %s", number)
		seen[number] = struct{}{}
	}
}

func TestOrderNumberGenerator_ConcurrentUse(t *testing.T) {
	gen := NewOrderNumberGenerator()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.Regexp(t, orderNumberPattern, gen.Next())
			}
		}()
	}
	wg.Wait()
}
