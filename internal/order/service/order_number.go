package service

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// OrderNumberGenerator produces human-readable order numbers of the form
// ORD-<unix-millis>-<3-digit-random>. Uniqueness is probabilistic; the
// order_number unique constraint in the store is the last line of defense,
// and callers retry on the resulting DuplicateError.
type OrderNumberGenerator struct {
	mu  sync.Mutex
	rnd *rand.Rand
	now func() time.Time
}

func NewOrderNumberGenerator() *OrderNumberGenerator {
	return &OrderNumberGenerator{
		rnd: rand.New(rand.NewSource(time.Now().UnixNano())),
		now: time.Now,
	}
}

func (g *OrderNumberGenerator) Next() string {
	g.mu.Lock()
	suffix := g.rnd.Intn(1000)
	g.mu.Unlock()

	return fmt.Sprintf("ORD-%d-%03d", g.now().UnixMilli(), suffix)
}
