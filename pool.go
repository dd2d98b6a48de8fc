package smoke

import "sync"

// BatchPool manages a pool of reusable vertex batches. Hosts rendering
// many trails per frame can draw batches from the pool instead of
// allocating per trail.
//
// Usage:
//
//	pool := smoke.NewBatchPool()
//	batch := pool.Get()
//	defer pool.Put(batch)
//	// build into batch...
type BatchPool struct {
	pool sync.Pool
}

// NewBatchPool creates a new batch pool.
func NewBatchPool() *BatchPool {
	return &BatchPool{
		pool: sync.Pool{
			New: func() any {
				return NewBatch()
			},
		},
	}
}

// Get retrieves a batch from the pool. The batch is reset and ready
// for use.
func (p *BatchPool) Get() *Batch {
	b := p.pool.Get().(*Batch)
	b.Reset()
	return b
}

// Put returns a batch to the pool for reuse.
func (p *BatchPool) Put(b *Batch) {
	if b == nil {
		return
	}
	p.pool.Put(b)
}

// Warmup pre-allocates batches to avoid allocation during critical
// paths. Call during initialization if allocation-free frames are
// required.
func (p *BatchPool) Warmup(count int) {
	batches := make([]*Batch, count)
	for i := 0; i < count; i++ {
		batches[i] = p.Get()
	}
	for i := 0; i < count; i++ {
		p.Put(batches[i])
	}
}

// DefaultBatchPool is a global batch pool for convenience.
// For performance-critical code, consider creating dedicated pools.
var DefaultBatchPool = NewBatchPool()

// GetBatch retrieves a batch from the default pool.
func GetBatch() *Batch {
	return DefaultBatchPool.Get()
}

// PutBatch returns a batch to the default pool.
func PutBatch(b *Batch) {
	DefaultBatchPool.Put(b)
}
