package model

import "sync"

// SetPool recycles scratch cell sets between steps. Sets handed out by the
// pool must never be published as a generation.
type SetPool struct {
	pool sync.Pool
}

func NewSetPool() *SetPool {
	return &SetPool{
		pool: sync.Pool{
			New: func() interface{} {
				return CellSet{}
			},
		},
	}
}

// Get retrieves an empty set from the pool
func (p *SetPool) Get() CellSet {
	return p.pool.Get().(CellSet)
}

// Put returns a set to the pool, clearing its contents
func (p *SetPool) Put(s CellSet) {
	clear(s)
	p.pool.Put(s)
}
