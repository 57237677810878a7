package pool

import "sync"

// FlagPool implements a pool of boolean match-flag slices for efficient
// memory reuse across repeated metric computations.
type FlagPool struct {
	pool sync.Pool
}

// NewFlagPool creates a new flag buffer pool.
func NewFlagPool() *FlagPool {
	return &FlagPool{
		pool: sync.Pool{
			New: func() interface{} {
				buffer := make([]bool, 0, 64)
				return &buffer
			},
		},
	}
}

// Get retrieves a zeroed flag buffer of length n from the pool, growing it
// if the pooled capacity is insufficient.
func (fp *FlagPool) Get(n int) *[]bool {
	buffer := fp.pool.Get().(*[]bool)
	if cap(*buffer) < n {
		fp.pool.Put(buffer)
		grown := make([]bool, n)
		return &grown
	}
	*buffer = (*buffer)[:n]
	for i := range *buffer {
		(*buffer)[i] = false
	}
	return buffer
}

// Put returns a flag buffer to the pool for reuse.
func (fp *FlagPool) Put(buffer *[]bool) {
	*buffer = (*buffer)[:0]
	fp.pool.Put(buffer)
}

// RunePool implements a pool of rune slices used when converting strings to
// indexable character sequences.
type RunePool struct {
	pool sync.Pool
}

// NewRunePool creates a new pool of rune slices.
func NewRunePool() *RunePool {
	return &RunePool{
		pool: sync.Pool{
			New: func() interface{} {
				buffer := make([]rune, 0, 64)
				return &buffer
			},
		},
	}
}

// Get retrieves a rune buffer from the pool.
func (rp *RunePool) Get() *[]rune {
	return rp.pool.Get().(*[]rune)
}

// Put returns a rune buffer to the pool.
func (rp *RunePool) Put(buffer *[]rune) {
	*buffer = (*buffer)[:0]
	rp.pool.Put(buffer)
}
