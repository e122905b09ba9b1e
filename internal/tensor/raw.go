package tensor

import "sync/atomic"

// Storage is read access to a flat element buffer.
type Storage[T Numeric] interface {
	Len() int
	At(i int) T
}

// MutableStorage extends Storage with write access.
type MutableStorage[T Numeric] interface {
	Storage[T]
	Set(i int, v T)
	Ptr(i int) *T
}

// buffer is the owned backing store of a Tensor.
// The leased flag guards exclusive mutable access: at most one ViewMut
// family may be derived from the buffer at a time.
type buffer[T Numeric] struct {
	data   []T
	leased atomic.Bool
}

func (b *buffer[T]) Len() int { return len(b.data) }

func (b *buffer[T]) At(i int) T { return b.data[i] }

// acquire takes the buffer's lease. It fails while another lease is held.
func (b *buffer[T]) acquire() (*lease, error) {
	if !b.leased.CompareAndSwap(false, true) {
		return nil, newBorrowError("tensor already has an active mutable view")
	}
	return newLease(func() { b.leased.Store(false) }), nil
}

// shared is a read-only borrow of a buffer.
type shared[T Numeric] []T

func (s shared[T]) Len() int { return len(s) }

func (s shared[T]) At(i int) T { return s[i] }

// exclusive is a mutable borrow of a buffer.
type exclusive[T Numeric] []T

func (s exclusive[T]) Len() int { return len(s) }

func (s exclusive[T]) At(i int) T { return s[i] }

func (s exclusive[T]) Set(i int, v T) { s[i] = v }

func (s exclusive[T]) Ptr(i int) *T { return &s[i] }

// lease is held by a ViewMut and every view reborrowed from it.
// Releasing it once hands the buffer back to its owner.
type lease struct {
	free     func()
	released atomic.Bool
}

func newLease(free func()) *lease {
	return &lease{free: free}
}

func (l *lease) release() {
	if l.released.CompareAndSwap(false, true) && l.free != nil {
		l.free()
	}
}

func (l *lease) check() error {
	if l.released.Load() {
		return newBorrowError("mutable view used after release")
	}
	return nil
}
