package chain

import (
	"context"

	"github.com/google/uuid"

	"github.com/ib-77/tap/pkg/tap"
	"github.com/ib-77/tap/pkg/tap/trace"
)

// Chain wraps a value with context to enable fluent tapping
type Chain[T any] struct {
	ctx   context.Context
	id    uuid.UUID
	value T
}

// Start creates a new chain with a fresh id
func Start[T any](ctx context.Context, value T) Chain[T] {
	return Chain[T]{
		ctx:   ctx,
		id:    uuid.New(),
		value: value,
	}
}

func (c Chain[T]) Value() T {
	return c.value
}

func (c Chain[T]) Id() uuid.UUID {
	return c.id
}

func (c Chain[T]) Context() context.Context {
	return c.ctx
}

func (c Chain[T]) with(value T) Chain[T] {
	return Chain[T]{ctx: c.ctx, id: c.id, value: value}
}

// Tap passes a copy of the value to f
func (c Chain[T]) Tap(f func(T)) Chain[T] {
	return c.with(tap.Value(c.value, f))
}

func (c Chain[T]) TapRef(f func(tap.View[T])) Chain[T] {
	return c.with(tap.Ref(c.value, f))
}

// TapMut lets f change the value in place
func (c Chain[T]) TapMut(f func(*T)) Chain[T] {
	return c.with(tap.Mut(c.value, f))
}

// Trace logs the value at debug level with the context logger
func (c Chain[T]) Trace(msg string, args ...any) Chain[T] {
	logger := trace.LoggerFrom(c.ctx, nil)
	return c.Tap(trace.Value[T](logger, trace.Config{
		Level:   trace.LogLevelDebug,
		Message: msg,
		Args:    append([]any{"chain_id", c.id.String()}, args...),
	}))
}

func TapClone[T tap.Cloner[T]](c Chain[T], f func(T)) Chain[T] {
	return c.with(tap.Clone(c.value, f))
}

func TapAsRef[T, P any, PT interface {
	*T
	tap.AsRefer[P]
}](c Chain[T], f func(tap.View[P])) Chain[T] {
	return c.with(tap.AsRef[T, P, PT](c.value, f))
}

func TapAsMut[T, P any, PT interface {
	*T
	tap.AsMuter[P]
}](c Chain[T], f func(*P)) Chain[T] {
	return c.with(tap.AsMut[T, P, PT](c.value, f))
}

func TapDeref[T, P any, PT interface {
	*T
	tap.Derefer[P]
}](c Chain[T], f func(tap.View[P])) Chain[T] {
	return c.with(tap.Deref[T, P, PT](c.value, f))
}

func TapDerefMut[T, P any, PT interface {
	*T
	tap.DerefMuter[P]
}](c Chain[T], f func(*P)) Chain[T] {
	return c.with(tap.DerefMut[T, P, PT](c.value, f))
}

func TapBorrow[T, P any, PT interface {
	*T
	tap.Borrower[P]
}](c Chain[T], f func(tap.View[P])) Chain[T] {
	return c.with(tap.Borrow[T, P, PT](c.value, f))
}

func TapBorrowMut[T, P any, PT interface {
	*T
	tap.BorrowMuter[P]
}](c Chain[T], f func(*P)) Chain[T] {
	return c.with(tap.BorrowMut[T, P, PT](c.value, f))
}

// Pipe continues the chain with f(value)
func Pipe[T, U any](c Chain[T], f func(T) U) Chain[U] {
	return Chain[U]{
		ctx:   c.ctx,
		id:    c.id,
		value: f(c.value),
	}
}

// PipeRef continues the chain with f applied to a view of the value
func PipeRef[T, U any](c Chain[T], f func(tap.View[T]) U) Chain[U] {
	return Chain[U]{
		ctx:   c.ctx,
		id:    c.id,
		value: f(tap.NewView(&c.value)),
	}
}
