package tap

import "fmt"

// View is a read-only handle to a value owned by someone else.
type View[T any] struct {
	p *T
}

func NewView[T any](p *T) View[T] {
	return View[T]{p: p}
}

// Get returns the value currently behind the view.
func (v View[T]) Get() T {
	return *v.p
}

func (v View[T]) IsZero() bool {
	return v.p == nil
}

func (v View[T]) String() string {
	if v.p == nil {
		return "<nil>"
	}
	return fmt.Sprint(*v.p)
}
