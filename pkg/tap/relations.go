package tap

// Cloner is implemented by types whose plain Go copy shares storage
// (slices, maps, pointers) and that can produce an independent duplicate.
type Cloner[T any] interface {
	Clone() T
}

// AsRefer converts cheaply to a shared reference of a related type
type AsRefer[P any] interface {
	AsRef() *P
}

// AsMuter converts cheaply to an exclusive reference of a related type
type AsMuter[P any] interface {
	AsMut() *P
}

// Derefer is a wrapper that stands in for an inner value it owns.
type Derefer[P any] interface {
	Deref() *P
}

// DerefMuter gives exclusive access to the inner value of a wrapper.
type DerefMuter[P any] interface {
	DerefMut() *P
}

// Borrower declares the canonical borrowed form of a type. It is kept apart
// from AsRefer: a type may implement either one without the other.
type Borrower[P any] interface {
	Borrow() *P
}

type BorrowMuter[P any] interface {
	BorrowMut() *P
}
