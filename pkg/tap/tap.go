package tap

// Value calls f with a copy of v and returns v.
func Value[T any](v T, f func(T)) T {
	f(v)
	return v
}

// Clone calls f with v.Clone() and returns v untouched by f.
func Clone[T Cloner[T]](v T, f func(T)) T {
	f(v.Clone())
	return v
}

func Ref[T any](v T, f func(View[T])) T {
	f(NewView(&v))
	return v
}

// Mut calls f with a pointer to v and returns v with f's changes.
func Mut[T any](v T, f func(*T)) T {
	f(&v)
	return v
}

func AsRef[T, P any, PT interface {
	*T
	AsRefer[P]
}](v T, f func(View[P])) T {
	f(NewView(PT(&v).AsRef()))
	return v
}

func AsMut[T, P any, PT interface {
	*T
	AsMuter[P]
}](v T, f func(*P)) T {
	f(PT(&v).AsMut())
	return v
}

func Deref[T, P any, PT interface {
	*T
	Derefer[P]
}](v T, f func(View[P])) T {
	f(NewView(PT(&v).Deref()))
	return v
}

func DerefMut[T, P any, PT interface {
	*T
	DerefMuter[P]
}](v T, f func(*P)) T {
	f(PT(&v).DerefMut())
	return v
}

func Borrow[T, P any, PT interface {
	*T
	Borrower[P]
}](v T, f func(View[P])) T {
	f(NewView(PT(&v).Borrow()))
	return v
}

func BorrowMut[T, P any, PT interface {
	*T
	BorrowMuter[P]
}](v T, f func(*P)) T {
	f(PT(&v).BorrowMut())
	return v
}
