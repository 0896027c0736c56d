// Package tap lets a value be inspected or mutated in the middle of an
// expression without breaking it. Each function takes the value, hands a
// view of it to a callback exactly once and returns the value.
//
// How the callback sees the value depends on the function:
// - Value/Clone: a copy (Clone for types with a deep Clone method)
// - Ref: a read-only View of the value
// - Mut: a pointer to the value; changes show up in the result
// - AsRef/AsMut: a reference conversion declared with AsRefer/AsMuter
// - Deref/DerefMut: the inner value of a wrapper (Derefer/DerefMuter)
// - Borrow/BorrowMut: a canonical borrow (Borrower/BorrowMuter)
//
// Shared views are View[P] and have no setter, so a callback given one
// cannot write through it. Exclusive views are *P and alias the receiver.
package tap
