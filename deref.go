// Package deref describes the accessors generated by derefgen.
//
// A struct wraps one of its fields by tagging it:
//
//	//go:generate go run github.com/calumari/deref/cmd/derefgen --type=Wrapper
//
//	type Wrapper struct {
//		ID    int
//		Value string `deref:"true"`
//	}
//
// derefgen then generates
//
//	func (w *Wrapper) Deref() string     { return w.Value }
//	func (w *Wrapper) DerefMut() *string { return &w.Value }
//
// DerefMut is only generated for `deref:"true"`; `deref:"false"` yields a
// read-only wrapper. Exactly one field should carry the tag; when several do,
// the first one is used unless derefgen runs with --strict.
package deref

// Derefer is implemented by every struct derefgen processed.
type Derefer[T any] interface {
	Deref() T
}

// MutDerefer is implemented by structs whose field is tagged `deref:"true"`.
type MutDerefer[T any] interface {
	Derefer[T]
	DerefMut() *T
}

// Get returns the wrapped value of d.
func Get[T any](d Derefer[T]) T { return d.Deref() }

// Set replaces the wrapped value of d and returns the previous one.
func Set[T any](d MutDerefer[T], v T) T {
	p := d.DerefMut()
	old := *p
	*p = v
	return old
}
