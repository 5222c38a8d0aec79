package meta

// Wrapper is implemented by every wrapper in this package.
type Wrapper[T any] interface {
	Inner() T
}

// Namer exposes a name fact.
type Namer[N any] interface {
	Name() N
}

// Markerer exposes a marker fact.
type Markerer[M any] interface {
	Marker() M
}

// Named attaches a name to a value.
type Named[T, N any] struct {
	inner T
	name  N
}

// NewNamed wraps inner with name.
func NewNamed[T, N any](inner T, name N) Named[T, N] {
	return Named[T, N]{inner: inner, name: name}
}

// Inner returns the wrapped value.
func (n Named[T, N]) Inner() T { return n.inner }

// Ptr returns the address of the wrapped value.
func (n *Named[T, N]) Ptr() *T { return &n.inner }

// Name returns the attached name.
func (n Named[T, N]) Name() N { return n.name }

// Marked attaches the matched marker to a value.
type Marked[T, M any] struct {
	inner  T
	marker M
}

// NewMarked wraps inner with marker.
func NewMarked[T, M any](inner T, marker M) Marked[T, M] {
	return Marked[T, M]{inner: inner, marker: marker}
}

// Inner returns the wrapped value.
func (m Marked[T, M]) Inner() T { return m.inner }

// Ptr returns the address of the wrapped value.
func (m *Marked[T, M]) Ptr() *T { return &m.inner }

// Marker returns the attached marker.
func (m Marked[T, M]) Marker() M { return m.marker }

// NamedMarked carries both a marker and a name for a value.
type NamedMarked[T, M, N any] struct {
	inner  T
	marker M
	name   N
}

// NewNamedMarked wraps inner with marker and name.
func NewNamedMarked[T, M, N any](inner T, marker M, name N) NamedMarked[T, M, N] {
	return NamedMarked[T, M, N]{inner: inner, marker: marker, name: name}
}

// Inner returns the wrapped value.
func (nm NamedMarked[T, M, N]) Inner() T { return nm.inner }

// Ptr returns the address of the wrapped value.
func (nm *NamedMarked[T, M, N]) Ptr() *T { return &nm.inner }

// Name returns the attached name.
func (nm NamedMarked[T, M, N]) Name() N { return nm.name }

// Marker returns the attached marker.
func (nm NamedMarked[T, M, N]) Marker() M { return nm.marker }

// Named drops the marker fact.
func (nm NamedMarked[T, M, N]) Named() Named[T, N] {
	return NewNamed(nm.inner, nm.name)
}

// Marked drops the name fact.
func (nm NamedMarked[T, M, N]) Marked() Marked[T, M] {
	return NewMarked(nm.inner, nm.marker)
}

// FromNamed adds a marker to a named value.
func FromNamed[T, M, N any](n Named[T, N], marker M) NamedMarked[T, M, N] {
	return NewNamedMarked(n.inner, marker, n.name)
}

// FromMarked adds a name to a marked value.
func FromMarked[T, M, N any](m Marked[T, M], name N) NamedMarked[T, M, N] {
	return NewNamedMarked(m.inner, m.marker, name)
}

// FlattenNamed collapses a name wrapped around a marked value.
func FlattenNamed[T, M, N any](n Named[Marked[T, M], N]) NamedMarked[T, M, N] {
	return NewNamedMarked(n.inner.inner, n.inner.marker, n.name)
}

// FlattenMarked collapses a marker wrapped around a named value.
func FlattenMarked[T, M, N any](m Marked[Named[T, N], M]) NamedMarked[T, M, N] {
	return NewNamedMarked(m.inner.inner, m.marker, m.inner.name)
}
