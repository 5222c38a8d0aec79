package meta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct {
	X, Y int
}

func (p point) Sum() int { return p.X + p.Y }

func TestWrappers(t *testing.T) {
	t.Run("named exposes inner and name", func(t *testing.T) {
		n := NewNamed(point{X: 1, Y: 2}, "origin")
		require.Equal(t, "origin", n.Name())
		require.Equal(t, 3, n.Inner().Sum())
	})

	t.Run("marked exposes inner and marker", func(t *testing.T) {
		m := NewMarked(point{X: 3}, "deref")
		require.Equal(t, "deref", m.Marker())
		require.Equal(t, 3, m.Inner().X)
	})

	t.Run("named marked exposes all facts", func(t *testing.T) {
		nm := NewNamedMarked(point{Y: 4}, true, "p")
		require.Equal(t, "p", nm.Name())
		require.True(t, nm.Marker())
		require.Equal(t, 4, nm.Inner().Y)
	})

	t.Run("wrappers satisfy capability interfaces", func(t *testing.T) {
		var _ Wrapper[point] = NewNamed(point{}, "a")
		var _ Wrapper[point] = NewMarked(point{}, 1)
		var _ Namer[string] = NewNamedMarked(point{}, 1, "a")
		var _ Markerer[int] = NewNamedMarked(point{}, 1, "a")
	})
}

func TestTransparency(t *testing.T) {
	t.Run("mutation through ptr changes the stored value", func(t *testing.T) {
		nm := NewNamedMarked(point{X: 1}, "m", "n")
		nm.Ptr().X = 10
		require.Equal(t, 10, nm.Inner().X)

		n := NewNamed(point{}, "n")
		n.Ptr().Y = 5
		require.Equal(t, 5, n.Inner().Y)

		m := NewMarked(point{}, "m")
		m.Ptr().X = 7
		require.Equal(t, 7, m.Inner().X)
	})

	t.Run("wrapped pointer shares identity with caller", func(t *testing.T) {
		p := &point{X: 1}
		nm := NewNamedMarked(p, "m", "n")
		nm.Inner().X = 42
		require.Equal(t, 42, p.X)
		require.Same(t, p, nm.Inner())

		p.Y = 9
		require.Equal(t, 9, nm.Inner().Y)
	})
}

func TestConversions(t *testing.T) {
	p := &point{X: 1, Y: 2}

	t.Run("flatten order does not matter", func(t *testing.T) {
		a := FlattenNamed(NewNamed(NewMarked(p, "deref"), "Value"))
		b := FlattenMarked(NewMarked(NewNamed(p, "Value"), "deref"))
		require.Equal(t, a, b)
		require.Same(t, p, a.Inner())
		require.Equal(t, "Value", a.Name())
		require.Equal(t, "deref", a.Marker())
	})

	t.Run("adding the missing fact matches direct construction", func(t *testing.T) {
		direct := NewNamedMarked(p, "deref", "Value")
		require.Equal(t, direct, FromNamed(NewNamed(p, "Value"), "deref"))
		require.Equal(t, direct, FromMarked(NewMarked(p, "deref"), "Value"))
	})

	t.Run("splitting keeps the facts", func(t *testing.T) {
		nm := NewNamedMarked(p, "deref", "Value")
		named := nm.Named()
		marked := nm.Marked()
		assert.Equal(t, "Value", named.Name())
		assert.Equal(t, "deref", marked.Marker())
		assert.Same(t, p, named.Inner())
		assert.Same(t, p, marked.Inner())
		require.Equal(t, nm, FromNamed(named, marked.Marker()))
	})
}
