package favorite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	s := NewSet("b", "a", "a")
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []string{"a", "b"}, s.IDs())

	with := s.With("c")
	assert.True(t, with.Has("c"))
	assert.False(t, s.Has("c"), "исходное множество не должно меняться")

	without := with.Without("a")
	assert.False(t, without.Has("a"))
	assert.True(t, with.Has("a"))
}

func TestSet_Restore(t *testing.T) {
	tests := []struct {
		name  string
		set   Set
		wrote bool
		prev  bool
		want  bool
	}{
		{name: "undo add", set: NewSet("honey"), wrote: true, prev: false, want: false},
		{name: "undo remove", set: NewSet(), wrote: false, prev: true, want: true},
		{name: "changed by later toggle", set: NewSet(), wrote: true, prev: false, want: false},
		{name: "later toggle re-added", set: NewSet("honey"), wrote: false, prev: true, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.set.Restore("honey", tt.wrote, tt.prev).Has("honey"))
		})
	}
}
