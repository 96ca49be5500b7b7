package sliceset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b []string
		want bool
	}{
		{name: "both nil", want: true},
		{name: "nil and empty", a: nil, b: []string{}, want: true},
		{name: "same order", a: []string{"Videos", "Reading"}, b: []string{"Videos", "Reading"}, want: true},
		{name: "reordered", a: []string{"Videos", "Reading"}, b: []string{"Reading", "Videos"}, want: true},
		{name: "different length", a: []string{"Videos"}, b: []string{"Videos", "Reading"}, want: false},
		{name: "different element", a: []string{"Videos", "Reading"}, b: []string{"Videos", "Flashcards"}, want: false},
		{name: "multiplicity", a: []string{"a", "a", "b"}, b: []string{"a", "b", "b"}, want: false},
		{name: "case sensitive", a: []string{"videos"}, b: []string{"Videos"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Equal(tt.a, tt.b))
			assert.Equal(t, tt.want, Equal(tt.b, tt.a))
		})
	}
}

func TestEqual_DoesNotMutateInputs(t *testing.T) {
	a := []string{"c", "a", "b"}
	b := []string{"b", "c", "a"}

	assert.True(t, Equal(a, b))
	assert.Equal(t, []string{"c", "a", "b"}, a)
	assert.Equal(t, []string{"b", "c", "a"}, b)
}

func TestEqual_Ints(t *testing.T) {
	assert.True(t, Equal([]int{3, 1, 2}, []int{1, 2, 3}))
	assert.False(t, Equal([]int{1, 2}, []int{1, 3}))
}
