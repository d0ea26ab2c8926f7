package dlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNode(t *testing.T) {
	a := New(1, 2).Head()
	b := New(0, 1).Tail()

	// 只比较值
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(a.Next()))

	assert.Equal(t, CompareNodes(a, b), 0)
	assert.Equal(t, CompareNodes(a, a.Next()), -1)
	assert.Equal(t, CompareNodes(a.Next(), a), 1)
	assert.True(t, LessNode(a, a.Next()))
	assert.False(t, LessNode(a.Next(), a))

	assert.Equal(t, a.String(), "1")
	assert.Equal(t, (&Node[string]{Value: "x"}).String(), "x")
}
