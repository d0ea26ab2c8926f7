package dlist

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqual(t *testing.T) {
	assert.True(t, New(1, 2, 3).Equal(New(1, 2, 3)))
	assert.True(t, New[int]().Equal(New[int]()))
	assert.False(t, New(1, 2, 3).Equal(New(1, 2, 4)))

	// 长度不同一定不相等
	assert.False(t, New(1, 2, 3).Equal(New(1, 2)))
	assert.False(t, New(1, 2).Equal(New(1, 2, 3)))
	assert.False(t, New(1).Equal(New[int]()))
}

func TestEqualPrefix(t *testing.T) {
	// 只比较公共长度，较短链表是前缀时视为相等
	assert.True(t, New(1, 2, 3).EqualPrefix(New(1, 2)))
	assert.True(t, New(1, 2).EqualPrefix(New(1, 2, 3)))
	assert.True(t, New(1, 2, 3).EqualPrefix(New[int]()))
	assert.True(t, New(1, 2, 3).EqualPrefix(New(1, 2, 3)))
	assert.False(t, New(1, 2, 3).EqualPrefix(New(1, 5)))
}

func TestConcat(t *testing.T) {
	a := New(1, 2, 3)
	b := New(4, 5)
	c := a.Concat(b)

	assert.Equal(t, checkLinks(t, c), []int{1, 2, 3, 4, 5})
	assert.Equal(t, c.Len(), a.Len()+b.Len())
	for i := 0; i < a.Len(); i++ {
		x, _ := c.Get(i)
		y, _ := a.Get(i)
		assert.True(t, x.Equal(y))
	}
	for j := 0; j < b.Len(); j++ {
		x, _ := c.Get(a.Len() + j)
		y, _ := b.Get(j)
		assert.True(t, x.Equal(y))
	}

	assert.Equal(t, checkLinks(t, a), []int{1, 2, 3})
	assert.Equal(t, checkLinks(t, b), []int{4, 5})

	assert.Equal(t, a.Concat(a).ToSlice(), []int{1, 2, 3, 1, 2, 3})
	assert.Equal(t, New[int]().Concat(New[int]()).Len(), 0)
}

func TestContains(t *testing.T) {
	l := New("a", "b", "c")
	assert.True(t, l.Contains("a"))
	assert.True(t, l.Contains("c"))
	assert.False(t, l.Contains("d"))
	assert.False(t, New[string]().Contains("a"))
}

func TestReversed(t *testing.T) {
	l := New(1, 2, 3)
	head, tail := l.Head(), l.Tail()

	r := l.Reversed()
	assert.Equal(t, checkLinks(t, r), []int{3, 2, 1})
	assert.Equal(t, checkLinks(t, l), []int{1, 2, 3})
	assert.Equal(t, l.Head(), head)
	assert.Equal(t, l.Tail(), tail)

	assert.Equal(t, New[int]().Reversed().Len(), 0)
}

func TestString(t *testing.T) {
	assert.Equal(t, New(1, 2, 3).String(), "[1, 2, 3]")
	assert.Equal(t, New(1).String(), "[1]")
	assert.Equal(t, New("a", "b").String(), "[a, b]")
	assert.Equal(t, fmt.Sprintf("%v", New(1, 2)), "[1, 2]")
	assert.Equal(t, fmt.Sprintf("%#v", New(1, 2)), "<DLinkedList=[1, 2]>")
	assert.Equal(t, New[int]().GoString(), "<DLinkedList=[]>")
}
