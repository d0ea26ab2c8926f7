package dlist

import (
	"iter"
)

// All 从头到尾遍历节点，每次调用都从head重新开始。
// 遍历过程中可以删除当前节点
func (l *List[T]) All() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		for n := l.head; n != nil; {
			next := n.next
			if !yield(n) {
				return
			}
			n = next
		}
	}
}

// Values 从头到尾遍历节点的值
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.Value) {
				return
			}
		}
	}
}

// Enumerate 从头到尾遍历位置和节点
func (l *List[T]) Enumerate() iter.Seq2[int, *Node[T]] {
	return func(yield func(int, *Node[T]) bool) {
		i := 0
		for n := l.head; n != nil; n = n.next {
			if !yield(i, n) {
				return
			}
			i++
		}
	}
}

// Backward 从尾到头遍历节点
func (l *List[T]) Backward() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		for n := l.tail; n != nil; n = n.prev {
			if !yield(n) {
				return
			}
		}
	}
}

// Cursor 手动推进的正向游标
//
//	c := l.Cursor()
//	for c.Next() {
//		fmt.Println(c.Node().Value)
//	}
type Cursor[T comparable] struct {
	list    *List[T]
	cur     *Node[T]
	started bool
}

// Cursor 返回一个新的游标，第一次调用Next后指向头节点
func (l *List[T]) Cursor() *Cursor[T] {
	return &Cursor[T]{list: l}
}

// Next 前进到下一个节点，没有更多节点时返回false
func (c *Cursor[T]) Next() bool {
	if !c.started {
		c.started = true
		c.cur = c.list.head
	} else if c.cur != nil {
		c.cur = c.cur.next
	}
	return c.cur != nil
}

// Node 返回当前节点
func (c *Cursor[T]) Node() *Node[T] {
	return c.cur
}

// Reset 回到起点，下一次Next重新从头节点开始
func (c *Cursor[T]) Reset() {
	c.cur = nil
	c.started = false
}
