package dlist

import (
	"fmt"
	"strings"
)

// Equal 两个链表长度相同且每个位置的值都相等时返回true
func (l *List[T]) Equal(other *List[T]) bool {
	a, b := l.head, other.head
	for a != nil && b != nil {
		if !a.Equal(b) {
			return false
		}
		a, b = a.next, b.next
	}
	return a == nil && b == nil
}

// EqualPrefix 只比较两个链表公共长度内的值，不检查长度，
// 较短链表是较长链表的前缀时也返回true
func (l *List[T]) EqualPrefix(other *List[T]) bool {
	for a, b := l.head, other.head; a != nil && b != nil; a, b = a.next, b.next {
		if !a.Equal(b) {
			return false
		}
	}
	return true
}

// Concat 返回当前链表与other拼接后的新链表，两者都不修改
func (l *List[T]) Concat(other *List[T]) *List[T] {
	out := l.Copy()
	out.Extend(other)
	return out
}

// Contains 判断链表中是否存在值等于value的节点
func (l *List[T]) Contains(value T) bool {
	for n := l.head; n != nil; n = n.next {
		if n.Value == value {
			return true
		}
	}
	return false
}

// Reversed 返回反转后的新链表，当前链表先反转再恢复，对外没有变化
func (l *List[T]) Reversed() *List[T] {
	l.Reverse()
	out := l.Copy()
	l.Reverse()
	return out
}

// String 形如 [1, 2, 3]
func (l *List[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for n := l.head; n != nil; n = n.next {
		if n != l.head {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", n.Value)
	}
	sb.WriteByte(']')
	return sb.String()
}

// GoString 用于 %#v 输出
func (l *List[T]) GoString() string {
	return "<DLinkedList=" + l.String() + ">"
}
