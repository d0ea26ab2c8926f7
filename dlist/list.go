package dlist

/*
泛型双向链表

结构：
- head 指向第一个节点，tail 指向最后一个节点，空链表两者都为nil
- 头节点的 prev 为nil，尾节点的 next 为nil
- 沿 next 从 head 走到 tail，沿 prev 从 tail 走回 head

与标准库 container/list 不同，这里没有哨兵节点，也不缓存长度：
Len 每次都完整遍历一遍链表。按位置访问的操作都是O(n)。

支持的操作：
- 追加、头插、按位置插入
- 按值删除（可删除全部匹配）、按位置删除
- 原地反转、生成反转副本
- 按位置读写（支持负数索引，-1表示最后一个元素）
- 切片读、写、删除（支持任意步长和方向）
- 拼接、比较、包含判断、复制

所有修改指针的代码都在本包内，外部只能通过这些操作改变链表结构。
*/

import (
	"iter"
)

// List 双向链表，零值是一个可以直接使用的空链表
type List[T comparable] struct {
	head *Node[T] // 头节点
	tail *Node[T] // 尾节点
}

// New 按参数顺序创建链表
func New[T comparable](values ...T) *List[T] {
	l := &List[T]{}
	for _, v := range values {
		l.Append(v)
	}
	return l
}

// FromSeq 用序列中的值创建链表
func FromSeq[T comparable](seq iter.Seq[T]) *List[T] {
	l := &List[T]{}
	for v := range seq {
		l.Append(v)
	}
	return l
}

// Head 返回头节点，空链表返回nil
func (l *List[T]) Head() *Node[T] {
	return l.head
}

// Tail 返回尾节点，空链表返回nil
func (l *List[T]) Tail() *Node[T] {
	return l.tail
}

// 把节点n链接到at之后，at为nil时n成为新的头节点
func (l *List[T]) insertAfter(n, at *Node[T]) {
	if at == nil {
		n.prev = nil
		n.next = l.head
		if l.head != nil {
			l.head.prev = n
		} else {
			l.tail = n
		}
		l.head = n
		return
	}

	n.prev = at
	n.next = at.next
	if at.next != nil {
		at.next.prev = n
	} else {
		l.tail = n
	}
	at.next = n
}

// 把节点n从链表中摘除，同时修复头尾指针
func (l *List[T]) remove(n *Node[T]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}

	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}

	n.unlink()
}

// 返回位置index上的节点，index可以为负数
func (l *List[T]) nodeAt(index int) (*Node[T], error) {
	length := l.Len()
	pos, ok := resolve(index, length)
	if !ok {
		return nil, outOfRange(index, length)
	}

	n := l.head
	for ; pos > 0; pos-- {
		n = n.next
	}
	return n, nil
}

// 按顺序取出全部节点
func (l *List[T]) nodes() []*Node[T] {
	var out []*Node[T]
	for n := l.head; n != nil; n = n.next {
		out = append(out, n)
	}
	return out
}

// Append 在尾部追加一个值
func (l *List[T]) Append(value T) {
	l.insertAfter(&Node[T]{Value: value}, l.tail)
}

// Prepend 在头部插入一个值
func (l *List[T]) Prepend(value T) {
	l.insertAfter(&Node[T]{Value: value}, nil)
}

// Remove 删除第一个值等于value的节点，repeated为true时删除所有匹配的节点。
// 链表为空或没有匹配时什么也不做
func (l *List[T]) Remove(value T, repeated bool) {
	removed := 0
	for n := l.head; n != nil; {
		next := n.next
		if n.Value == value {
			l.remove(n)
			removed++
			if !repeated {
				return
			}
		}
		n = next
	}

	if removed == 0 {
		GetSugar().Debugf("Remove: %v not in list", value)
	}
}

// Delete 删除位置index上的节点，index可以为负数
func (l *List[T]) Delete(index int) error {
	n, err := l.nodeAt(index)
	if err != nil {
		return err
	}
	l.remove(n)
	return nil
}

// Insert 插入value，使其位于位置index，原来index及之后的元素依次后移。
// index为0时插入到头部，index等于Len()时追加到尾部
func (l *List[T]) Insert(value T, index int) error {
	length := l.Len()
	if index < 0 || index > length {
		return outOfRange(index, length)
	}

	n := &Node[T]{Value: value}
	if index == 0 {
		l.insertAfter(n, nil)
		return nil
	}

	// 找到 index-1 位置上的前驱节点
	prev := l.head
	for i := 1; i < index; i++ {
		prev = prev.next
	}
	l.insertAfter(n, prev)
	return nil
}

// Reverse 原地反转链表，只交换每个节点的前后指针，不分配新节点
func (l *List[T]) Reverse() {
	// 交换之后 prev 指向的是原来的下一个节点
	for n := l.head; n != nil; n = n.prev {
		n.next, n.prev = n.prev, n.next
	}
	l.head, l.tail = l.tail, l.head
}

// Index 返回第一个值等于value的节点位置
func (l *List[T]) Index(value T) (int, error) {
	pos := 0
	for n := l.head; n != nil; n = n.next {
		if n.Value == value {
			return pos, nil
		}
		pos++
	}
	return 0, notFound(value)
}

// Len 遍历链表计算长度
func (l *List[T]) Len() int {
	length := 0
	for n := l.head; n != nil; n = n.next {
		length++
	}
	return length
}

// Get 返回位置index上的节点，-1表示最后一个节点
func (l *List[T]) Get(index int) (*Node[T], error) {
	return l.nodeAt(index)
}

// Set 修改位置index上节点的值
func (l *List[T]) Set(index int, value T) error {
	n, err := l.nodeAt(index)
	if err != nil {
		return err
	}
	n.Value = value
	return nil
}

// Clear 清空链表
func (l *List[T]) Clear() {
	for l.head != nil {
		n := l.head
		l.head = n.next
		n.unlink() // 避免外部持有的节点继续访问旧链
	}
	l.tail = nil
}

// Extend 把other的所有值按顺序追加到当前链表，other不变。
// other可以是当前链表本身，此时追加一份原有内容的拷贝
func (l *List[T]) Extend(other *List[T]) {
	last := other.tail
	for n := other.head; n != nil; n = n.next {
		l.Append(n.Value)
		if n == last {
			break
		}
	}
}

// Copy 返回一个新链表，节点全部重新分配
func (l *List[T]) Copy() *List[T] {
	out := &List[T]{}
	out.Extend(l)
	return out
}

// ToSlice 按顺序返回所有值
func (l *List[T]) ToSlice() []T {
	var out []T
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.Value)
	}
	return out
}
