package dlist

/*
双向链表节点

节点只保存值和前后两个指针：
- next 是链表的主链方向，从 head 出发沿 next 可以到达全部节点
- prev 只用于反向遍历和删除时修复邻居

对称性：相邻节点 A、B 满足 A.next == B 当且仅当 B.prev == A。
指针只由 List 修改，外部只能读取 Value 和通过 Next/Prev 遍历。
*/

import (
	"cmp"
	"fmt"
)

// Node 双向链表节点
type Node[T comparable] struct {
	Value T        // 节点值
	next  *Node[T] // 后一个节点
	prev  *Node[T] // 前一个节点
}

// Next 返回下一个节点，到达尾部返回nil
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// Prev 返回前一个节点，到达头部返回nil
func (n *Node[T]) Prev() *Node[T] {
	return n.prev
}

// String 返回节点值的字符串形式
func (n *Node[T]) String() string {
	return fmt.Sprint(n.Value)
}

// unlink 断开节点的前后指针
func (n *Node[T]) unlink() {
	n.next = nil
	n.prev = nil
}

// Equal 比较两个节点的值，指针不参与比较
func (n *Node[T]) Equal(other *Node[T]) bool {
	return n.Value == other.Value
}

// CompareNodes 按值比较两个节点，a<b 返回-1，相等返回0，a>b 返回1
func CompareNodes[T cmp.Ordered](a, b *Node[T]) int {
	return cmp.Compare(a.Value, b.Value)
}

// LessNode 判断节点a的值是否小于节点b
func LessNode[T cmp.Ordered](a, b *Node[T]) bool {
	return cmp.Less(a.Value, b.Value)
}
