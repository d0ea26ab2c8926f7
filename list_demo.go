package main

/*
双向链表演示

每个演示都用配置里的初始数据创建一个 dlist.List[int]，
执行一组操作，并在每一步之后打印链表状态。
*/

import (
	"slices"

	"github.com/sebastianchess/Doubly-Linked-List/dlist"
)

// BasicDemo 追加、插入、删除、清空
func BasicDemo(seed []int) {
	l := dlist.New(seed...)
	printListStatus(l, "初始链表")

	l.Append(100)
	printListStatus(l, "Append(100)")

	if err := l.Insert(-1, 0); err != nil {
		dlist.GetSugar().Error(err)
	}
	printListStatus(l, "Insert(-1, 0)")

	if err := l.Insert(9, 2); err != nil {
		dlist.GetSugar().Error(err)
	}
	printListStatus(l, "Insert(9, 2)")

	l.Remove(9, false)
	printListStatus(l, "Remove(9)")

	if err := l.Delete(-1); err != nil {
		dlist.GetSugar().Error(err)
	}
	printListStatus(l, "Delete(-1)")

	// 越界插入会返回错误
	if err := l.Insert(7, l.Len()+1); err != nil {
		dlist.GetSugar().Infof("Insert 越界: %v", err)
	}

	l.Clear()
	printListStatus(l, "Clear()")
}

// IndexDemo 正负索引访问和查找
func IndexDemo(seed []int) {
	sugar := dlist.GetSugar()
	l := dlist.New(seed...)
	printListStatus(l, "初始链表")

	for _, i := range []int{0, -1, l.Len(), -l.Len() - 1} {
		if node, err := l.Get(i); err != nil {
			sugar.Infof("Get(%d): %v", i, err)
		} else {
			sugar.Infof("Get(%d) = %v", i, node)
		}
	}

	if l.Len() > 0 {
		last := l.Tail().Value
		pos, _ := l.Index(last)
		sugar.Infof("Index(%d) = %d", last, pos)

		if err := l.Set(-1, last*10); err != nil {
			sugar.Error(err)
		}
		printListStatus(l, "Set(-1, last*10)")
	}

	if _, err := l.Index(-12345); err != nil {
		sugar.Infof("Index(-12345): %v", err)
	}
}

// SliceDemo 切片读、写、删除
func SliceDemo(seed []int) {
	sugar := dlist.GetSugar()
	l := dlist.New(seed...)
	printListStatus(l, "初始链表")

	ranges := []dlist.Slice{
		dlist.Slice{}.By(-1),
		dlist.Span(1, 3),
		dlist.Slice{}.By(2),
		dlist.Slice{}.From(-2),
	}
	for _, s := range ranges {
		sub, err := l.GetSlice(s)
		if err != nil {
			sugar.Error(err)
			continue
		}
		sugar.Infof("l%v = %v", s, sub)
	}

	if err := l.SetSlice(dlist.Slice{}.By(2), dlist.New(-1, -2, -3).Values()); err != nil {
		sugar.Error(err)
	}
	printListStatus(l, "l[::2] = [-1, -2, -3]")

	if err := l.DeleteSlice(dlist.Span(1, 3)); err != nil {
		sugar.Error(err)
	}
	printListStatus(l, "del l[1:3]")

	if _, err := l.GetSlice(dlist.Slice{}.By(0)); err != nil {
		sugar.Infof("l[::0]: %v", err)
	}
}

// MutateDemo 反转与复制
func MutateDemo(seed []int) {
	l := dlist.New(seed...)
	printListStatus(l, "初始链表")

	r := l.Reversed()
	printListStatus(r, "Reversed()")
	printListStatus(l, "Reversed()之后的原链表")

	l.Reverse()
	printListStatus(l, "Reverse()")

	c := l.Copy()
	c.Append(42)
	printListStatus(c, "Copy()后追加42")
	printListStatus(l, "原链表不受影响")
}

// SequenceDemo 拼接、比较、包含
func SequenceDemo(seed []int) {
	sugar := dlist.GetSugar()
	a := dlist.New(seed...)
	b := dlist.FromSeq(slices.Values([]int{7, 8}))

	printListStatus(a.Concat(b), "a + b")

	a.Extend(b)
	printListStatus(a, "a += b")

	prefix, _ := a.GetSlice(dlist.Span(0, 2))
	sugar.Infof("%v == %v: %t", a, prefix, a.Equal(prefix))
	sugar.Infof("%v 前缀比较 %v: %t", a, prefix, a.EqualPrefix(prefix))
	sugar.Infof("%v 包含 8: %t", a, a.Contains(8))
	sugar.Infof("%#v", a)
}

// 辅助函数：打印链表状态
func printListStatus(l *dlist.List[int], title string) {
	sugar := dlist.GetSugar()
	sugar.Infof("=== %s === %v len=%d", title, l, l.Len())

	var backward []int
	for node := range l.Backward() {
		backward = append(backward, node.Value)
	}
	sugar.Debugf("反向遍历: %v", backward)
}
