package dlist

/*
索引与切片

索引：合法范围是 -len <= index < len，负数从尾部开始计数，-1 是最后一个元素。

切片：Slice 由可省略的 start、stop、step 组成，计算方式与 Python 的 slice.indices 相同：
- step 省略时为1，step 为0是错误
- step > 0：start 默认0，stop 默认len
- step < 0：start 默认len-1，stop 默认-1，两者都省略时就是从尾到头完整遍历
- 给出的负数边界先加上len，再截断到合法区间

切片读、写、删除都先给链表做一次节点快照，再按位置操作。
某个位置不存在时跳过该位置，不向调用方返回错误。
*/

import (
	"iter"
	"strconv"
)

// resolve 把index转换成 [0, length) 内的位置
func resolve(index, length int) (int, bool) {
	if index < -length || index >= length {
		return 0, false
	}
	return ((index % length) + length) % length, true
}

type bound struct {
	value int
	set   bool
}

// Slice 切片范围，零值表示 [::]
type Slice struct {
	start bound
	stop  bound
	step  bound
}

// Span 创建 [start:stop] 切片
func Span(start, stop int) Slice {
	return Slice{
		start: bound{value: start, set: true},
		stop:  bound{value: stop, set: true},
	}
}

// From 设置起始位置
func (s Slice) From(start int) Slice {
	s.start = bound{value: start, set: true}
	return s
}

// To 设置结束位置（不包含）
func (s Slice) To(stop int) Slice {
	s.stop = bound{value: stop, set: true}
	return s
}

// By 设置步长
func (s Slice) By(step int) Slice {
	s.step = bound{value: step, set: true}
	return s
}

func (s Slice) String() string {
	format := func(b bound) string {
		if !b.set {
			return ""
		}
		return strconv.Itoa(b.value)
	}
	return "[" + format(s.start) + ":" + format(s.stop) + ":" + format(s.step) + "]"
}

// Indices 计算长度为length的序列上实际的 start、stop、step
func (s Slice) Indices(length int) (start, stop, step int, err error) {
	step = 1
	if s.step.set {
		step = s.step.value
	}
	if step == 0 {
		return 0, 0, 0, ErrZeroStep
	}

	lower, upper := 0, length
	start, stop = 0, length
	if step < 0 {
		lower, upper = -1, length-1
		start, stop = length-1, -1
	}

	adjust := func(b bound, def int) int {
		if !b.set {
			return def
		}
		v := b.value
		if v < 0 {
			v += length
			if v < lower {
				v = lower
			}
		} else if v > upper {
			v = upper
		}
		return v
	}

	start = adjust(s.start, start)
	stop = adjust(s.stop, stop)
	return start, stop, step, nil
}

// Positions 返回切片在长度为length的序列上依次覆盖的位置
func (s Slice) Positions(length int) ([]int, error) {
	start, stop, step, err := s.Indices(length)
	if err != nil {
		return nil, err
	}

	var out []int
	if step > 0 {
		for i := start; i < stop; i += step {
			out = append(out, i)
		}
	} else {
		for i := start; i > stop; i += step {
			out = append(out, i)
		}
	}
	return out, nil
}

// 位置pos在快照中不存在时记录日志并返回false
func checkPos(op string, s Slice, pos, length int) bool {
	if pos >= 0 && pos < length {
		return true
	}
	GetSugar().Debugf("%s%v: skip %v", op, s, outOfRange(pos, length))
	return false
}

// GetSlice 返回切片范围内的值组成的新链表
func (l *List[T]) GetSlice(s Slice) (*List[T], error) {
	nodes := l.nodes()
	positions, err := s.Positions(len(nodes))
	if err != nil {
		return nil, err
	}

	out := &List[T]{}
	for _, pos := range positions {
		if checkPos("GetSlice", s, pos, len(nodes)) {
			out.Append(nodes[pos].Value)
		}
	}
	return out, nil
}

// SetSlice 把src中的值依次写到切片覆盖的位置上，位置或src任意一方用完即停止
func (l *List[T]) SetSlice(s Slice, src iter.Seq[T]) error {
	nodes := l.nodes()
	positions, err := s.Positions(len(nodes))
	if err != nil {
		return err
	}

	i := 0
	for v := range src {
		if i >= len(positions) {
			break
		}
		pos := positions[i]
		i++
		if checkPos("SetSlice", s, pos, len(nodes)) {
			nodes[pos].Value = v
		}
	}
	return nil
}

// DeleteSlice 删除切片覆盖的所有节点
func (l *List[T]) DeleteSlice(s Slice) error {
	// 先记录每个位置上的节点，删除过程中位置不会漂移
	nodes := l.nodes()
	positions, err := s.Positions(len(nodes))
	if err != nil {
		return err
	}

	for _, pos := range positions {
		if checkPos("DeleteSlice", s, pos, len(nodes)) {
			l.remove(nodes[pos])
		}
	}
	return nil
}
