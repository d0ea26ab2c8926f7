package dlist

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfRange = errors.New("索引越界")
	ErrNotFound   = errors.New("元素不在链表中")
	ErrZeroStep   = errors.New("切片步长不能为0")
)

func outOfRange(index, length int) error {
	return fmt.Errorf("%w: index=%d, len=%d", ErrOutOfRange, index, length)
}

func notFound(value any) error {
	return fmt.Errorf("%w: %v", ErrNotFound, value)
}
