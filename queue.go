package mlfq

import (
	"fmt"
	"strings"
)

// NumLevels 多级队列的级数，0 级优先级最高
const NumLevels = 4

// Queue 是一级就绪队列，存的是进程在 Table 里的下标。
// 按插入顺序排队，先进先看。
type Queue struct {
	q []int
}

func newQueue() *Queue {
	return &Queue{q: make([]int, 0)}
}

func (q *Queue) enq(i int) {
	q.q = append(q.q, i)
}

// remove 把下标 i 从队列里删掉，返回是否删了
func (q *Queue) remove(i int) bool {
	for k, v := range q.q {
		if v == i {
			q.q = append(q.q[:k], q.q[k+1:]...)
			return true
		}
	}
	return false
}

func (q *Queue) qlen() int {
	return len(q.q)
}

// items 返回队列内容的副本
func (q *Queue) items() []int {
	s := make([]int, len(q.q))
	copy(s, q.q)
	return s
}

// Levels 是 NumLevels 个按优先级排好的 Queue
type Levels [NumLevels]*Queue

func newLevels() *Levels {
	var l Levels
	for i := range l {
		l[i] = newQueue()
	}
	return &l
}

// Len 所有队列里的进程总数
func (l *Levels) Len() int {
	n := 0
	for _, q := range l {
		n += q.qlen()
	}
	return n
}

// LevelOf 找下标 i 在哪一级，不在任何队列里返回 -1
func (l *Levels) LevelOf(i int) int {
	for level, q := range l {
		for _, v := range q.q {
			if v == i {
				return level
			}
		}
	}
	return -1
}

func (l *Levels) String() string {
	var b strings.Builder
	for level, q := range l {
		fmt.Fprintf(&b, "L%d%v ", level, q.q)
	}
	return strings.TrimSpace(b.String())
}

// Classify 按优先级决定进程最初放到哪一级。
// 9~10 -> 0, 7~8 -> 1, 4~6 -> 2, 其他 -> 3
func Classify(precedence int) int {
	switch {
	case precedence >= 9:
		return 0
	case precedence >= 7:
		return 1
	case precedence >= 4:
		return 2
	}
	return 3
}

// demote 降一级，最低到 NumLevels-1
func demote(level int) int {
	return min(level+1, NumLevels-1)
}
