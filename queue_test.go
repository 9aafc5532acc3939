package mlfq

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	want := map[int]int{1: 3, 2: 3, 3: 3, 4: 2, 5: 2, 6: 2, 7: 1, 8: 1, 9: 0, 10: 0}
	for precedence, level := range want {
		assert.Equal(t, level, Classify(precedence), "precedence %d", precedence)
		assert.Equal(t, Classify(precedence), Classify(precedence))
	}
}

func TestDemote(t *testing.T) {
	assert.Equal(t, 1, demote(0))
	assert.Equal(t, 3, demote(2))
	assert.Equal(t, NumLevels-1, demote(NumLevels-1))
}

func TestQueueOrder(t *testing.T) {
	q := newQueue()
	q.enq(3)
	q.enq(1)
	q.enq(2)
	assert.Equal(t, []int{3, 1, 2}, q.items())

	assert.True(t, q.remove(1))
	assert.False(t, q.remove(1))
	q.enq(1)
	assert.Equal(t, []int{3, 2, 1}, q.items())
	assert.Equal(t, 3, q.qlen())
}

func TestLevels(t *testing.T) {
	l := newLevels()
	l[0].enq(4)
	l[2].enq(1)
	l[2].enq(0)

	assert.Equal(t, 3, l.Len())
	assert.Equal(t, 2, l.LevelOf(0))
	assert.Equal(t, 0, l.LevelOf(4))
	assert.Equal(t, -1, l.LevelOf(9))
	assert.Equal(t, "L0[4] L1[] L2[1 0] L3[]", l.String())
}
