package mlfq

import (
	"math/rand"
	"time"

	"golang.org/x/exp/constraints"
)

// Random 是模拟里所有随机事件的来源。*rand.Rand 就满足这个接口。
// 显式地传给工厂、IO 管理器和调度器，测试的时候可以换成固定的序列。
type Random interface {
	Float64() float64
	Intn(n int) int
}

// NewRandom 用 seed 构造一个 *rand.Rand
func NewRandom(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func timeSeed() int64 {
	return time.Now().UnixNano()
}

// between 返回 [lo, hi] 里的随机整数
func between[T constraints.Integer](r Random, lo, hi T) T {
	if hi <= lo {
		return lo
	}
	return lo + T(r.Intn(int(hi-lo)+1))
}

// chance 以概率 p 返回 true
func chance(r Random, p float64) bool {
	return r.Float64() < p
}
