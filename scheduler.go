package mlfq

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Scheduler 是模拟的调度器
type Scheduler interface {
	// Schedule 完成调度：一直跑到 clock 没有预算为止。
	// 原址修改 table 里的进程和 clock，遇到阻塞的进程交给 io 处理。
	Schedule(ctx context.Context, clock *Clock, table *Table, io Unblocker)
}

// Outcome 一轮派发的结果
type Outcome int

const (
	// OutcomeIdle 没有就绪进程，CPU 空转一个 tick
	OutcomeIdle Outcome = iota
	// OutcomeBlocked 运行中请求 IO 被阻塞，留在原来的级别
	OutcomeBlocked
	// OutcomeDone 跑完了
	OutcomeDone
	// OutcomeExpired 全局时间在这一轮里用完了，留在原来的级别
	OutcomeExpired
	// OutcomeDemoted 用完了整个配额还没跑完，降一级
	OutcomeDemoted
)

func (o Outcome) String() string {
	return [...]string{"idle", "blocked", "done", "expired", "demoted"}[o]
}

// Turn 记录一轮调度发生了什么，交给 Observer
type Turn struct {
	// Tick 这一轮开始时的时钟
	Tick int
	Pid  int
	// Level 派发时所在的级别，NewLevel 是重新入队的级别 (结束了是 -1)
	Level    int
	NewLevel int
	Quota    int
	// Length = min(Quota, 剩余工作)
	Length  int
	Ran     int
	Outcome Outcome
}

func (t Turn) String() string {
	if t.Outcome == OutcomeIdle {
		return fmt.Sprintf("[t=%d] idle", t.Tick)
	}
	return fmt.Sprintf("[t=%d] P%d L%d->L%d quota=%d len=%d ran=%d %v",
		t.Tick, t.Pid, t.Level, t.NewLevel, t.Quota, t.Length, t.Ran, t.Outcome)
}

// Observer 每一轮调度（包括空转）之后被调用
type Observer func(turn Turn)

// FeedbackQueue 多级反馈队列调度器。
//   - 进程最初按优先级 (Classify) 放进 NumLevels 级队列，0 级最优先；
//   - 每次从 0 级开始按顺序找第一个 READY 的进程，扫描途中遇到 BLOCKED 的先尝试解除阻塞；
//   - 配额 = 优先级 * (派发次数 + 1)；
//   - 用完配额还没跑完就降一级，只降不升；被 IO 打断或者全局时间到了不降级。
type FeedbackQueue struct {
	rand Random
	// IOChance 每个 tick 请求 IO 的概率
	IOChance float64
	// Observer 可以为 nil
	Observer Observer
}

// NewFeedbackQueue 用 r 作为运行中 IO 事件的随机来源
func NewFeedbackQueue(r Random) *FeedbackQueue {
	return &FeedbackQueue{
		rand:     r,
		IOChance: DefaultIOChance,
	}
}

// Quota 进程这一轮最多能跑多少 tick
func Quota(p *Process) int {
	return p.Precedence * (p.Dispatches + 1)
}

func (f *FeedbackQueue) Schedule(ctx context.Context, clock *Clock, table *Table, io Unblocker) {
	field := "[MLFQ] "

	ctx, span := startSpan(ctx, "mlfq.schedule",
		attribute.Int("processes", table.Len()),
		attribute.Int("ceiling", clock.Ceiling),
	)
	defer span.End()

	levels := newLevels()
	for i := 0; i < table.Len(); i++ {
		p := table.At(i)
		if p.Status == StatusReady || p.Status == StatusBlocked {
			levels[Classify(p.Precedence)].enq(i)
		}
	}
	log.WithField("levels", levels).Info(field, "FeedbackQueue on")

	cpu := NewCPU(clock, f.rand, f.IOChance)

	for clock.WithinBudget() {
		i, level := f.pick(levels, table, io)
		if i < 0 {
			log.WithField("tick", clock.Tick).Info(field, "CPU idle: no ready process")
			f.notify(Turn{Tick: clock.Tick, Pid: 0, Level: -1, NewLevel: -1, Outcome: OutcomeIdle})
			clock.Advance()
			continue
		}
		f.notify(f.dispatch(ctx, cpu, levels, table, i, level))
	}

	span.SetAttributes(attribute.Int("context_switches", clock.ContextSwitches))
	log.WithFields(log.Fields{
		"clock":  clock,
		"levels": levels,
	}).Info(field, "clock budget exhausted. Shutdown FeedbackQueue")
}

// pick 从高到低扫描各级队列，返回第一个 READY 进程的下标和级别。
// 扫描到的 BLOCKED 进程先交给 io 试一下；饿死的进程直接出队。
// 一个都没有的话返回 -1, -1。
func (f *FeedbackQueue) pick(levels *Levels, table *Table, io Unblocker) (int, int) {
	for level, q := range levels {
		for _, i := range q.items() {
			p := table.At(i)
			if p.Status == StatusBlocked {
				io.TryUnblock(p)
			}
			switch {
			case p.Status == StatusReady:
				return i, level
			case p.Status.Terminal():
				q.remove(i)
			}
		}
	}
	return -1, -1
}

// dispatch 把下标 i 的进程放到 CPU 上跑一轮，然后按结果重新入队
func (f *FeedbackQueue) dispatch(ctx context.Context, cpu *CPU, levels *Levels, table *Table, i, level int) Turn {
	clock := cpu.Clock
	p := table.At(i)

	turn := Turn{
		Tick:     clock.Tick,
		Pid:      p.Id,
		Level:    level,
		NewLevel: level,
		Quota:    Quota(p),
	}
	turn.Length = min(turn.Quota, p.Remaining)

	_, span := startSpan(ctx, "mlfq.dispatch",
		attribute.Int("pid", p.Id),
		attribute.Int("level", level),
		attribute.Int("quota", turn.Quota),
	)
	defer span.End()

	logger := log.WithFields(log.Fields{
		"tick":     clock.Tick,
		"pid":      p.Id,
		"level":    level,
		"priority": p.Precedence,
		"quota":    turn.Quota,
		"run":      turn.Length,
	})
	logger.Info("[MLFQ] process enters CPU")

	p.ReadyToRunning()
	ran, blocked := cpu.Run(p, turn.Length)
	turn.Ran = ran

	if ran > 0 {
		p.Dispatches += 1
		clock.RecordContextSwitch()
	}
	levels[level].remove(i)

	switch {
	case blocked:
		// 主动让出 CPU 不算惩罚，留在原级
		turn.Outcome = OutcomeBlocked
		levels[level].enq(i)
		if ran == 0 {
			// 一个 tick 都没跑也要让时间往前走
			clock.Advance()
		}
	case p.Remaining <= 0:
		turn.Outcome = OutcomeDone
		turn.NewLevel = -1
		p.RunningToDone()
		logger.WithField("at", clock.Tick).Info("[MLFQ] process done")
	case !clock.WithinBudget():
		turn.Outcome = OutcomeExpired
		p.RunningToReady()
		levels[level].enq(i)
	default:
		turn.Outcome = OutcomeDemoted
		turn.NewLevel = demote(level)
		p.RunningToReady()
		levels[turn.NewLevel].enq(i)
		logger.WithFields(log.Fields{
			"to":        turn.NewLevel,
			"remaining": p.Remaining,
		}).Info("[MLFQ] quota used up, process demoted")
	}

	span.SetAttributes(
		attribute.Int("ran", ran),
		attribute.String("outcome", turn.Outcome.String()),
	)
	if turn.Outcome == OutcomeBlocked {
		span.AddEvent("io.blocked", trace.WithAttributes(attribute.Int("ran", ran)))
	}
	return turn
}

func (f *FeedbackQueue) notify(turn Turn) {
	if f.Observer != nil {
		f.Observer(turn)
	}
}
