package mlfq

import "fmt"

// Status 进程状态
type Status int

const (
	StatusReady Status = iota
	StatusBlocked
	StatusRunning
	StatusDone
	StatusDead
)

func (s Status) String() string {
	switch s {
	case StatusReady:
		return "READY"
	case StatusBlocked:
		return "BLOCKED"
	case StatusRunning:
		return "RUNNING"
	case StatusDone:
		return "TERMINATED"
	case StatusDead:
		return "DEAD"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Terminal 终止状态 (TERMINATED, DEAD) 没有出边
func (s Status) Terminal() bool {
	return s == StatusDone || s == StatusDead
}

// Process 进程：模拟的一个任务。
// 由工厂在调度开始前批量创建，之后只有调度器和 IO 管理器会改它。
// 结束了的进程也留在进程表里，给最后的报告用。
type Process struct {
	Id int
	// Remaining 剩余工作量，减到 0 为止
	Remaining int
	// Total 初始工作量，不变
	Total  int
	Status Status
	// Precedence 优先级 1~10，数字越大越优先
	Precedence int
	// Tickets 彩票数 1~5，给彩票调度留的，这里只做展示
	Tickets int
	Owner   string

	// Dispatches 被派发到 CPU 并且至少跑了一个 tick 的次数
	Dispatches int
	// CPUTime 实际在 CPU 上跑过的 tick 总数
	CPUTime int
	// CreatedAt 创建时的时钟
	CreatedAt int
}

// NewProcess 新建一个进程，Total 取初始的 remaining
func NewProcess(id, remaining int, status Status, precedence, tickets int, owner string, tick int) Process {
	return Process{
		Id:         id,
		Remaining:  remaining,
		Total:      remaining,
		Status:     status,
		Precedence: precedence,
		Tickets:    tickets,
		Owner:      owner,
		CreatedAt:  tick,
	}
}

// CanRun 就绪并且还有活要干
func (p *Process) CanRun() bool {
	return p.Status == StatusReady && p.Remaining > 0
}

// EvenID 进程号是不是偶数
func (p *Process) EvenID() bool {
	return p.Id%2 == 0
}

// Kill 进程饿死：剩余工作清零，状态变为 DEAD
func (p *Process) Kill() {
	p.Remaining = 0
	p.Status = StatusDead
}

// Terminate 强制结束：剩余工作清零，状态变为 TERMINATED
func (p *Process) Terminate() {
	p.Remaining = 0
	p.Status = StatusDone
}

func (p *Process) String() string {
	return fmt.Sprintf("P%d[%v rem=%d/%d prio=%d disp=%d]",
		p.Id, p.Status, p.Remaining, p.Total, p.Precedence, p.Dispatches)
}

// 👇 状态转换 👇

// ReadyToRunning 派发
func (p *Process) ReadyToRunning() {
	p.Status = StatusRunning
}

// RunningToBlocked 运行中请求 IO，阻塞
func (p *Process) RunningToBlocked() {
	p.Status = StatusBlocked
}

// RunningToReady 时间片用完（或者全局时间到了），还有剩余工作
func (p *Process) RunningToReady() {
	p.Status = StatusReady
}

// RunningToDone 剩余工作为 0，正常结束
func (p *Process) RunningToDone() {
	p.Remaining = 0
	p.Status = StatusDone
}

// BlockedToReady 解除阻塞
func (p *Process) BlockedToReady() {
	p.Status = StatusReady
}

// 👆 状态转换 👆
