package mlfq

// Table 是进程控制表 (PCB)。
// 进程按下标存放在一个切片里，队列里只存下标，
// 这样一个进程在任何时候只有一个可变的本体。
type Table struct {
	procs []Process
}

// NewTable 用 procs 建一个进程表，procs 会被复制
func NewTable(procs ...Process) *Table {
	t := &Table{procs: make([]Process, len(procs))}
	copy(t.procs, procs)
	return t
}

// Len 进程数
func (t *Table) Len() int {
	return len(t.procs)
}

// At 取下标 i 的进程，返回的是表里的本体
func (t *Table) At(i int) *Process {
	return &t.procs[i]
}

// Find 按进程号找下标，找不到返回 -1
func (t *Table) Find(pid int) int {
	for i := range t.procs {
		if t.procs[i].Id == pid {
			return i
		}
	}
	return -1
}

// Add 加一个进程，返回它的下标
func (t *Table) Add(p Process) int {
	t.procs = append(t.procs, p)
	return len(t.procs) - 1
}

// Ready 所有 READY 进程的下标
func (t *Table) Ready() []int {
	return t.filter(func(p *Process) bool { return p.Status == StatusReady })
}

// Even 所有进程号为偶数的进程的下标
func (t *Table) Even() []int {
	return t.filter((*Process).EvenID)
}

func (t *Table) filter(keep func(p *Process) bool) []int {
	var idx []int
	for i := range t.procs {
		if keep(&t.procs[i]) {
			idx = append(idx, i)
		}
	}
	return idx
}

// Snapshot 复制一份当前所有进程，给报告和观察者用
func (t *Table) Snapshot() []Process {
	s := make([]Process, len(t.procs))
	copy(s, t.procs)
	return s
}
