package mlfq

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"gonum.org/v1/gonum/stat"
)

// WriteTable 把进程控制表画出来
func WriteTable(w io.Writer, procs []Process) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Rem", "State", "Prio", "Tickets", "Owner", "Disp", "CPU"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	for _, p := range procs {
		table.Append([]string{
			strconv.Itoa(p.Id),
			strconv.Itoa(p.Remaining),
			p.Status.String(),
			strconv.Itoa(p.Precedence),
			strconv.Itoa(p.Tickets),
			p.Owner,
			strconv.Itoa(p.Dispatches),
			strconv.Itoa(p.CPUTime),
		})
	}
	table.Render()
}

// Report 模拟结束后的统计。只用来展示，不会反过来影响调度。
type Report struct {
	// Successful 跑完了的 (TERMINATED 且派发过)
	Successful []int
	// Dead 饿死的
	Dead []int
	// NeverRan 从来没派发过，也没饿死
	NeverRan []int
	// Truncated 派发过但是时间到了也没跑完
	Truncated []int

	ContextSwitches int
	Tick            int
	Ceiling         int

	// MeanCPUTime, StdDevCPUTime 每个进程实际跑过的 tick 数
	MeanCPUTime   float64
	StdDevCPUTime float64
	// MeanCompletion 每个进程完成的工作占总工作量的比例的平均值，饿死的不算完成
	MeanCompletion float64
}

// Summarize 按最后的进程状态分类
func Summarize(procs []Process, clock *Clock) Report {
	r := Report{
		ContextSwitches: clock.ContextSwitches,
		Tick:            clock.Tick,
		Ceiling:         clock.Ceiling,
	}

	cpu := make([]float64, 0, len(procs))
	done := make([]float64, 0, len(procs))
	for _, p := range procs {
		switch {
		case p.Status == StatusDone && p.Dispatches > 0:
			r.Successful = append(r.Successful, p.Id)
		case p.Status == StatusDead:
			r.Dead = append(r.Dead, p.Id)
		}
		if p.Dispatches == 0 && p.Status != StatusDead {
			r.NeverRan = append(r.NeverRan, p.Id)
		}
		if !p.Status.Terminal() && p.Dispatches > 0 {
			r.Truncated = append(r.Truncated, p.Id)
		}

		cpu = append(cpu, float64(p.CPUTime))
		if p.Total > 0 {
			done = append(done, float64(p.CPUTime)/float64(p.Total))
		}
	}

	if len(cpu) > 0 {
		r.MeanCPUTime, r.StdDevCPUTime = stat.MeanStdDev(cpu, nil)
	}
	if len(done) > 0 {
		r.MeanCompletion = stat.Mean(done, nil)
	}
	return r
}

// Write 把报告画出来
func (r Report) Write(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Final report", ""})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.AppendBulk([][]string{
		{"Successful", pids(r.Successful)},
		{"Dead (starvation)", pids(r.Dead)},
		{"Never ran", pids(r.NeverRan)},
		{"Truncated", pids(r.Truncated)},
		{"Context switches", strconv.Itoa(r.ContextSwitches)},
		{"Clock", fmt.Sprintf("%d/%d", r.Tick, r.Ceiling)},
		{"CPU time", fmt.Sprintf("mean %.2f stddev %.2f", r.MeanCPUTime, r.StdDevCPUTime)},
		{"Completion", fmt.Sprintf("%.1f%%", r.MeanCompletion*100)},
	})
	table.Render()
}

// pids 格式化成 [P1, P4]，空的是 [none]
func pids(ids []int) string {
	if len(ids) == 0 {
		return "[none]"
	}
	s := make([]string, len(ids))
	for i, id := range ids {
		s[i] = "P" + strconv.Itoa(id)
	}
	return "[" + strings.Join(s, ", ") + "]"
}
