package calculator

import (
	"math"
	"sync"
)

// 一个时间层内按节点划分的任务, 节点区间为 [start, end)
type task struct {
	prev  []float64
	next  []float64
	start int
	end   int
}

// executor 将同一时间层的内部节点分配给多个协程计算
// 各节点只读取上一时间层，因此同层内可以并行；层与层之间必须串行
type executor struct {
	workers int
	fo      float64
	c       float64 // 1 - 2Fo
	ranges  [][2]int

	dispatchChan chan task
	doneSoFar    chan int

	wg sync.WaitGroup
}

func newExecutor(workers int, fo float64, first, last int) *executor {
	ranges := splitRange(first, last, workers)
	return &executor{
		workers:      workers,
		fo:           fo,
		c:            1 - 2*fo,
		ranges:       ranges,
		dispatchChan: make(chan task, len(ranges)),
		doneSoFar:    make(chan int, len(ranges)),
	}
}

func (e *executor) run() {
	e.wg.Add(e.workers)
	for i := 0; i < e.workers; i++ {
		go func() {
			defer e.wg.Done()
			for t := range e.dispatchChan {
				e.doneSoFar <- updateRange(t.prev, t.next, e.fo, e.c, t.start, t.end)
			}
		}()
	}
}

func (e *executor) stop() {
	close(e.dispatchChan)
	e.wg.Wait()
}

// dispatchTask 计算一个时间层，全部任务完成后返回。返回出错的最小节点编号，没有则为 -1
func (e *executor) dispatchTask(prev, next []float64) int {
	for _, r := range e.ranges {
		e.dispatchChan <- task{prev: prev, next: next, start: r[0], end: r[1]}
	}
	bad := -1
	for range e.ranges {
		if n := <-e.doneSoFar; n >= 0 && (bad < 0 || n < bad) {
			bad = n
		}
	}
	return bad
}

// splitRange 把 [first, last) 分成至多 workers*2 段，余数分摊到前几段
func splitRange(first, last, workers int) [][2]int {
	total := last - first
	if total <= 0 {
		return nil
	}
	if workers < 1 {
		workers = 1
	}
	parts := workers * 2
	if parts > total {
		parts = total
	}
	taskLen, remainder := total/parts, total%parts
	ranges := make([][2]int, 0, parts)
	start := first
	for i := 0; i < parts; i++ {
		end := start + taskLen
		if i < remainder {
			end++
		}
		ranges = append(ranges, [2]int{start, end})
		start = end
	}
	return ranges
}

// updateRange 显式差分: T[p+1,n] = Fo*(T[p,n-1] + T[p,n+1]) + (1-2Fo)*T[p,n]
func updateRange(prev, next []float64, fo, c float64, start, end int) int {
	for n := start; n < end; n++ {
		v := fo*(prev[n-1]+prev[n+1]) + c*prev[n]
		next[n] = v
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return n
		}
	}
	return -1
}
