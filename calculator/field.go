package calculator

import "fmt"

// field 温度场，按时间层存储 (nt × nx)，底层为一块连续内存
type field struct {
	rows  int
	nodes int
	data  []float64
}

func newField(rows, nodes int) *field {
	return &field{
		rows:  rows,
		nodes: nodes,
		data:  make([]float64, rows*nodes),
	}
}

// row 第 p 个时间层，与温度场共享内存
func (f *field) row(p int) []float64 {
	return f.data[p*f.nodes : (p+1)*f.nodes : (p+1)*f.nodes]
}

func (f *field) get(p, n int) float64 {
	return f.data[p*f.nodes+n]
}

func (f *field) set(p, n int, v float64) {
	f.data[p*f.nodes+n] = v
}

// table 按行切分的二维视图
func (f *field) table() [][]float64 {
	t := make([][]float64, f.rows)
	for p := range t {
		t[p] = f.row(p)
	}
	return t
}

// checkCells 在分配之前检查温度场规模，用浮点数计算避免整数溢出
func checkCells(rows, nodes, maxCells int) error {
	if maxCells <= 0 {
		maxCells = defaultMaxCells
	}
	cells := float64(rows) * float64(nodes)
	if cells > float64(maxCells) {
		return fmt.Errorf("%w: 温度场需要 %d × %d 个节点, 上限为 %d", ErrResourceLimitExceeded, rows, nodes, maxCells)
	}
	return nil
}
