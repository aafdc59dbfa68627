package calculator

// Result 求解结果: 时间轴 (h)、节点位置 (m) 与温度场 (℃)
type Result struct {
	Parameter   Parameter   `json:"parameter"`
	Dx          float64     `json:"dx"`       // m
	Dt          float64     `json:"dt"`       // s
	DtHours     float64     `json:"dt_hours"` // h
	Positions   []float64   `json:"positions"`
	Hours       []float64   `json:"hours"`
	Temperature [][]float64 `json:"temperature"` // [时间层][节点]
}

func newResult(p Parameter, grid *Grid, ts TimeStep, f *field) *Result {
	dtHours := ts.DtHours()
	hours := make([]float64, f.rows)
	for i := range hours {
		hours[i] = float64(i) * dtHours
	}
	return &Result{
		Parameter:   p,
		Dx:          grid.Dx,
		Dt:          ts.Dt,
		DtHours:     dtHours,
		Positions:   grid.Positions,
		Hours:       hours,
		Temperature: f.table(),
	}
}

func (r *Result) Rows() int {
	return len(r.Temperature)
}

func (r *Result) Nodes() int {
	return len(r.Positions)
}

func (r *Result) Row(p int) []float64 {
	return r.Temperature[p]
}

// Node 某个节点的温度历程
func (r *Result) Node(n int) []float64 {
	history := make([]float64, len(r.Temperature))
	for p, row := range r.Temperature {
		history[p] = row[n]
	}
	return history
}

// Final 最后时刻的壁面温度分布
func (r *Result) Final() []float64 {
	return r.Temperature[len(r.Temperature)-1]
}

// Traverse 按时间顺序遍历每一层
func (r *Result) Traverse(f func(p int, hour float64, row []float64)) {
	for p, row := range r.Temperature {
		f(p, r.Hours[p], row)
	}
}
