package calculator

import (
	log "github.com/sirupsen/logrus"
)

// Calculator 平壁一维非稳态导热显式求解器
// 不保存任何求解状态，可以被多个协程同时使用
type Calculator struct {
	cfg Config
}

func NewCalculator(cfg Config) *Calculator {
	if cfg.MaxRows < 1 {
		cfg.MaxRows = defaultMaxRows
	}
	if cfg.MaxCells < 1 {
		cfg.MaxCells = defaultMaxCells
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.ParallelNodes < 1 {
		cfg.ParallelNodes = defaultParallelNodes
	}
	return &Calculator{cfg: cfg}
}

// Solve 使用默认配置求解
func Solve(p Parameter) (*Result, error) {
	return NewCalculator(DefaultConfig()).Solve(p)
}

// Solve 划分网格 -> 确定时间步长 -> 设置边界 -> 逐层迭代 -> 组装结果
func (c *Calculator) Solve(p Parameter) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	// 分配任何内存之前先检查规模
	if err := checkCells(1, p.Nodes, c.cfg.MaxCells); err != nil {
		return nil, err
	}
	dx := p.Thickness / float64(p.Nodes-1)
	ts, err := NewTimeStep(p.Fo, dx, p.Alpha, p.TotalHours, c.cfg.MaxRows)
	if err != nil {
		return nil, err
	}
	if err := checkCells(ts.Steps, p.Nodes, c.cfg.MaxCells); err != nil {
		return nil, err
	}
	grid, err := NewGrid(p.Thickness, p.Nodes)
	if err != nil {
		return nil, err
	}

	f := newField(ts.Steps, grid.Nodes)
	applyBoundary(f, p.InitialTemperature, p.HeaterTemperature)
	if err := c.step(f, grid, p.Fo, ts); err != nil {
		log.WithFields(log.Fields{
			"nx": grid.Nodes,
			"nt": ts.Steps,
			"Fo": p.Fo,
		}).Warn("温度场计算出现非有限值: ", err)
		return nil, err
	}

	log.WithFields(log.Fields{
		"nx": grid.Nodes,
		"nt": ts.Steps,
		"dx": grid.Dx,
		"dt": ts.Dt,
	}).Debug("温度场计算完成")
	return newResult(p, grid, ts, f), nil
}

// step 按时间层顺序迭代，第 p+1 层只依赖已完成的第 p 层
func (c *Calculator) step(f *field, grid *Grid, fo float64, ts TimeStep) error {
	first, last := 1, f.nodes-1
	coefficient := 1 - 2*fo
	update := func(prev, next []float64) int {
		return updateRange(prev, next, fo, coefficient, first, last)
	}
	if c.cfg.Workers > 1 && grid.Interior() >= c.cfg.ParallelNodes {
		e := newExecutor(c.cfg.Workers, fo, first, last)
		e.run()
		defer e.stop()
		update = e.dispatchTask
	}

	for p := 0; p < f.rows-1; p++ {
		if n := update(f.row(p), f.row(p+1)); n >= 0 {
			return &FaultError{
				Row:   p + 1,
				Node:  n,
				Hour:  float64(p+1) * ts.DtHours(),
				Value: f.get(p+1, n),
			}
		}
	}
	return nil
}
