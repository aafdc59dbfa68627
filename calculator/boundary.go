package calculator

// applyBoundary 在迭代前确定两侧边界和初始条件
// 1. 加热面 (第0列) 从 Ti 线性升至 Tf
// 2. 远端面 (第nx-1列) 恒为 Ti
// 3. 初始时刻内部节点为 Ti
func applyBoundary(f *field, ti, tf float64) {
	last := f.nodes - 1
	for p := 0; p < f.rows; p++ {
		f.set(p, 0, ramp(ti, tf, p, f.rows))
		f.set(p, last, ti)
	}
	for n := 1; n < last; n++ {
		f.set(0, n, ti)
	}
}

// ramp 与等差数列 Ti, ..., Tf 的第 p 项一致，最后一项恰好为 Tf
func ramp(ti, tf float64, p, rows int) float64 {
	if rows == 1 {
		return ti
	}
	if p == rows-1 {
		return tf
	}
	step := (tf - ti) / float64(rows-1)
	return ti + float64(p)*step
}
