package calculator

import (
	"fmt"
	"math"
)

// TimeStep 时间步长及时间层数
type TimeStep struct {
	Dt    float64 // s
	Steps int     // 时间层数 nt，包含初始层
}

// DtHours 时间步长，h
func (ts TimeStep) DtHours() float64 {
	return ts.Dt / secondsPerHour
}

// NewTimeStep 由傅里叶数确定时间步长: dt = Fo * dx² / α, nt = floor(T / dt) + 1
func NewTimeStep(fo, dx, alpha, totalHours float64, maxRows int) (TimeStep, error) {
	if !positive(alpha) {
		return TimeStep{}, invalid("热扩散率 α = %v, 必须为正数", alpha)
	}
	if err := checkFourier(fo); err != nil {
		return TimeStep{}, err
	}
	if !positive(dx) {
		return TimeStep{}, invalid("空间步长 dx = %v, 必须为正数", dx)
	}
	if !positive(totalHours) {
		return TimeStep{}, invalid("模拟时长 = %v h, 必须为正数", totalHours)
	}

	dt := fo * dx * dx / alpha
	if !(dt > 0) {
		return TimeStep{}, invalid("时间步长 dt = %v s, 下溢为0", dt)
	}

	if maxRows <= 0 {
		maxRows = defaultMaxRows
	}
	// 先用浮点数判断，避免整数溢出和超大分配
	rows := math.Floor(totalHours*secondsPerHour/dt) + 1
	if rows > float64(maxRows) {
		return TimeStep{}, fmt.Errorf("%w: 需要 %.0f 个时间层, 上限为 %d", ErrResourceLimitExceeded, rows, maxRows)
	}
	return TimeStep{Dt: dt, Steps: int(rows)}, nil
}
