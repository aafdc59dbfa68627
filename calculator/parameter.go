package calculator

import "math"

// 显式格式稳定性条件 Fo <= 1/2
const MaxFourier = 0.5

const secondsPerHour = 3600.0

// Parameter 一次求解的全部输入，求解过程中只读
type Parameter struct {
	Thickness          float64 `json:"thickness"`           // 壁厚 L，m
	Alpha              float64 `json:"alpha"`               // 热扩散率，m²/s
	Fo                 float64 `json:"fo"`                  // 傅里叶数
	InitialTemperature float64 `json:"initial_temperature"` // 初始温度 Ti，℃
	HeaterTemperature  float64 `json:"heater_temperature"`  // 加热面最终温度 Tf，℃
	TotalHours         float64 `json:"total_hours"`         // 模拟时长，h
	Nodes              int     `json:"nodes"`               // 节点数 nx
}

// Validate 计算前检查所有输入
func (p Parameter) Validate() error {
	if p.Nodes < 3 {
		return invalid("nx = %d, 至少需要3个节点", p.Nodes)
	}
	if !positive(p.Thickness) {
		return invalid("壁厚 L = %v, 必须为正数", p.Thickness)
	}
	if err := checkFourier(p.Fo); err != nil {
		return err
	}
	if !positive(p.Alpha) {
		return invalid("热扩散率 α = %v, 必须为正数", p.Alpha)
	}
	if !positive(p.TotalHours) {
		return invalid("模拟时长 = %v h, 必须为正数", p.TotalHours)
	}
	if !finite(p.InitialTemperature) {
		return invalid("初始温度 Ti = %v", p.InitialTemperature)
	}
	if !finite(p.HeaterTemperature) {
		return invalid("加热温度 Tf = %v", p.HeaterTemperature)
	}
	return nil
}

func checkFourier(fo float64) error {
	if !(fo > 0) {
		return invalid("Fo = %v, 必须大于0", fo)
	}
	if fo > MaxFourier {
		return invalid("Fo = %v, 显式格式要求 Fo <= %v", fo, MaxFourier)
	}
	return nil
}

func positive(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
