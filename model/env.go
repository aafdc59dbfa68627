package model

// Env 前端表单提交的平壁参数，未填写的字段保持原设置
type Env struct {
	Material           string   `json:"material"`
	Alpha              *float64 `json:"alpha"`               // m²/s，填写时优先于材料表
	Thickness          *float64 `json:"thickness"`           // m
	Fo                 *float64 `json:"fo"`                  // 傅里叶数
	InitialTemperature *float64 `json:"initial_temperature"` // ℃
	HeaterTemperature  *float64 `json:"heater_temperature"`  // ℃
	TotalHours         *float64 `json:"total_hours"`         // h
	Nodes              *int     `json:"nodes"`
}
