package export

import (
	"fmt"

	"hmt/calculator"
)

// Summary 计算结论
type Summary struct {
	Material           string  `json:"material"`
	Alpha              float64 `json:"alpha"`
	Thickness          float64 `json:"thickness"`
	Fo                 float64 `json:"fo"`
	InitialTemperature float64 `json:"initial_temperature"`
	NearNode           float64 `json:"near_node"` // 第一个内部节点的最终温度
	FarNode            float64 `json:"far_node"`  // 远端面的最终温度
	AverageFinal       float64 `json:"average_final"`
	Hours              float64 `json:"hours"`
	DtHours            float64 `json:"dt_hours"`
}

func NewSummary(r *calculator.Result, materialName string) Summary {
	final := r.Final()
	sum := 0.0
	for _, v := range final {
		sum += v
	}
	return Summary{
		Material:           materialName,
		Alpha:              r.Parameter.Alpha,
		Thickness:          r.Parameter.Thickness,
		Fo:                 r.Parameter.Fo,
		InitialTemperature: r.Parameter.InitialTemperature,
		NearNode:           final[1],
		FarNode:            final[len(final)-1],
		AverageFinal:       sum / float64(len(final)),
		Hours:              r.Hours[len(r.Hours)-1],
		DtHours:            r.DtHours,
	}
}

func (s Summary) String() string {
	return fmt.Sprintf("材料: %s, 热扩散率 %.2e m²/s\n"+
		"时间步长: %.4f h, 满足稳定性条件 Fo = %g <= 0.5\n"+
		"热量在 %g m 厚的平壁中传递: 远端面保持 %.2f ℃ (初始 %.2f ℃), 节点 T1 达到 %.2f ℃\n"+
		"经过 %.2f h, 壁面平均温度升至 %.2f ℃",
		s.Material, s.Alpha,
		s.DtHours, s.Fo,
		s.Thickness, s.FarNode, s.InitialTemperature, s.NearNode,
		s.Hours, s.AverageFinal)
}
