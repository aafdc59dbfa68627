package export

import "hmt/calculator"

// PushData 推送给前端绘图的数据
type PushData struct {
	DtHours     float64     `json:"dt_hours"`
	Rows        int         `json:"rows"`        // 完整温度场的时间层数
	Hours       []float64   `json:"hours"`       // 抽样后的时间轴
	Positions   []float64   `json:"positions"`   // 节点位置，m
	Temperature [][]float64 `json:"temperature"` // 抽样后的温度场 [时间][节点]，时间-距离曲面
	History     [][]float64 `json:"history"`     // 各节点温度历程 [节点][时间]
	Final       []float64   `json:"final"`       // 最终时刻壁面温度
	Summary     Summary     `json:"summary"`
	Text        string      `json:"text"`
}

// NewPushData 每隔 rowStep 个时间层取一层，最后一层总是保留
func NewPushData(r *calculator.Result, materialName string, rowStep int) *PushData {
	rows := sampleRows(r.Rows(), rowStep)
	data := &PushData{
		DtHours:     r.DtHours,
		Rows:        r.Rows(),
		Hours:       make([]float64, len(rows)),
		Positions:   r.Positions,
		Temperature: make([][]float64, len(rows)),
		History:     make([][]float64, r.Nodes()),
		Final:       r.Final(),
		Summary:     NewSummary(r, materialName),
	}
	for n := range data.History {
		data.History[n] = make([]float64, len(rows))
	}
	for i, p := range rows {
		data.Hours[i] = r.Hours[p]
		data.Temperature[i] = r.Row(p)
		for n, v := range r.Row(p) {
			data.History[n][i] = v
		}
	}
	data.Text = data.Summary.String()
	return data
}

func sampleRows(total, step int) []int {
	if step < 1 {
		step = 1
	}
	rows := make([]int, 0, total/step+2)
	for p := 0; p < total; p += step {
		rows = append(rows, p)
	}
	if rows[len(rows)-1] != total-1 {
		rows = append(rows, total-1)
	}
	return rows
}
