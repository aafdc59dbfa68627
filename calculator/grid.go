package calculator

// Grid 沿壁厚方向的均匀网格
type Grid struct {
	Nodes     int
	Dx        float64   // 空间步长，m
	Positions []float64 // 0, dx, ..., L
}

// NewGrid 根据壁厚和节点数划分网格
func NewGrid(thickness float64, nodes int) (*Grid, error) {
	if nodes < 3 {
		return nil, invalid("nx = %d, 至少需要3个节点", nodes)
	}
	if !positive(thickness) {
		return nil, invalid("壁厚 L = %v, 必须为正数", thickness)
	}
	g := &Grid{
		Nodes:     nodes,
		Dx:        thickness / float64(nodes-1),
		Positions: make([]float64, nodes),
	}
	for i := 0; i < nodes-1; i++ {
		g.Positions[i] = float64(i) * g.Dx
	}
	g.Positions[nodes-1] = thickness
	return g, nil
}

// Interior 内部节点数
func (g *Grid) Interior() int {
	return g.Nodes - 2
}
