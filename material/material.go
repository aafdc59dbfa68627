package material

import (
	"errors"
	"fmt"
)

// Custom 手动输入热扩散率
const Custom = "Custom"

// 手动输入时的默认热扩散率，m²/s
const CustomAlpha = 0.52e-6

var ErrUnknownMaterial = errors.New("material: unknown material")

type Material struct {
	Name  string  `json:"name"`
	Alpha float64 `json:"alpha"` // 热扩散率，m²/s
}

// 常用壁面材料，顺序即前端下拉框顺序
var materials = []Material{
	{Name: Custom, Alpha: CustomAlpha},
	{Name: "Copper", Alpha: 1.11e-4},
	{Name: "Aluminum", Alpha: 9.71e-5},
	{Name: "Steel (Mild)", Alpha: 1.22e-5},
	{Name: "Concrete", Alpha: 7.5e-7},
	{Name: "Glass", Alpha: 3.4e-7},
	{Name: "Wood (Oak)", Alpha: 1.2e-7},
}

// List 返回材料表的拷贝
func List() []Material {
	list := make([]Material, len(materials))
	copy(list, materials)
	return list
}

func Lookup(name string) (Material, error) {
	for _, m := range materials {
		if m.Name == name {
			return m, nil
		}
	}
	return Material{}, fmt.Errorf("%w: %q", ErrUnknownMaterial, name)
}
