package wall

import (
	log "github.com/sirupsen/logrus"
	"hmt/calculator"
	"hmt/material"
	"hmt/model"
)

// Wall 平壁的材料、尺寸和加热条件
// 由前端逐项设置，求解时生成只读的 calculator.Parameter
type Wall struct {
	Material  string
	parameter calculator.Parameter
}

// NewWall 默认参数与前端表单初始值一致
func NewWall() *Wall {
	return &Wall{
		Material: material.Custom,
		parameter: calculator.Parameter{
			Thickness:          0.25,
			Alpha:              material.CustomAlpha,
			Fo:                 0.25,
			InitialTemperature: 100,
			HeaterTemperature:  700,
			TotalHours:         2,
			Nodes:              6,
		},
	}
}

// Parameter 当前设置的拷贝
func (w *Wall) Parameter() calculator.Parameter {
	return w.parameter
}

// SetEnv 应用前端提交的参数，先设置材料，再用填写的热扩散率覆盖材料表的值
func (w *Wall) SetEnv(env model.Env) error {
	if env.Material != "" {
		if err := w.SetMaterial(env.Material); err != nil {
			return err
		}
	}
	if env.Alpha != nil {
		w.SetAlpha(*env.Alpha)
	}
	if env.Thickness != nil {
		w.SetThickness(*env.Thickness)
	}
	if env.Fo != nil {
		w.SetFo(*env.Fo)
	}
	if env.InitialTemperature != nil {
		w.SetInitialTemperature(*env.InitialTemperature)
	}
	if env.HeaterTemperature != nil {
		w.SetHeaterTemperature(*env.HeaterTemperature)
	}
	if env.TotalHours != nil {
		w.SetTotalHours(*env.TotalHours)
	}
	if env.Nodes != nil {
		w.SetNodes(*env.Nodes)
	}
	log.WithFields(log.Fields{
		"Material":           w.Material,
		"Alpha":              w.parameter.Alpha,
		"Thickness":          w.parameter.Thickness,
		"Fo":                 w.parameter.Fo,
		"InitialTemperature": w.parameter.InitialTemperature,
		"HeaterTemperature":  w.parameter.HeaterTemperature,
		"TotalHours":         w.parameter.TotalHours,
		"Nodes":              w.parameter.Nodes,
	}).Debug("平壁参数")
	return nil
}

// SetMaterial 选择材料，同时把热扩散率重置为材料表中的值
func (w *Wall) SetMaterial(name string) error {
	m, err := material.Lookup(name)
	if err != nil {
		log.WithField("Material", name).Warn("未知材料")
		return err
	}
	w.Material = m.Name
	w.parameter.Alpha = m.Alpha
	log.WithFields(log.Fields{
		"Material": m.Name,
		"Alpha":    m.Alpha,
	}).Info("设置材料")
	return nil
}

// 单项设置
func (w *Wall) SetAlpha(alpha float64) {
	w.parameter.Alpha = alpha
	log.WithField("Alpha", alpha).Info("设置热扩散率")
}

func (w *Wall) SetThickness(thickness float64) {
	w.parameter.Thickness = thickness
	log.WithField("Thickness", thickness).Info("设置壁厚")
}

func (w *Wall) SetFo(fo float64) {
	w.parameter.Fo = fo
	log.WithField("Fo", fo).Info("设置傅里叶数")
}

func (w *Wall) SetInitialTemperature(ti float64) {
	w.parameter.InitialTemperature = ti
	log.WithField("InitialTemperature", ti).Info("设置初始温度")
}

func (w *Wall) SetHeaterTemperature(tf float64) {
	w.parameter.HeaterTemperature = tf
	log.WithField("HeaterTemperature", tf).Info("设置加热温度")
}

func (w *Wall) SetTotalHours(hours float64) {
	w.parameter.TotalHours = hours
	log.WithField("TotalHours", hours).Info("设置模拟时长")
}

func (w *Wall) SetNodes(nodes int) {
	w.parameter.Nodes = nodes
	log.WithField("Nodes", nodes).Info("设置节点数")
}
