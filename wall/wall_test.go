package wall

import (
	"errors"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"hmt/calculator"
	"hmt/material"
	"hmt/model"
)

func float(v float64) *float64 { return &v }

func TestNewWall_Defaults(t *testing.T) {
	w := NewWall()
	assert.Equal(t, material.Custom, w.Material)
	assert.Equal(t, calculator.Parameter{
		Thickness:          0.25,
		Alpha:              0.52e-6,
		Fo:                 0.25,
		InitialTemperature: 100,
		HeaterTemperature:  700,
		TotalHours:         2,
		Nodes:              6,
	}, w.Parameter())
	require.NoError(t, w.Parameter().Validate())
}

func TestWall_SetEnv(t *testing.T) {
	w := NewWall()
	nodes := 8
	err := w.SetEnv(model.Env{
		Material:   "Aluminum",
		Thickness:  float(0.3),
		TotalHours: float(1),
		Nodes:      &nodes,
	})
	require.NoError(t, err)

	p := w.Parameter()
	assert.Equal(t, "Aluminum", w.Material)
	assert.Equal(t, 9.71e-5, p.Alpha)
	assert.Equal(t, 0.3, p.Thickness)
	assert.Equal(t, 1.0, p.TotalHours)
	assert.Equal(t, 8, p.Nodes)
	// 未提交的字段保持不变
	assert.Equal(t, 0.25, p.Fo)
	assert.Equal(t, 100.0, p.InitialTemperature)
	assert.Equal(t, 700.0, p.HeaterTemperature)
}

func TestWall_SetEnv_AlphaOverridesMaterial(t *testing.T) {
	w := NewWall()
	require.NoError(t, w.SetEnv(model.Env{Material: "Copper", Alpha: float(1e-4)}))
	assert.Equal(t, "Copper", w.Material)
	assert.Equal(t, 1e-4, w.Parameter().Alpha)

	// 重新选择材料时恢复材料表的值
	require.NoError(t, w.SetEnv(model.Env{Material: "Glass"}))
	assert.Equal(t, 3.4e-7, w.Parameter().Alpha)
}

func TestWall_SetEnv_UnknownMaterial(t *testing.T) {
	w := NewWall()
	err := w.SetEnv(model.Env{Material: "Unobtainium", Fo: float(0.4)})
	assert.True(t, errors.Is(err, material.ErrUnknownMaterial))
	assert.Equal(t, material.Custom, w.Material)
	assert.Equal(t, 0.25, w.Parameter().Fo)
}

func TestWall_Setters(t *testing.T) {
	w := NewWall()
	w.SetAlpha(2e-5)
	w.SetThickness(0.5)
	w.SetFo(0.5)
	w.SetInitialTemperature(20)
	w.SetHeaterTemperature(20)
	w.SetTotalHours(3)
	w.SetNodes(12)
	assert.Equal(t, calculator.Parameter{
		Thickness:          0.5,
		Alpha:              2e-5,
		Fo:                 0.5,
		InitialTemperature: 20,
		HeaterTemperature:  20,
		TotalHours:         3,
		Nodes:              12,
	}, w.Parameter())
}

func TestWall_SetEnv_GoesThroughSetters(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	w := NewWall()
	nodes := 10
	require.NoError(t, w.SetEnv(model.Env{
		Alpha:              float(1e-5),
		Thickness:          float(0.2),
		Fo:                 float(0.3),
		InitialTemperature: float(25),
		HeaterTemperature:  float(400),
		TotalHours:         float(4),
		Nodes:              &nodes,
	}))

	set := make(map[string]bool)
	for _, entry := range hook.AllEntries() {
		if entry.Level != log.InfoLevel {
			continue
		}
		for k := range entry.Data {
			set[k] = true
		}
	}
	for _, field := range []string{"Alpha", "Thickness", "Fo", "InitialTemperature", "HeaterTemperature", "TotalHours", "Nodes"} {
		assert.True(t, set[field], "%s 未通过 setter 设置", field)
	}
	assert.Equal(t, calculator.Parameter{
		Thickness:          0.2,
		Alpha:              1e-5,
		Fo:                 0.3,
		InitialTemperature: 25,
		HeaterTemperature:  400,
		TotalHours:         4,
		Nodes:              10,
	}, w.Parameter())
}
