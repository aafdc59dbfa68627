package calculator

import (
	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"
)

const (
	defaultMaxRows       = 500000
	defaultWorkers       = 4
	defaultParallelNodes = 256
	defaultMaxCells      = 50000000
)

type Config struct {
	MaxRows       int // 时间层数上限
	MaxCells      int // 温度场节点总数 (nt × nx) 上限
	Workers       int // 按节点并行时的协程数
	ParallelNodes int // 内部节点数达到该值时按节点并行
}

func DefaultConfig() Config {
	return Config{
		MaxRows:       defaultMaxRows,
		MaxCells:      defaultMaxCells,
		Workers:       defaultWorkers,
		ParallelNodes: defaultParallelNodes,
	}
}

// ConfigFromIni 读取 [calculator] 配置段，缺省项使用默认值
func ConfigFromIni(file *ini.File) Config {
	if file == nil {
		return DefaultConfig()
	}
	return loadCfg(file)
}

func loadCfg(file *ini.File) Config {
	section := file.Section("calculator")
	cfg := Config{
		MaxRows:       section.Key("MaxRows").MustInt(defaultMaxRows),
		MaxCells:      section.Key("MaxCells").MustInt(defaultMaxCells),
		Workers:       section.Key("Workers").MustInt(defaultWorkers),
		ParallelNodes: section.Key("ParallelNodes").MustInt(defaultParallelNodes),
	}
	if cfg.MaxRows < 1 {
		log.WithField("MaxRows", cfg.MaxRows).Warn("MaxRows 配置不合法，使用默认值")
		cfg.MaxRows = defaultMaxRows
	}
	if cfg.MaxCells < 1 {
		log.WithField("MaxCells", cfg.MaxCells).Warn("MaxCells 配置不合法，使用默认值")
		cfg.MaxCells = defaultMaxCells
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.ParallelNodes < 1 {
		cfg.ParallelNodes = defaultParallelNodes
	}
	log.WithFields(log.Fields{
		"MaxRows":       cfg.MaxRows,
		"MaxCells":      cfg.MaxCells,
		"Workers":       cfg.Workers,
		"ParallelNodes": cfg.ParallelNodes,
	}).Info("计算参数配置")
	return cfg
}
