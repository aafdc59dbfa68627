package server

import "gopkg.in/ini.v1"

type Config struct {
	Addr         string
	PushRowStep  int // 推送图表数据时时间层的抽样步长
	CsvPrecision int // csv 小数位数，-1 为最短精确表示
}

func DefaultConfig() Config {
	return Config{
		Addr:         ":9000",
		PushRowStep:  1,
		CsvPrecision: -1,
	}
}

// ConfigFromIni 读取 [server] 配置段
func ConfigFromIni(file *ini.File) Config {
	cfg := DefaultConfig()
	if file == nil {
		return cfg
	}
	section := file.Section("server")
	cfg.Addr = section.Key("Addr").MustString(cfg.Addr)
	cfg.PushRowStep = section.Key("PushRowStep").MustInt(cfg.PushRowStep)
	cfg.CsvPrecision = section.Key("CsvPrecision").MustInt(cfg.CsvPrecision)
	if cfg.PushRowStep < 1 {
		cfg.PushRowStep = 1
	}
	return cfg
}
