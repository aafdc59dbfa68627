package main

import (
	"flag"
	"net/http"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"
	"hmt/calculator"
	"hmt/server"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

func main() {
	confPath := flag.String("conf", "conf/config.ini", "配置文件路径")
	flag.Parse()

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	file, err := ini.Load(*confPath)
	if err != nil {
		log.Warn("配置文件读取错误，使用默认配置: ", err)
	}
	setLogLevel(file)

	upgrader.CheckOrigin = func(r *http.Request) bool {
		return true
	}
	calc := calculator.NewCalculator(calculator.ConfigFromIni(file))
	s := server.NewServer(server.ConfigFromIni(file), upgrader, calc)
	if err := s.Serve(); err != nil {
		log.Fatal("ListenAndServe: ", err)
	}
}

func setLogLevel(file *ini.File) {
	if file == nil {
		return
	}
	name := file.Section("log").Key("Level").MustString("info")
	level, err := log.ParseLevel(name)
	if err != nil {
		log.WithField("Level", name).Warn("日志级别配置错误")
		return
	}
	log.SetLevel(level)
}
