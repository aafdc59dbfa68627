package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"sync"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
	"hmt/calculator"
	"hmt/export"
	"hmt/material"
	"hmt/model"
	"hmt/wall"
)

var errNoResult = errors.New("server: no result yet, send solve first")

// Hub 每个连接一个，保存该连接的平壁设置和最近一次的计算结果
type Hub struct {
	calc *calculator.Calculator
	cfg  Config
	conn *websocket.Conn

	wall *wall.Wall
	last *calculator.Result
	// 最近一次结果对应的材料
	lastMaterial string

	// request
	msg chan model.Msg
	// response
	reply chan model.Msg

	done      chan struct{}
	closeOnce sync.Once
}

func NewHub(calc *calculator.Calculator, cfg Config) *Hub {
	return &Hub{
		calc:  calc,
		cfg:   cfg,
		wall:  wall.NewWall(),
		msg:   make(chan model.Msg, 10),
		reply: make(chan model.Msg, 10),
		done:  make(chan struct{}),
	}
}

func (h *Hub) close() {
	h.closeOnce.Do(func() {
		close(h.done)
	})
}

func (h *Hub) handleResponse() {
	for {
		select {
		case reply := <-h.reply:
			if err := h.conn.WriteJSON(&reply); err != nil {
				log.Warn("发送消息失败: ", err)
				h.close()
				return
			}
		case <-h.done:
			return
		}
	}
}

func (h *Hub) handleRequest() {
	for {
		select {
		case msg := <-h.msg:
			reply := h.handle(msg)
			select {
			case h.reply <- reply:
			case <-h.done:
				return
			}
		case <-h.done:
			return
		}
	}
}

// handle 处理一条请求并生成响应
func (h *Hub) handle(msg model.Msg) model.Msg {
	switch msg.Type {
	case model.TypeMaterials:
		data, err := json.Marshal(material.List())
		if err != nil {
			return errorReply(err)
		}
		return model.Msg{Type: model.TypeMaterials, Content: string(data)}
	case model.TypeEnv:
		if err := h.setEnv(msg.Content); err != nil {
			return errorReply(err)
		}
		return model.Msg{Type: model.TypeEnvSet, Content: "env is set"}
	case model.TypeSolve:
		if msg.Content != "" {
			if err := h.setEnv(msg.Content); err != nil {
				return errorReply(err)
			}
		}
		return h.solve()
	case model.TypeCsv:
		if h.last == nil {
			return errorReply(errNoResult)
		}
		var buf bytes.Buffer
		if err := export.WriteCSV(&buf, h.last, h.cfg.CsvPrecision); err != nil {
			return errorReply(err)
		}
		return model.Msg{Type: model.TypeCsv, Content: buf.String()}
	default:
		log.WithField("type", msg.Type).Warn("no such type")
		return model.Msg{Type: model.TypeError, Kind: model.KindBadRequest, Content: "no such type: " + msg.Type}
	}
}

func (h *Hub) setEnv(content string) error {
	var env model.Env
	if err := json.Unmarshal([]byte(content), &env); err != nil {
		return err
	}
	return h.wall.SetEnv(env)
}

func (h *Hub) solve() model.Msg {
	res, err := h.calc.Solve(h.wall.Parameter())
	if err != nil {
		return errorReply(err)
	}
	h.last = res
	h.lastMaterial = h.wall.Material

	data, err := json.Marshal(export.NewPushData(res, h.lastMaterial, h.cfg.PushRowStep))
	if err != nil {
		return errorReply(err)
	}
	return model.Msg{Type: model.TypeSolved, Content: string(data)}
}

// errorReply 把错误转换为前端可显示的消息
func errorReply(err error) model.Msg {
	kind := model.KindBadRequest
	switch {
	case errors.Is(err, calculator.ErrInvalidConfiguration):
		kind = model.KindInvalidConfiguration
	case errors.Is(err, calculator.ErrResourceLimitExceeded):
		kind = model.KindResourceLimitExceeded
	case errors.Is(err, calculator.ErrComputationFault):
		kind = model.KindComputationFault
	}
	return model.Msg{Type: model.TypeError, Kind: kind, Content: err.Error()}
}
