package server

import (
	"net/http"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
	"hmt/calculator"
	"hmt/model"
)

// 前端请求只包含表单参数，单条消息不会超过该大小
const maxMessageSize = 8 * 1024

type Server struct {
	cfg      Config
	upgrader websocket.Upgrader
	calc     *calculator.Calculator
}

func NewServer(cfg Config, upgrader websocket.Upgrader, calc *calculator.Calculator) *Server {
	return &Server{
		cfg:      cfg,
		upgrader: upgrader,
		calc:     calc,
	}
}

// serveWs handles websocket requests from the peer.
func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn("websocket upgrade: ", err)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxMessageSize)

	hub := NewHub(s.calc, s.cfg)
	hub.conn = conn
	go hub.handleRequest()
	go hub.handleResponse()
	defer hub.close()

	log.WithField("remote", conn.RemoteAddr().String()).Info("前端已连接")
	for {
		var msg model.Msg
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Warn("读取消息失败: ", err)
			}
			log.WithField("remote", conn.RemoteAddr().String()).Info("前端断开连接")
			return
		}
		select {
		case hub.msg <- msg:
		case <-hub.done:
			return
		}
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.serveWs)
	return mux
}

func (s *Server) Serve() error {
	log.WithField("addr", s.cfg.Addr).Info("服务启动")
	return http.ListenAndServe(s.cfg.Addr, s.Handler())
}
