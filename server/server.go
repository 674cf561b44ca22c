package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"wellplot/model"
)

type Server struct {
	addr     string
	upgrader websocket.Upgrader
	d        *Display
}

func NewServer(addr string, upgrader websocket.Upgrader, d *Display) *Server {
	return &Server{
		addr:     addr,
		upgrader: upgrader,
		d:        d,
	}
}

// serveWs handles websocket requests from the peer.
func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Warn("upgrade")
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub(s.d, conn)
	go hub.handleRequest(ctx)
	go hub.handleResponse(ctx, cancel)

	for {
		var msg model.Msg
		if err := conn.ReadJSON(&msg); err != nil {
			if ctx.Err() == nil && !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.WithError(err).Warn("read message")
			}
			return
		}
		select {
		case hub.msg <- msg:
		case <-ctx.Done():
			return
		}
	}
}

func (s *Server) serveFigure(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/figure/"), ".png")
	data, ok := s.d.PNG(name)
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.Write(data)
}

func (s *Server) serveIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, indexHTML)
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.serveIndex)
	mux.HandleFunc("/figure/", s.serveFigure)
	mux.HandleFunc("/ws", s.serveWs)
	return mux
}

func (s *Server) Serve() error {
	log.WithField("addr", s.addr).Info("display server listening")
	return http.ListenAndServe(s.addr, s.Handler())
}

const indexHTML = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>wellplot</title></head>
<body>
<img id="wavefunction" src="/figure/wavefunction.png">
<img id="probability" src="/figure/probability.png">
<script>
const ws = new WebSocket("ws://" + location.host + "/ws");
ws.onmessage = (e) => {
  const msg = JSON.parse(e.data);
  if (msg.type === "viewSet") {
    for (const id of ["wavefunction", "probability"]) {
      document.getElementById(id).src = "/figure/" + id + ".png?" + Date.now();
    }
  }
};
</script>
</body>
</html>
`
