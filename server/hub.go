package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"wellplot/model"
)

// Hub serves one websocket connection: requests are read into msg, handled
// in order, and replies are written by a single goroutine.
type Hub struct {
	d    *Display
	conn *websocket.Conn
	// request
	msg chan model.Msg
	// response
	reply chan model.Msg
}

func NewHub(d *Display, conn *websocket.Conn) *Hub {
	return &Hub{
		d:     d,
		conn:  conn,
		msg:   make(chan model.Msg, 10),
		reply: make(chan model.Msg, 10),
	}
}

func (h *Hub) handleRequest(ctx context.Context) {
	for {
		select {
		case msg := <-h.msg:
			select {
			case h.reply <- h.handle(msg):
			case <-ctx.Done():
				return
			}
		case <-ctx.Done():
			return
		}
	}
}

func (h *Hub) handle(msg model.Msg) model.Msg {
	switch msg.Type {
	case model.MsgStart:
		data, err := json.Marshal(h.d.PushData())
		if err != nil {
			return errorMsg(err)
		}
		return model.Msg{Type: model.MsgStarted, Content: string(data)}
	case model.MsgView:
		var view model.View
		if err := json.Unmarshal([]byte(msg.Content), &view); err != nil {
			return errorMsg(fmt.Errorf("view: %w", err))
		}
		if err := h.d.SetView(view); err != nil {
			return errorMsg(err)
		}
		return model.Msg{Type: model.MsgViewSet, Content: msg.Content}
	case model.MsgStop:
		return model.Msg{Type: model.MsgStopped, Content: "stopped"}
	default:
		log.WithField("type", msg.Type).Warn("no such type")
		return errorMsg(fmt.Errorf("no such type: %q", msg.Type))
	}
}

func (h *Hub) handleResponse(ctx context.Context, cancel context.CancelFunc) {
	for {
		select {
		case reply := <-h.reply:
			if err := h.conn.WriteJSON(&reply); err != nil {
				log.WithError(err).Warn("write reply")
				cancel()
				h.conn.Close()
				return
			}
			if reply.Type == model.MsgStopped {
				cancel()
				h.conn.Close()
				return
			}
		case <-ctx.Done():
			return
		}
	}
}

func errorMsg(err error) model.Msg {
	return model.Msg{Type: model.MsgError, Content: err.Error()}
}
