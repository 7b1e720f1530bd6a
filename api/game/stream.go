package gameapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// StreamConfig tunes the WebSocket stream.
type StreamConfig struct {
	PingInterval time.Duration // Defaults to 10s.
	WriteTimeout time.Duration // Defaults to 5s.
	ReadLimit    int64         // Largest accepted client message. Defaults to 4 KiB.
}

func (c StreamConfig) withDefaults() StreamConfig {
	if c.PingInterval <= 0 {
		c.PingInterval = 10 * time.Second
	}
	if c.WriteTimeout <= 0 {
		c.WriteTimeout = 5 * time.Second
	}
	if c.ReadLimit <= 0 {
		c.ReadLimit = 4 << 10
	}
	return c
}

// safeWriter serializes writes to a WebSocket connection.
type safeWriter struct {
	conn    *websocket.Conn
	timeout time.Duration
	sync.Mutex
}

func (w *safeWriter) WriteMessage(messageType int, data []byte) error {
	w.Lock()
	defer w.Unlock()
	_ = w.conn.SetWriteDeadline(time.Now().Add(w.timeout))
	return w.conn.WriteMessage(messageType, data)
}

func (w *safeWriter) WriteJSON(v interface{}) error {
	w.Lock()
	defer w.Unlock()
	_ = w.conn.SetWriteDeadline(time.Now().Add(w.timeout))
	return w.conn.WriteJSON(v)
}

// serveStream upgrades the request and streams encoded frames of the session.
// Every binary message is one record type byte followed by a protobuf message.
// Clients send JSON StreamMessages.
func (sc *SessionController) serveStream(ctx *gin.Context) {
	id := sessionID(ctx)
	frames, unsubscribe, err := sc.sessions.Subscribe(id)
	if err != nil {
		sc.fail(ctx, err)
		return
	}
	defer unsubscribe()

	conn, err := sc.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		sc.logger.Warning(fmt.Sprintf("upgrading stream of session %s: %s", id, err))
		return
	}
	defer conn.Close()

	writer := &safeWriter{conn: conn, timeout: sc.stream.WriteTimeout}
	readDone := make(chan struct{})
	go func() {
		defer close(readDone)
		sc.readStream(id, conn, writer)
	}()

	ping := time.NewTicker(sc.stream.PingInterval)
	defer ping.Stop()

	for {
		select {
		case <-readDone:
			return
		case <-ping.C:
			if err := writer.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case frame, ok := <-frames:
			if !ok {
				msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "session closed")
				_ = writer.WriteMessage(websocket.CloseMessage, msg)
				return
			}
			if err := writer.WriteMessage(websocket.BinaryMessage, frame); err != nil {
				return
			}
		}
	}
}

// readStream applies client messages until the connection fails.
func (sc *SessionController) readStream(id uuid.UUID, conn *websocket.Conn, writer *safeWriter) {
	conn.SetReadLimit(sc.stream.ReadLimit)
	deadline := 3 * sc.stream.PingInterval
	_ = conn.SetReadDeadline(time.Now().Add(deadline))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(deadline))
	})

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(deadline))

		var msg StreamMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			_ = writer.WriteJSON(gin.H{"error": "malformed message"})
			continue
		}

		if err := sc.applyStreamMessage(id, msg); err != nil {
			_ = writer.WriteJSON(gin.H{"error": err.Error()})
		}
	}
}

func (sc *SessionController) applyStreamMessage(id uuid.UUID, msg StreamMessage) error {
	switch msg.Type {
	case StreamInput:
		update, ok := msg.update()
		if !ok {
			return errors.New("tilt or keys required")
		}
		return sc.sessions.Input(id, update)
	case StreamLoad:
		_, err := sc.sessions.Load(id)
		return err
	default:
		return fmt.Errorf("unknown message type %q", msg.Type)
	}
}
