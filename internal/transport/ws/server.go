package ws

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"factorish.dev/internal/protocol"
	"factorish.dev/internal/sim/loop"
	"factorish.dev/internal/sim/world"
	"factorish.dev/internal/sim/world/kernel/model"
)

// DefaultMaxCmdsPerSecond bounds how fast one session may submit commands.
const DefaultMaxCmdsPerSecond = 60

type Server struct {
	loop *loop.Loop
	log  *log.Logger

	// MaxCmdsPerSecond <= 0 disables per-session rate limiting.
	MaxCmdsPerSecond int

	upgrader websocket.Upgrader
}

func NewServer(l *loop.Loop, logger *log.Logger) *Server {
	s := &Server{
		loop:             l,
		log:              logger,
		MaxCmdsPerSecond: DefaultMaxCmdsPerSecond,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  16 * 1024,
			WriteBufferSize: 64 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true }, // dev default
		},
	}
	return s
}

func (s *Server) Handler() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		conn, err := s.upgrader.Upgrade(rw, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		sessionID := s.handshake(ctx, conn)
		if sessionID == "" {
			return
		}
		s.logf("session %s connected from %s", sessionID, r.RemoteAddr)
		defer s.logf("session %s closed", sessionID)

		frames, unsubscribe := s.loop.Subscribe()
		defer unsubscribe()
		out := make(chan []byte, 32)

		// Writer goroutine. Results are queued; frames are latest-wins.
		go func() {
			for {
				var b []byte
				select {
				case <-ctx.Done():
					return
				case b = <-out:
				case f := <-frames:
					var err error
					if b, err = json.Marshal(protocol.NewFrameMsg(f)); err != nil {
						continue
					}
				}
				_ = conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
				if err := conn.WriteMessage(websocket.TextMessage, b); err != nil {
					cancel()
					return
				}
			}
		}()

		// Reader loop.
		limiter := &cmdWindow{window: time.Second, max: s.MaxCmdsPerSecond}
		for {
			_ = conn.SetReadDeadline(time.Now().Add(60 * time.Second))
			_, msg, err := conn.ReadMessage()
			if err != nil {
				cancel()
				return
			}
			var reply any
			if ok, retry := limiter.allow(time.Now()); ok {
				reply = s.handleMessage(ctx, msg)
			} else {
				reply = errorMsg(protocol.ErrRateLimited, "retry in "+retry.Round(time.Millisecond).String())
			}
			if reply == nil {
				continue
			}
			b, err := json.Marshal(reply)
			if err != nil {
				continue
			}
			select {
			case out <- b:
			case <-ctx.Done():
				return
			}
		}
	}
}

func (s *Server) handleMessage(ctx context.Context, msg []byte) any {
	base, err := protocol.DecodeBase(msg)
	if err != nil || base.Type != protocol.TypeCmd {
		return errorMsg(protocol.ErrProtoBadRequest, "expected CMD")
	}
	cmd, err := protocol.DecodeCmd(msg)
	if err != nil {
		return errorMsg(protocol.ErrBadRequest, err.Error())
	}
	res, err := s.loop.Submit(ctx, toCommand(cmd))
	if err != nil {
		return resultMsg(cmd.ID, loop.Result{Err: err})
	}
	return resultMsg(cmd.ID, res)
}

func toCommand(m protocol.CmdMsg) loop.Command {
	c := loop.Command{Op: loop.Op(m.Op), Tool: -1}
	if m.Tool != nil {
		c.Tool = *m.Tool
	}
	if m.Pos != nil {
		c.Pos = *m.Pos
	}
	return c
}

func resultMsg(id string, res loop.Result) protocol.ResultMsg {
	m := protocol.ResultMsg{
		Type:            protocol.TypeResult,
		ProtocolVersion: protocol.Version,
		ID:              id,
		OK:              res.OK(),
		Rotation:        res.Rotation,
		Text:            res.Text,
		Inventory:       res.Inventory,
		Selected:        res.Selected,
	}
	if res.Err != nil {
		m.Code = protocol.CodeFor(res.Err)
		m.Message = res.Err.Error()
	}
	return m
}

func errorMsg(code, message string) protocol.ErrorMsg {
	return protocol.ErrorMsg{
		Type:            protocol.TypeError,
		ProtocolVersion: protocol.Version,
		Code:            code,
		Message:         message,
	}
}

func (s *Server) handshake(ctx context.Context, conn *websocket.Conn) (sessionID string) {
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		return ""
	}

	base, err := protocol.DecodeBase(msg)
	if err != nil || base.Type != protocol.TypeHello {
		closeWith(conn, "expected HELLO")
		return ""
	}
	hello, err := protocol.DecodeHello(msg)
	if err != nil || hello.ProtocolVersion != protocol.Version {
		closeWith(conn, "bad HELLO")
		return ""
	}

	welcome := protocol.WelcomeMsg{
		Type:            protocol.TypeWelcome,
		ProtocolVersion: protocol.Version,
		SessionID:       uuid.NewString(),
	}
	err = s.loop.Do(ctx, func(w *world.World) {
		width, height := w.Size()
		welcome.World = protocol.WorldParams{
			Width:      width,
			Height:     height,
			TileSize:   w.TileSize(),
			TickRateHz: s.loop.TickRateHz(),
		}
		welcome.Tools = w.Tools()
		welcome.Terrain = make([]protocol.TileOre, 0, width*height)
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				c, _ := w.TileAt(model.Position{X: x, Y: y})
				welcome.Terrain = append(welcome.Terrain, protocol.TileOre{Iron: c.IronOre, Coal: c.CoalOre})
			}
		}
	})
	if err != nil {
		return ""
	}
	if err := writeJSON(conn, welcome); err != nil {
		return ""
	}
	return welcome.SessionID
}

func closeWith(conn *websocket.Conn, reason string) {
	_ = conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.ClosePolicyViolation, reason), time.Now().Add(time.Second))
}

func writeJSON(conn *websocket.Conn, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_ = conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
	return conn.WriteMessage(websocket.TextMessage, b)
}

func (s *Server) logf(format string, args ...any) {
	if s.log != nil {
		s.log.Printf(format, args...)
	}
}
