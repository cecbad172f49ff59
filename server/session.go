package server

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/roomforge/dungeon"
	"github.com/katalvlaran/roomforge/grid"
	"github.com/katalvlaran/roomforge/registry"
	"github.com/katalvlaran/roomforge/spawn"
)

// WebSocket settings
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var (
	errNoLayout     = errors.New("server: no layout generated yet")
	errTooManyRooms = fmt.Errorf("server: room count must be at most %d", dungeon.MaxRooms)
)

// session is one websocket connection. Its dungeon state is only touched
// by readPump.
type session struct {
	srv  *Server
	conn *websocket.Conn
	send chan Response
	log  logrus.FieldLogger

	layout   *dungeon.Layout
	director *spawn.Director
	tracker  *dungeon.Tracker
	pending  []spawn.Placement
}

func newSession(srv *Server, conn *websocket.Conn) *session {
	return &session{
		srv:  srv,
		conn: conn,
		send: make(chan Response, 16),
		log:  srv.log.WithField("remote", conn.RemoteAddr().String()),
	}
}

// readPump decodes requests and queues one response per request.
func (s *session) readPump() {
	defer close(s.send)

	s.conn.SetReadLimit(maxMessageSize)
	if err := s.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		s.log.WithError(err).Warn("failed to set read deadline")
	}
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var req Request
		if err := s.conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.log.WithError(err).Warn("websocket read failed")
			}
			return
		}
		s.send <- s.handle(req)
	}
}

// writePump forwards responses and keeps the connection alive with pings.
func (s *session) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		if err := s.conn.Close(); err != nil {
			s.log.WithError(err).Debug("close failed")
		}
	}()

	for {
		select {
		case msg, ok := <-s.send:
			if err := s.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				s.log.WithError(err).Warn("failed to set write deadline")
			}
			if !ok {
				_ = s.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := s.conn.WriteJSON(msg); err != nil {
				s.log.WithError(err).Debug("write failed")
				return
			}
		case <-ticker.C:
			if err := s.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				s.log.WithError(err).Warn("failed to set ping deadline")
			}
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (s *session) handle(req Request) Response {
	switch req.Type {
	case TypeGenerate:
		return s.generate(req)
	case TypeEnter:
		return s.enter(req.Room)
	case TypeMove:
		return s.move(req.X, req.Y)
	default:
		return errorResponse(fmt.Errorf("server: unknown request type %q", req.Type))
	}
}

func (s *session) generate(req Request) Response {
	if req.Rooms > dungeon.MaxRooms {
		return errorResponse(errTooManyRooms)
	}
	seed := time.Now().UnixNano()
	if req.Seed != nil {
		seed = *req.Seed
	}
	opts := []dungeon.Option{
		dungeon.WithSeed(seed),
		dungeon.WithLogger(s.log),
		dungeon.WithBridgeIslands(req.Bridge),
	}
	if req.Rooms != 0 {
		opts = append(opts, dungeon.WithRooms(req.Rooms))
	}
	opts = append(opts, s.srv.opts...)

	g, err := dungeon.New(opts...)
	if err != nil {
		return errorResponse(err)
	}
	layout, err := g.Generate()
	if err != nil {
		return errorResponse(err)
	}

	director, err := spawn.NewDirector(layout, registry.New(grid.Origin), rand.New(rand.NewSource(seed)),
		spawn.SinkFunc(func(p spawn.Placement) { s.pending = append(s.pending, p) }),
		spawn.WithLogger(s.log), spawn.WithSafeRadius(g.Config().SafeRadius))
	if err != nil {
		return errorResponse(err)
	}
	s.layout = layout
	s.director = director
	s.tracker = dungeon.NewTracker(layout.CellSize(), director)
	s.pending = nil

	doc := layout.Document()
	return Response{Type: TypeLayout, Layout: &doc}
}

func (s *session) enter(room grid.Point) Response {
	if s.layout == nil {
		return errorResponse(errNoLayout)
	}
	if _, err := s.director.Populate(room); err != nil {
		return errorResponse(err)
	}
	return Response{Type: TypeSpawn, Room: &room, Entered: true, Placements: s.drain()}
}

func (s *session) move(x, y float64) Response {
	if s.layout == nil {
		return errorResponse(errNoLayout)
	}
	_, entered := s.tracker.Update(x, y)
	room := s.tracker.Current()
	return Response{Type: TypeMoved, Room: &room, Entered: entered, Placements: s.drain()}
}

func (s *session) drain() []spawn.Placement {
	out := s.pending
	s.pending = nil
	return out
}
