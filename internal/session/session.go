package session

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/helldraft/event-backend/internal/engine"
)

type Msg interface{ isSessionMsg() }

// StartEvent installs a fresh event state. The sender becomes the host.
// A second StartEvent supersedes whatever was active.
type StartEvent struct {
	EventID  string
	Event    engine.GameEvent
	ClientID string
}

func (StartEvent) isSessionMsg() {}

// ClearEvent drops the active event once the host has seen it complete.
type ClearEvent struct {
	ClientID string
}

func (ClearEvent) isSessionMsg() {}

// FromClient carries one engine command from a connected client.
type FromClient struct {
	ClientID string
	Cmd      engine.Command
}

func (FromClient) isSessionMsg() {}

type Join struct {
	ClientID string
	Name     string
	Outbox   chan Outbound // where this client wants to receive updates
}

func (Join) isSessionMsg() {}

type Leave struct{ ClientID string }

func (Leave) isSessionMsg() {}

type Shutdown struct{}

func (Shutdown) isSessionMsg() {}

type GetState struct {
	Reply chan View
}

func (GetState) isSessionMsg() {}

// Snapshot is the full replicated record plus a version counter. State
// is nil when no event is active.
type Snapshot struct {
	Version int
	State   *engine.EventState
}

// Outbound is one message to a connected client: a broadcast snapshot,
// or an error addressed to that client alone.
type Outbound struct {
	Snapshot *Snapshot
	Err      string
}

// View is a test-only reflection of internal state.
type View struct {
	Version    int
	NumClients int
	State      *engine.EventState
}

// Session is the single authoritative owner of one event's state. All
// mutations arrive as messages on the inbox and are applied in arrival
// order, so concurrent edits serialize instead of racing.
type Session struct {
	inbox   chan Msg
	state   *engine.EventState
	version int
	clients map[string]chan Outbound
	now     func() time.Time
	log     *zap.Logger
	ctx     context.Context
	cancel  context.CancelFunc
}

func New(parent context.Context, log *zap.Logger) *Session {
	ctx, cancel := context.WithCancel(parent)

	s := &Session{
		inbox:   make(chan Msg, 64), // Small buffer
		clients: make(map[string]chan Outbound),
		now:     time.Now,
		log:     log,
		ctx:     ctx,
		cancel:  cancel,
	}

	go s.loop()
	return s
}

// Inbox exposes the message channel so tests or the WS layer can send.
func (s *Session) Inbox() chan<- Msg { return s.inbox }

func (s *Session) loop() {
	for {
		select {
		case <-s.ctx.Done():
			s.shutdown()
			return

		case m := <-s.inbox:
			switch msg := m.(type) {
			case Join:
				// Register client + send current snapshot immediately
				s.clients[msg.ClientID] = msg.Outbox
				s.log.Info("client joined",
					zap.String("client", msg.ClientID),
					zap.String("name", msg.Name))
				snap := s.snapshot()
				select {
				case msg.Outbox <- Outbound{Snapshot: &snap}:
				default:
					// Outbox already full on join - drop them.
					close(msg.Outbox)
					delete(s.clients, msg.ClientID)
				}

			case Leave:
				delete(s.clients, msg.ClientID)

			case StartEvent:
				// While an event is still resolving, only its host may
				// supersede it.
				if s.state != nil && !s.state.IsComplete && msg.ClientID != s.state.HostID {
					s.reject(msg.ClientID, engine.ErrNotHost.Error())
					break
				}
				state := engine.NewEventState(msg.EventID, msg.Event, msg.ClientID, s.now())
				s.state = &state
				s.version++
				s.log.Info("event started",
					zap.String("event_id", msg.EventID),
					zap.String("host", msg.ClientID))
				s.broadcast()

			case ClearEvent:
				if s.state == nil {
					s.reject(msg.ClientID, engine.ErrNoActiveEvent.Error())
					break
				}
				if msg.ClientID != s.state.HostID {
					s.reject(msg.ClientID, engine.ErrNotHost.Error())
					break
				}
				s.state = nil
				s.version++
				s.broadcast()

			case FromClient:
				if s.state == nil {
					s.reject(msg.ClientID, engine.ErrNoActiveEvent.Error())
					break
				}
				cmd := msg.Cmd
				cmd.ClientID = msg.ClientID
				newState, err := engine.Apply(*s.state, cmd, s.now())
				if err != nil {
					s.log.Debug("command rejected",
						zap.String("client", msg.ClientID),
						zap.String("cmd", string(cmd.Type)),
						zap.Error(err))
					s.reject(msg.ClientID, err.Error())
					break
				}
				s.state = &newState
				s.version++
				s.broadcast()

			case GetState:
				msg.Reply <- View{
					Version:    s.version,
					NumClients: len(s.clients),
					State:      s.state,
				}

			case Shutdown:
				s.shutdown()
				return
			}
		}
	}
}

func (s *Session) snapshot() Snapshot {
	return Snapshot{Version: s.version, State: s.state}
}

func (s *Session) reject(clientID, reason string) {
	ch, ok := s.clients[clientID]
	if !ok {
		return
	}
	select {
	case ch <- Outbound{Err: reason}:
	default:
		close(ch)
		delete(s.clients, clientID)
	}
}

func (s *Session) broadcast() {
	snap := s.snapshot()
	for id, ch := range s.clients {
		select {
		case ch <- Outbound{Snapshot: &snap}:
			// ok
		default:
			// Client is slow/full - drop them.
			close(ch)
			delete(s.clients, id)
		}
	}
}

func (s *Session) shutdown() {
	for id, ch := range s.clients {
		close(ch) // Tell client no more updates
		delete(s.clients, id)
	}
	s.cancel()
}
