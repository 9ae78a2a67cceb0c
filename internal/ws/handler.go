package ws

import (
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"go.uber.org/zap"

	"github.com/helldraft/event-backend/internal/engine"
	"github.com/helldraft/event-backend/internal/hub"
	"github.com/helldraft/event-backend/internal/session"
	"github.com/helldraft/event-backend/internal/types"
)

func Handler(h *hub.Hub, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := r.URL.Query().Get("code")
		if code == "" {
			http.Error(w, "missing code", http.StatusBadRequest)
			return
		}

		reply := make(chan *session.Session, 1)
		h.Inbox() <- hub.GetSession{Code: code, Reply: reply}
		sess := <-reply
		if sess == nil {
			http.Error(w, "session not found", http.StatusNotFound)
			return
		}

		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			// In dev ONLY, you can loosen origin checks:
			// OriginPatterns: []string{"http://localhost:*", "http://127.0.0.1:*"},
		})
		if err != nil {
			log.Warn("websocket accept failed", zap.Error(err))
			return
		}
		defer conn.Close(websocket.StatusNormalClosure, "bye")

		clientID := r.URL.Query().Get("client")
		if clientID == "" {
			clientID = randID(6)
		}
		name := r.URL.Query().Get("name")

		out := make(chan session.Outbound, 8)
		sess.Inbox() <- session.Join{ClientID: clientID, Name: name, Outbox: out}
		defer func() { sess.Inbox() <- session.Leave{ClientID: clientID} }()

		// Writer goroutine
		writeCtx, writeCancel := context.WithCancel(r.Context())
		defer writeCancel()
		go func() {
			for ob := range out {
				var msg types.ServerMessage
				if ob.Err != "" {
					msg = types.ServerMessage{Type: "Error", Error: ob.Err}
				} else {
					msg = types.ServerMessage{
						Type:    "StateSnapshot",
						Version: ob.Snapshot.Version,
						State:   ob.Snapshot.State,
					}
				}
				payload, _ := json.Marshal(msg)
				ctx, cancel := context.WithTimeout(writeCtx, 3*time.Second)
				_ = conn.Write(ctx, websocket.MessageText, payload)
				cancel()
			}
		}()

		// Reader loop
		for {
			ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
			_, data, err := conn.Read(ctx)
			cancel()
			if err != nil {
				// Treat clean close/going-away as normal:
				switch websocket.CloseStatus(err) {
				case websocket.StatusNormalClosure, websocket.StatusGoingAway:
					return
				}
				// Otherwise, just exit (session.Leave in defer):
				return
			}

			var cm types.ClientMessage
			if err := json.Unmarshal(data, &cm); err != nil {
				_ = conn.Write(r.Context(), websocket.MessageText,
					[]byte(`{"type":"Error","error":"bad json"}`))
				continue
			}

			msg, ok := toSessionMsg(cm, clientID)
			if !ok {
				_ = conn.Write(r.Context(), websocket.MessageText,
					[]byte(`{"type":"Error","error":"unknown type"}`))
				continue
			}

			sess.Inbox() <- msg
		}
	}
}

// toSessionMsg translates one wire message into a session message.
// StartEvent and ClearEvent are session-level controls; everything else
// becomes an engine command.
func toSessionMsg(m types.ClientMessage, clientID string) (session.Msg, bool) {
	switch m.Type {
	case "StartEvent":
		ev, ok := engine.LookupEvent(m.EventID)
		if !ok {
			return nil, false
		}
		return session.StartEvent{EventID: m.EventID, Event: ev, ClientID: clientID}, true
	case "ClearEvent":
		return session.ClearEvent{ClientID: clientID}, true
	}

	cmd, ok := toCommand(m)
	if !ok {
		return nil, false
	}
	return session.FromClient{ClientID: clientID, Cmd: cmd}, true
}

func toCommand(m types.ClientMessage) (engine.Command, bool) {
	cmd := engine.Command{
		PlayerID:          m.PlayerID,
		PlayerName:        m.PlayerName,
		PlayerSlot:        m.PlayerSlot,
		DecisionType:      engine.DecisionType(m.DecisionType),
		SelectedItem:      m.SelectedItem,
		StratagemSlot:     m.StratagemSlot,
		Confirmed:         m.Confirmed,
		SourcePlayerIndex: m.SourcePlayerIndex,
		TargetPlayerIndex: m.TargetPlayerIndex,
		SourceStratagem:   m.SourceStratagem,
		TargetStratagem:   m.TargetStratagem,
		BoosterPool:       m.BoosterPool,
		Booster:           m.Booster,
		WaitingPlayers:    m.WaitingPlayers,
		DraftType:         m.DraftType,
		Candidates:        m.Candidates,
		Seats:             m.Seats,
		Item:              m.Item,
		Faction:           m.Faction,
		Subfaction:        m.Subfaction,
		Message:           m.Message,
	}
	if m.PlayerIndex != nil {
		cmd.PlayerIndex = *m.PlayerIndex
	}
	if m.ChoiceIndex != nil {
		cmd.ChoiceIndex = *m.ChoiceIndex
	}

	switch m.Type {
	case "SelectPlayer":
		cmd.Type = engine.CmdSelectPlayer
	case "SelectChoice":
		cmd.Type = engine.CmdSelectChoice
	case "CastVote":
		cmd.Type = engine.CmdCastVote
	case "RemoveVote":
		cmd.Type = engine.CmdRemoveVote
	case "SetDetails":
		cmd.Type = engine.CmdSetDetails
	case "ChooseBooster":
		cmd.Type = engine.CmdChooseBooster
	case "SubmitDecision":
		cmd.Type = engine.CmdSubmitDecision
	case "SetWaitingPlayers":
		cmd.Type = engine.CmdSetWaitingPlayers
	case "StartDraft":
		cmd.Type = engine.CmdStartDraft
	case "PickDraftItem":
		cmd.Type = engine.CmdPickDraftItem
	case "SetPendingFaction":
		cmd.Type = engine.CmdSetPendingFaction
	case "AdvanceStep":
		cmd.Type = engine.CmdAdvanceStep
	case "GoBack":
		cmd.Type = engine.CmdGoBack
	case "CompleteEvent":
		cmd.Type = engine.CmdCompleteEvent
	case "SetError":
		cmd.Type = engine.CmdSetError
	case "ClearError":
		cmd.Type = engine.CmdClearError
	default:
		return engine.Command{}, false
	}
	return cmd, true
}

func randID(length int) string {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	b := make([]byte, length)
	for i := range b {
		b[i] = charset[rand.Intn(len(charset))]
	}
	return string(b)
}
