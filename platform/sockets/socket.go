// Package socket relays engine events to connected clients. All game logic
// lives in the engine; this layer only manages rooms and broadcasts.
package socket

import (
	"encoding/json"
	"net/http"
	"os"

	socketio "github.com/googollee/go-socket.io"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"github.com/DedS3t/monopoly-engine/platform/engine"
	"github.com/DedS3t/monopoly-engine/platform/events"
)

func CreateSocketIOServer(e *engine.Engine, bus *events.Bus) {
	server, err := socketio.NewServer(nil)
	if err != nil {
		panic(err)
	}

	bus.Subscribe(func(gameID string, event string, payload interface{}) {
		data, err := json.Marshal(payload)
		if err != nil {
			logrus.WithError(err).WithField("event", event).Error("failed marshaling event payload")
			return
		}
		server.BroadcastToRoom("/", gameID, event, string(data))
	})

	server.OnConnect("/", func(s socketio.Conn) error {
		s.SetContext("")
		return nil
	})

	server.OnEvent("/", "join-game", func(s socketio.Conn, jsonStr string) {
		var result map[string]string
		json.Unmarshal([]byte(jsonStr), &result)

		id, ok := result["game_id"]
		if !ok {
			s.Emit("error-message", "game_id not passed")
			return
		}
		if _, err := e.GameState(id); err != nil {
			s.Emit("error-message", "Invalid game")
			return
		}
		s.Join(id)
		s.Emit("joined-game", id)
	})

	server.OnEvent("/", "leave-game", func(s socketio.Conn, jsonStr string) {
		var result map[string]string
		json.Unmarshal([]byte(jsonStr), &result)
		s.Leave(result["game_id"])
	})

	server.OnError("/", func(s socketio.Conn, err error) {
		logrus.WithError(err).Error("socket error")
	})

	server.OnDisconnect("/", func(s socketio.Conn, reason string) {
		s.LeaveAll()
	})

	go server.Serve()
	defer server.Close()

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{os.Getenv("CLIENT_ORIGIN")},
		AllowCredentials: true,
	})

	mux := http.NewServeMux()
	mux.Handle("/socket.io/", server)
	http.ListenAndServe(":8000", c.Handler(mux))
}
