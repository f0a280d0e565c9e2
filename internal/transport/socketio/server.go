// Package socketio provides the Socket.io session channel. Each connected
// client gets its own session holding cart, playback, and filter state; the
// server pushes the session state and the visible catalog after every change.
package socketio

import (
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/zishang520/socket.io/servers/socket/v3"
	"github.com/zishang520/socket.io/v3/pkg/types"

	"github.com/beatvard/beatvard-backend/internal/domain/catalog"
	"github.com/beatvard/beatvard-backend/internal/domain/session"
)

// Server handles Socket.io connections and session events.
type Server struct {
	io      *socket.Server
	catalog *catalog.Catalog

	mu       sync.RWMutex
	sessions map[string]*session.Session
}

// NewServer creates a new Socket.io server over a catalog snapshot.
func NewServer(c *catalog.Catalog) (*Server, error) {
	opts := socket.DefaultServerOptions()
	opts.SetPingTimeout(20 * time.Second)
	opts.SetPingInterval(25 * time.Second)
	opts.SetCors(&types.Cors{
		Origin:      "*",
		Credentials: true,
	})

	server := socket.NewServer(nil, opts)

	s := &Server{
		io:       server,
		catalog:  c,
		sessions: make(map[string]*session.Session),
	}

	s.setupHandlers()

	return s, nil
}

// setupHandlers registers all Socket.io event handlers.
func (s *Server) setupHandlers() {
	s.io.On("connection", func(clients ...any) {
		client := clients[0].(*socket.Socket)
		clientID := string(client.Id())

		sess := session.New(s.catalog)

		log.Info().Str("id", clientID).Msg("Client connected")

		s.mu.Lock()
		s.sessions[clientID] = sess
		s.mu.Unlock()

		// Send initial state so the client can render immediately.
		go func() {
			time.Sleep(100 * time.Millisecond)
			s.pushState(client, sess)
			s.pushCatalog(client, sess)
		}()

		client.On("disconnect", func(args ...any) {
			reason := ""
			if len(args) > 0 {
				if r, ok := args[0].(string); ok {
					reason = r
				}
			}
			log.Info().Str("id", clientID).Str("reason", reason).Msg("Client disconnected")

			s.mu.Lock()
			delete(s.sessions, clientID)
			s.mu.Unlock()
		})

		client.On("getState", func(args ...any) {
			log.Debug().Str("id", clientID).Msg("getState")
			s.pushState(client, sess)
			s.pushCatalog(client, sess)
		})

		client.On("search", func(args ...any) {
			query, _ := eventString(args, "query")
			log.Debug().Str("id", clientID).Str("query", query).Msg("search")

			sess.SetQuery(query)
			s.pushCatalog(client, sess)
		})

		client.On("toggleTag", func(args ...any) {
			tag, ok := eventString(args, "tag")
			if !ok || tag == "" {
				s.pushError(client, "toggleTag requires a tag")
				return
			}
			log.Debug().Str("id", clientID).Str("tag", tag).Msg("toggleTag")

			sess.ToggleTag(tag)
			s.pushCatalog(client, sess)
		})

		client.On("togglePlay", func(args ...any) {
			beatID, ok := eventString(args, "id")
			if !ok || beatID == "" {
				s.pushError(client, "togglePlay requires a beat id")
				return
			}
			log.Debug().Str("id", clientID).Str("beat", beatID).Msg("togglePlay")

			if err := sess.TogglePlay(beatID); err != nil {
				log.Warn().Str("id", clientID).Err(err).Msg("togglePlay failed")
				s.pushError(client, err.Error())
				return
			}
			s.pushState(client, sess)
		})

		client.On("stop", func(args ...any) {
			log.Debug().Str("id", clientID).Msg("stop")
			sess.StopPlayback()
			s.pushState(client, sess)
		})

		client.On("addToCart", func(args ...any) {
			beatID, ok := eventString(args, "id")
			if !ok || beatID == "" {
				s.pushError(client, "addToCart requires a beat id")
				return
			}
			log.Debug().Str("id", clientID).Str("beat", beatID).Msg("addToCart")

			if err := sess.AddToCart(beatID); err != nil {
				log.Warn().Str("id", clientID).Err(err).Msg("addToCart failed")
				s.pushError(client, err.Error())
				return
			}
			s.pushState(client, sess)
		})
	})
}

// pushState emits the session state to one client.
func (s *Server) pushState(client *socket.Socket, sess *session.Session) {
	client.Emit("pushState", stateOf(sess))
}

// pushCatalog emits the filtered catalog to one client.
func (s *Server) pushCatalog(client *socket.Socket, sess *session.Session) {
	visible := sess.Visible()
	client.Emit("pushCatalog", map[string]any{
		"beats": visible,
		"total": len(visible),
	})
}

// pushError reports a failed operation to the client. An unknown id means
// the client and catalog are out of sync.
func (s *Server) pushError(client *socket.Socket, message string) {
	client.Emit("pushError", map[string]any{"message": message})
}

// stateOf builds the pushState payload for a session.
func stateOf(sess *session.Session) map[string]any {
	cart := sess.CartIDs()
	state := map[string]any{
		"cart":      cart,
		"cartCount": len(cart),
		"filter":    sess.Filter(),
	}
	if beat, ok := sess.NowPlaying(); ok {
		state["nowPlaying"] = beat
	} else {
		state["nowPlaying"] = nil
	}
	return state
}

// eventString extracts a string argument from an event payload. Clients send
// either a bare string or an object with a named field.
func eventString(args []any, key string) (string, bool) {
	if len(args) == 0 {
		return "", false
	}
	switch v := args[0].(type) {
	case string:
		return v, true
	case map[string]interface{}:
		if s, ok := v[key].(string); ok {
			return s, true
		}
	}
	return "", false
}

// SessionCount returns the number of connected sessions.
func (s *Server) SessionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// ServeHTTP implements http.Handler for the Socket.io server.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.io.ServeHandler(nil).ServeHTTP(w, r)
}

// Close shuts down the Socket.io server.
func (s *Server) Close() error {
	s.io.Close(nil)
	return nil
}
