package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/matzehuels/mandelzoom/pkg/errors"
	"github.com/matzehuels/mandelzoom/pkg/session"
	"github.com/matzehuels/mandelzoom/pkg/view"
)

// handleWebsocket streams frames for one session. The client sends Event
// objects as JSON text messages; each is answered with a binary PNG frame,
// or a JSON error object for malformed or rejected events, after which the
// stream continues. The first frame is sent immediately after the upgrade.
func (s *Server) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	sess, err := s.session(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: s.cfg.OriginPatterns,
	})
	if err != nil {
		s.logger.Warn("websocket accept failed", "id", sess.ID, "err", err)
		return
	}
	defer c.CloseNow()

	s.logger.Debug("websocket opened", "id", sess.ID)
	err = s.stream(r.Context(), c, sess)
	switch websocket.CloseStatus(err) {
	case websocket.StatusNormalClosure, websocket.StatusGoingAway:
		s.logger.Debug("websocket closed", "id", sess.ID)
		return
	}
	if err != nil && r.Context().Err() == nil {
		s.logger.Debug("websocket ended", "id", sess.ID, "err", err)
	}
	c.Close(websocket.StatusNormalClosure, "")
}

func (s *Server) stream(ctx context.Context, c *websocket.Conn, sess *session.Session) error {
	if err := sendFrame(ctx, c, sess); err != nil {
		return err
	}
	for {
		_, data, err := c.Read(ctx)
		if err != nil {
			return err
		}
		var e Event
		if err := json.Unmarshal(data, &e); err != nil {
			err = errors.New(errors.ErrCodeInvalidEvent, "malformed event: %v", err)
			if err := wsjson.Write(ctx, c, bodyFor(err)); err != nil {
				return err
			}
			continue
		}
		err = sess.Do(func(v *view.View) error {
			_, err := apply(v, e)
			return err
		})
		if err != nil {
			if err := wsjson.Write(ctx, c, bodyFor(err)); err != nil {
				return err
			}
			continue
		}
		if err := sendFrame(ctx, c, sess); err != nil {
			return err
		}
	}
}

func sendFrame(ctx context.Context, c *websocket.Conn, sess *session.Session) error {
	data, err := sessionFrame(ctx, sess)
	if err != nil {
		return err
	}
	return c.Write(ctx, websocket.MessageBinary, data)
}
