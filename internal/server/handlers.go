package server

import (
	"bytes"
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/mandelzoom/pkg/errors"
	"github.com/matzehuels/mandelzoom/pkg/escape"
	"github.com/matzehuels/mandelzoom/pkg/export"
	"github.com/matzehuels/mandelzoom/pkg/plane"
	"github.com/matzehuels/mandelzoom/pkg/session"
	"github.com/matzehuels/mandelzoom/pkg/view"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// handleRender serves a stateless frame described by query parameters.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	p, err := s.paramsFromQuery(r.URL.Query())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	img, err := export.Render(r.Context(), p, export.Options{Format: export.FormatPNG, Workers: s.cfg.Workers})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var buf bytes.Buffer
	if err := export.Encode(&buf, img, export.FormatPNG, 0); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeImage(w, export.FormatPNG.ContentType(), buf.Bytes())
}

// paramsFromQuery reads depth, width, height and either region or
// minX/minY/maxX/maxY, falling back to the server defaults.
func (s *Server) paramsFromQuery(q url.Values) (escape.Params, error) {
	var p escape.Params
	var err error

	if p.MaxDepth, err = intParam(q, "depth", s.cfg.Depth); err != nil {
		return p, err
	}
	if p.Width, err = intParam(q, "width", s.cfg.Width); err != nil {
		return p, err
	}

	p.Window = s.cfg.Home
	if name := q.Get("region"); name != "" {
		lm, err := plane.LookupLandmark(name)
		if err != nil {
			return p, err
		}
		p.Window = lm.Window
	}
	for _, f := range []struct {
		name string
		dst  *float64
	}{
		{"minX", &p.Window.MinX},
		{"minY", &p.Window.MinY},
		{"maxX", &p.Window.MaxX},
		{"maxY", &p.Window.MaxY},
	} {
		if *f.dst, err = floatParam(q, f.name, *f.dst); err != nil {
			return p, err
		}
	}
	if err := plane.Validate(p.Window); err != nil {
		return p, err
	}

	if p.Height, err = intParam(q, "height", 0); err != nil {
		return p, err
	}
	if p.Height == 0 && p.Width > 0 {
		p.Height = plane.HeightFor(p.Width, p.Window)
	}
	return p, p.Validate()
}

func intParam(q url.Values, name string, def int) (int, error) {
	raw := q.Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidInput, "%s: %q is not an integer", name, raw)
	}
	return v, nil
}

func floatParam(q url.Values, name string, def float64) (float64, error) {
	raw := q.Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidWindow, "%s: %q is not a number", name, raw)
	}
	return v, nil
}

func (s *Server) handleRegions(w http.ResponseWriter, r *http.Request) {
	names := plane.LandmarkNames()
	out := make([]plane.Landmark, 0, len(names))
	for _, name := range names {
		out = append(out, plane.Landmarks[name])
	}
	writeJSON(w, http.StatusOK, out)
}

// createSessionRequest is the body of POST /api/sessions. Zero fields take
// the server defaults; a zero height follows the window's aspect ratio.
type createSessionRequest struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Depth  int    `json:"depth"`
	Region string `json:"region"`
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if r.ContentLength != 0 {
		if err := decodeJSON(w, r, &req); err != nil {
			s.writeError(w, r, err)
			return
		}
	}
	if req.Width == 0 {
		req.Width = s.cfg.Width
	}
	if req.Depth == 0 {
		req.Depth = s.cfg.Depth
	}
	if err := errors.ValidateDepth(req.Depth); err != nil {
		s.writeError(w, r, err)
		return
	}
	window := s.cfg.Home
	if req.Region != "" {
		lm, err := plane.LookupLandmark(req.Region)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		window = lm.Window
	}
	height := req.Height
	if height == 0 {
		height = plane.HeightFor(max(req.Width, 1), window)
	}
	if err := errors.ValidateCanvas(req.Width, height); err != nil {
		s.writeError(w, r, err)
		return
	}

	v := s.newView(req.Width, height, req.Depth)
	if req.Region != "" {
		if err := v.SetWindow(window); err != nil {
			s.writeError(w, r, err)
			return
		}
	}

	sess := session.New(v, s.cfg.SessionTTL)
	if err := s.store.Set(r.Context(), sess); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.logger.Debug("session created", "id", sess.ID, "size", req.Width, "depth", req.Depth)
	writeJSON(w, http.StatusCreated, sess.State())
}

// session resolves the {id} URL parameter.
func (s *Server) session(r *http.Request) (*session.Session, error) {
	return s.store.Get(r.Context(), chi.URLParam(r, "id"))
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.session(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sess.State())
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.session(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.store.Delete(r.Context(), sess.ID); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleFrame(w http.ResponseWriter, r *http.Request) {
	sess, err := s.session(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	data, err := sessionFrame(r.Context(), sess)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeImage(w, export.FormatPNG.ContentType(), data)
}

// sessionFrame draws the session's view with its selection outline and
// encodes it as PNG.
func sessionFrame(ctx context.Context, sess *session.Session) ([]byte, error) {
	var overlay export.Overlay
	sess.Do(func(v *view.View) error {
		v.Draw(ctx, &overlay)
		return nil
	})
	var buf bytes.Buffer
	if err := export.Encode(&buf, overlay.Image(), export.FormatPNG, 0); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// eventResponse is the session state after an input, plus whether it zoomed.
type eventResponse struct {
	session.State
	Zoomed bool `json:"zoomed"`
}

// update applies e to the session and writes the resulting state.
func (s *Server) update(w http.ResponseWriter, r *http.Request, e Event) {
	sess, err := s.session(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var resp eventResponse
	err = sess.Do(func(v *view.View) error {
		zoomed, err := apply(v, e)
		resp = eventResponse{State: sess.StateOf(v), Zoomed: zoomed}
		return err
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if resp.Zoomed {
		s.logger.Debug("session zoomed", "id", sess.ID, "window", resp.Window)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleEvent(w http.ResponseWriter, r *http.Request) {
	var e Event
	if err := decodeJSON(w, r, &e); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.update(w, r, e)
}

func (s *Server) handleDepth(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Depth int `json:"depth"`
	}
	if err := decodeJSON(w, r, &body); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.update(w, r, Event{Type: EventDepth, Depth: body.Depth})
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.update(w, r, Event{Type: EventReset})
}
