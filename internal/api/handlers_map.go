package api

import (
	"encoding/json"
	"net/http"

	"github.com/markmind/markmind/internal/export"
	"github.com/markmind/markmind/internal/layout"
	"github.com/markmind/markmind/internal/mindmap"
	"github.com/markmind/markmind/internal/transcode"
)

// maxMapBodyBytes bounds the JSON bodies of the synchronous map endpoints.
const maxMapBodyBytes = 4 << 20

type parseRequest struct {
	Text     string        `json:"text"`
	Previous *mindmap.Node `json:"previous,omitempty"`
}

type serializeRequest struct {
	Root *mindmap.Node `json:"root"`
}

type layoutRequest struct {
	Root    *mindmap.Node `json:"root"`
	OriginX *float64      `json:"origin_x,omitempty"`
	OriginY *float64      `json:"origin_y,omitempty"`
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	var req parseRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	root := transcode.Parse(req.Text)
	if req.Previous != nil {
		transcode.Reconcile(req.Previous, root)
	}

	writeJSON(w, http.StatusOK, map[string]any{"root": root})
}

func (s *Server) handleSerialize(w http.ResponseWriter, r *http.Request) {
	var req serializeRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if req.Root == nil {
		jsonError(w, "root is required", http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"markdown": transcode.Serialize(req.Root)})
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	root, originX, originY, ok := s.decodeLayoutRequest(w, r)
	if !ok {
		return
	}

	positioned := layout.LayoutAt(root, originX, originY, s.cfg.LayoutConfig())
	writeJSON(w, http.StatusOK, map[string]any{"layout": positioned})
}

func (s *Server) handleSVG(w http.ResponseWriter, r *http.Request) {
	root, originX, originY, ok := s.decodeLayoutRequest(w, r)
	if !ok {
		return
	}

	cfg := s.cfg.LayoutConfig()
	positioned := layout.LayoutAt(root, originX, originY, cfg)
	svg := export.SVG(positioned, cfg)

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write(svg)
}

func (s *Server) decodeLayoutRequest(w http.ResponseWriter, r *http.Request) (*mindmap.Node, float64, float64, bool) {
	var req layoutRequest
	if !s.decodeJSON(w, r, &req) {
		return nil, 0, 0, false
	}
	if req.Root == nil {
		jsonError(w, "root is required", http.StatusBadRequest)
		return nil, 0, 0, false
	}

	originX := s.cfg.OriginX
	if req.OriginX != nil {
		originX = *req.OriginX
	}
	originY := s.cfg.OriginY
	if req.OriginY != nil {
		originY = *req.OriginY
	}
	return req.Root, originX, originY, true
}

func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxMapBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}
