package api

import (
	"errors"
	"net/http"

	"github.com/ayusman/mudra/internal/store"
)

// Response types

type cursorSampleResponse struct {
	Seq       int     `json:"seq"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Pinch     bool    `json:"pinch"`
	CreatedAt string  `json:"created_at"`
}

type listCursorResponse struct {
	Samples []cursorSampleResponse `json:"samples"`
}

type fingerCountResponse struct {
	Seq        int    `json:"seq"`
	Handedness string `json:"handedness"`
	Count      int    `json:"count"`
	CreatedAt  string `json:"created_at"`
}

type listFingersResponse struct {
	Counts []fingerCountResponse `json:"counts"`
}

// verifySession confirms the session exists, writing the error response
// itself when it does not.
func (h *SessionsHandler) verifySession(w http.ResponseWriter, id string) bool {
	if _, err := h.store.Sessions().GetByID(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Session not found")
		} else {
			writeError(w, http.StatusInternalServerError, "Failed to verify session")
		}
		return false
	}
	return true
}

// listCursor handles GET /api/sessions/{id}/cursor.
func (h *SessionsHandler) listCursor(w http.ResponseWriter, r *http.Request, id string) {
	if !h.verifySession(w, id) {
		return
	}

	samples, err := h.store.Cursors().ListBySession(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list cursor samples")
		return
	}

	response := listCursorResponse{
		Samples: make([]cursorSampleResponse, 0, len(samples)),
	}
	for _, s := range samples {
		response.Samples = append(response.Samples, cursorSampleResponse{
			Seq:       s.Seq,
			X:         s.X,
			Y:         s.Y,
			Pinch:     s.Pinch,
			CreatedAt: s.CreatedAt.Format(timeLayout),
		})
	}

	writeJSON(w, http.StatusOK, response)
}

// listFingers handles GET /api/sessions/{id}/fingers.
func (h *SessionsHandler) listFingers(w http.ResponseWriter, r *http.Request, id string) {
	if !h.verifySession(w, id) {
		return
	}

	counts, err := h.store.Fingers().ListBySession(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list finger counts")
		return
	}

	response := listFingersResponse{
		Counts: make([]fingerCountResponse, 0, len(counts)),
	}
	for _, c := range counts {
		response.Counts = append(response.Counts, fingerCountResponse{
			Seq:        c.Seq,
			Handedness: c.Handedness,
			Count:      c.Count,
			CreatedAt:  c.CreatedAt.Format(timeLayout),
		})
	}

	writeJSON(w, http.StatusOK, response)
}
