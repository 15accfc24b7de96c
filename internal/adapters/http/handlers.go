package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nicholasprowse/sudoku-solver/internal/domain"
	"github.com/nicholasprowse/sudoku-solver/internal/solver"
	"github.com/nicholasprowse/sudoku-solver/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/solve", h.handleSolve)
	mux.HandleFunc("/api/validate", h.handleValidate)
	mux.HandleFunc("/api/hint", h.handleHint)
	mux.HandleFunc("/api/save", h.handleSave)
	mux.HandleFunc("/api/load", h.handleLoad)
	mux.HandleFunc("/api/list", h.handleList)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func requirePost(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return false
	}
	return true
}

// ---- Solve ----

type solveReq struct {
	Board [9][9]uint8 `json:"board"`
}

type solveResp struct {
	Board      *domain.Board `json:"board,omitempty"`
	DurationMs int64         `json:"durationMs,omitempty"`
	Nodes      int           `json:"nodes,omitempty"`
	Error      string        `json:"error,omitempty"`
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	var req solveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, solveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	b := &domain.Board{Values: req.Board}
	out, st, err := h.UC.Solve(r.Context(), b)
	if errors.Is(err, solver.ErrUnsolvable) {
		writeJSON(w, http.StatusUnprocessableEntity, solveResp{Error: err.Error(), Nodes: st.Nodes})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, solveResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, solveResp{
		Board:      out,
		DurationMs: st.Duration.Milliseconds(),
		Nodes:      st.Nodes,
	})
}

// ---- Validate ----

type validateReq struct {
	Board [9][9]uint8 `json:"board"`
}
type validateResp struct {
	OK        bool               `json:"ok"`
	Conflicts []domain.CellCoord `json:"conflicts,omitempty"`
	Error     string             `json:"error,omitempty"`
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	var req validateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, validateResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	ok, conflicts, err := h.UC.Validate(r.Context(), &domain.Board{Values: req.Board})
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, validateResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, validateResp{OK: ok, Conflicts: conflicts})
}

// ---- Hint ----

type hintReq struct {
	Board [9][9]uint8 `json:"board"`
}
type hintResp struct {
	Found bool        `json:"found"`
	Hint  domain.Hint `json:"hint,omitempty"`
	Error string      `json:"error,omitempty"`
}

func (h *Handler) handleHint(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	var req hintReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, hintResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	hint, found, err := h.UC.Hint(r.Context(), &domain.Board{Values: req.Board}, domain.StrategySingles)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, hintResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, hintResp{Found: found, Hint: hint})
}

// ---- Persistence ----

type saveResp struct {
	ID    string `json:"id,omitempty"`
	Error string `json:"error,omitempty"`
}

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	var p domain.Puzzle
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeJSON(w, http.StatusBadRequest, saveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	if err := h.UC.Save(r.Context(), &p); err != nil {
		writeJSON(w, http.StatusInternalServerError, saveResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, saveResp{ID: p.ID})
}

func (h *Handler) handleLoad(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing id"})
		return
	}
	p, err := h.UC.Load(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	metas, err := h.UC.List(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if metas == nil {
		metas = []domain.PuzzleMeta{}
	}
	writeJSON(w, http.StatusOK, metas)
}
