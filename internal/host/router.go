package host

import (
	"encoding/json"
	"net/http"

	"houndfall/internal/input"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// wireInputFrame is input.RawFrame's JSON wire shape (HTTP body and
// WebSocket message), kept as its own type rather than exporting
// input.RawFrame's json tags — the core package stays ignorant of
// wire formats per spec.md §6 ("the contract is the signatures and
// semantics", not a particular encoding).
type wireInputFrame struct {
	MoveX    float32 `json:"moveX"`
	MoveY    float32 `json:"moveY"`
	Rolling  bool    `json:"rolling"`
	Jumping  bool    `json:"jumping"`
	Light    bool    `json:"light"`
	Heavy    bool    `json:"heavy"`
	Blocking bool    `json:"blocking"`
	Special  bool    `json:"special"`
}

func (f wireInputFrame) toRawFrame() input.RawFrame {
	return input.RawFrame{
		MoveX: f.MoveX, MoveY: f.MoveY,
		Rolling: f.Rolling, Jumping: f.Jumping,
		Light: f.Light, Heavy: f.Heavy,
		Blocking: f.Blocking, Special: f.Special,
	}
}

// newRouter builds the reference shell's HTTP surface. Pure: no
// goroutines started, no listeners opened, mirroring fight-club-go's
// NewRouter ("This function is PURE... safe to use in tests with
// httptest.NewServer").
func (s *Server) newRouter() *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Post("/init", s.metrics.instrument("/api/init", s.handleInit))
		r.Post("/reset", s.metrics.instrument("/api/reset", s.handleReset))
		r.Post("/character", s.metrics.instrument("/api/character", s.handleSetCharacter))
		r.Post("/input", s.metrics.instrument("/api/input", s.handleSetInput))
		r.Get("/snapshot", s.metrics.instrument("/api/snapshot", s.handleSnapshot))
		r.Get("/diagnostics", s.metrics.instrument("/api/diagnostics", s.handleDiagnostics))

		r.Route("/shell", func(r chi.Router) {
			r.Post("/commit-choice", s.metrics.instrument("/api/shell/commit-choice", s.handleCommitChoice))
			r.Post("/buy-item", s.metrics.instrument("/api/shell/buy-item", s.handleBuyItem))
			r.Post("/reroll", s.metrics.instrument("/api/shell/reroll", s.handleReroll))
			r.Post("/escape-risk", s.metrics.instrument("/api/shell/escape-risk", s.handleEscapeRisk))
			r.Post("/miniboss-damage", s.metrics.instrument("/api/shell/miniboss-damage", s.handleMinibossDamage))
			r.Get("/status", s.metrics.instrument("/api/shell/status", s.handleShellStatus))
		})
	})

	r.Get("/ws", s.wsHub.handleConn(s.queueInput))
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.Write([]byte("ok")) })

	return r
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}

type initRequest struct {
	Seed   uint32 `json:"seed"`
	Weapon uint32 `json:"weapon"`
}

func (s *Server) handleInit(w http.ResponseWriter, r *http.Request) {
	var req initRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errors.Wrap(err, "decoding init request"))
		return
	}

	s.mu.Lock()
	s.core.InitRun(req.Seed, req.Weapon)
	s.tick = 0
	token := s.sessions.NewSession()
	s.mu.Unlock()

	writeJSON(w, map[string]string{"session": token.String()})
}

type resetRequest struct {
	Seed uint32 `json:"seed"`
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	var req resetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errors.Wrap(err, "decoding reset request"))
		return
	}

	s.mu.Lock()
	s.core.ResetRun(req.Seed)
	s.tick = 0
	token := s.sessions.NewSession()
	s.mu.Unlock()

	writeJSON(w, map[string]string{"session": token.String()})
}

type characterRequest struct {
	Type uint32 `json:"type"`
}

func (s *Server) handleSetCharacter(w http.ResponseWriter, r *http.Request) {
	var req characterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errors.Wrap(err, "decoding character request"))
		return
	}

	s.mu.Lock()
	s.core.SetCharacterType(req.Type)
	s.mu.Unlock()

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSetInput(w http.ResponseWriter, r *http.Request) {
	var frame wireInputFrame
	if err := json.NewDecoder(r.Body).Decode(&frame); err != nil {
		writeError(w, http.StatusBadRequest, errors.Wrap(err, "decoding input frame"))
		return
	}
	s.queueInput(frame)
	w.WriteHeader(http.StatusNoContent)
}

// queueInput is the single entry point both HTTP POST /api/input and
// inbound WebSocket messages use to reach Core.SetPlayerInput, kept
// under the same lock the tick loop runs under (spec.md §5: "core
// owns its state exclusively").
func (s *Server) queueInput(frame wireInputFrame) {
	s.mu.Lock()
	s.core.SetPlayerInput(frame.toRawFrame())
	s.mu.Unlock()
}

func (s *Server) handleSnapshot(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	dto := buildSnapshotDTO(s.core, s.tick)
	s.mu.Unlock()
	writeJSON(w, dto)
}

func (s *Server) handleDiagnostics(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	events := s.core.DrainDiagnostics()
	counts := map[string]uint64{
		"invalidWolfId": s.core.GetInvalidWolfIDCount(),
		"invalidPackId": s.core.GetInvalidPackIDCount(),
		"invalidBodyId": s.core.GetInvalidBodyIDCount(),
		"dropped":       s.core.GetDiagnosticsDroppedCount(),
	}
	s.mu.Unlock()
	writeJSON(w, map[string]interface{}{"events": events, "counts": counts})
}

type choiceRequest struct {
	ID uint32 `json:"id"`
}

func (s *Server) handleCommitChoice(w http.ResponseWriter, r *http.Request) {
	var req choiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errors.Wrap(err, "decoding choice request"))
		return
	}
	s.shell.CommitChoice(req.ID)
	w.WriteHeader(http.StatusNoContent)
}

type itemRequest struct {
	Index uint32 `json:"index"`
}

func (s *Server) handleBuyItem(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errors.Wrap(err, "decoding item request"))
		return
	}
	s.shell.BuyShopItem(req.Index)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleReroll(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, map[string]uint32{"rerollCount": s.shell.RerollShopItems()})
}

func (s *Server) handleEscapeRisk(w http.ResponseWriter, _ *http.Request) {
	s.shell.EscapeRisk()
	w.WriteHeader(http.StatusNoContent)
}

type minibossDamageRequest struct {
	Amount uint32 `json:"amount"`
}

func (s *Server) handleMinibossDamage(w http.ResponseWriter, r *http.Request) {
	var req minibossDamageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errors.Wrap(err, "decoding miniboss damage request"))
		return
	}
	writeJSON(w, map[string]uint32{"totalDamage": s.shell.ApplyMinibossDamage(req.Amount)})
}

func (s *Server) handleShellStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, s.shell.Snapshot())
}
