package marketplace

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Server exposes the marketplace HTTP API over a listings store.
type Server struct {
	store *Store
	log   *zap.Logger
	http  *http.Server
}

// NewServer wires the routes and returns a server listening on port.
func NewServer(store *Store, logger *zap.Logger, port string) *Server {
	s := &Server{
		store: store,
		log:   logger,
	}

	r := mux.NewRouter()

	r.HandleFunc("/api/health", s.handleHealth).Methods("GET")
	r.HandleFunc("/api/generate", s.handleGenerate).Methods("POST")
	r.HandleFunc("/api/metadata", s.handleMetadata).Methods("POST")

	r.HandleFunc("/api/marketplace", s.handleListings).Methods("GET")
	r.HandleFunc("/api/marketplace/sync", s.handleSync).Methods("POST")
	r.HandleFunc("/api/marketplace/update", s.handleUpdate).Methods("POST")
	r.HandleFunc("/api/marketplace/{id}", s.handleListing).Methods("GET")

	s.http = &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	return s
}

// Handler returns the route handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	return s.http.ListenAndServe()
}

// Stop stops the HTTP server.
func (s *Server) Stop(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Prompt string `json:"prompt"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Prompt == "" {
		writeError(w, http.StatusBadRequest, "Prompt is required")
		return
	}

	result := GenerateArt(req.Prompt)
	s.log.Info("generation request served",
		zap.String("name", result.ExtractedName),
		zap.String("price", result.ExtractedPrice))
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleMetadata(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name         string `json:"name"`
		Description  string `json:"description"`
		AiPrompt     string `json:"ai_prompt"`
		ModelVersion string `json:"model_version"`
		ImageURL     string `json:"image_url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" || req.AiPrompt == "" {
		writeError(w, http.StatusBadRequest, "Name and AI Prompt are required")
		return
	}

	writeJSON(w, http.StatusOK, BuildMetadata(req.Name, req.Description, req.AiPrompt, req.ModelVersion, req.ImageURL))
}

func (s *Server) handleListings(w http.ResponseWriter, r *http.Request) {
	listings, err := s.store.All()
	if err != nil {
		s.log.Error("failed to load listings", zap.Error(err))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, listings)
}

func (s *Server) handleListing(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	listing, ok, err := s.store.Get(id)
	if err != nil {
		s.log.Error("failed to load listing", zap.String("nft_id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "listing not found")
		return
	}
	writeJSON(w, http.StatusOK, listing)
}

type syncRequest struct {
	Listing
	Signature string `json:"signature"`
	Message   string `json:"message"`
	IsDemo    bool   `json:"is_demo"`
}

func (s *Server) handleSync(w http.ResponseWriter, r *http.Request) {
	var req syncRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if !s.authorize(w, req.Listing.Owner, req.Message, req.Signature, req.IsDemo) {
		return
	}

	if err := s.store.Upsert(req.Listing); err != nil {
		s.log.Error("failed to sync listing", zap.String("nft_id", req.NftID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.log.Info("listing synced", zap.String("nft_id", req.NftID), zap.String("owner", req.Owner))
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

type updateRequest struct {
	NftID     string `json:"nft_id"`
	Owner     string `json:"owner"`
	Price     string `json:"price"`
	Action    string `json:"action"`
	Signature string `json:"signature"`
	Message   string `json:"message"`
	IsDemo    bool   `json:"is_demo"`
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if !s.authorize(w, req.Owner, req.Message, req.Signature, req.IsDemo) {
		return
	}

	var err error
	switch req.Action {
	case "update_price":
		err = s.store.UpdatePrice(req.NftID, req.Owner, req.Price)
	case "delist":
		err = s.store.Delist(req.NftID, req.Owner)
	default:
		writeError(w, http.StatusBadRequest, "unknown action: "+req.Action)
		return
	}
	if err != nil {
		s.log.Error("failed to update listing", zap.String("nft_id", req.NftID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.log.Info("listing updated",
		zap.String("nft_id", req.NftID),
		zap.String("action", req.Action))
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// authorize enforces the signature gate on write endpoints. Demo requests
// skip verification. Returns false after writing the error response.
func (s *Server) authorize(w http.ResponseWriter, owner, message, signature string, isDemo bool) bool {
	if signature == "" || message == "" {
		writeError(w, http.StatusUnauthorized, "Authentication required: signature and message missing")
		return false
	}
	if isDemo {
		return true
	}
	valid, err := VerifySignature(owner, message, signature)
	if err != nil {
		s.log.Warn("signature verification failed", zap.String("owner", owner), zap.Error(err))
	}
	if !valid {
		writeError(w, http.StatusForbidden, "Security check failed: invalid signature")
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
