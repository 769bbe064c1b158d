package bridgesrv

import (
	"encoding/json"
	"net/http"

	"github.com/avolkovs/vitrina/internal/bridge"
	"github.com/avolkovs/vitrina/internal/host/appinfo"
)

// Handlers never fail the caller: malformed input and internal errors
// degrade to the operation's safe default (empty string / false), matching
// the contract the isolated side relies on.

func (s *Server) handleGetEnv(w http.ResponseWriter, r *http.Request) {
	var req bridge.GetEnvRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	resp := bridge.GetEnvResponse{}
	for _, allowed := range bridge.AllowedEnvKeys {
		if req.Key == allowed {
			resp.Value = s.getenv(req.Key)
			break
		}
	}

	writeJSON(w, resp)
}

func (s *Server) handleSetSecureStorage(w http.ResponseWriter, r *http.Request) {
	var req bridge.SetSecureStorageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Key == "" {
		writeJSON(w, bridge.SetSecureStorageResponse{OK: false})
		return
	}

	if err := s.secure.Store(r.Context(), req.Key, req.Value); err != nil {
		s.logger.Warn(r.Context(), "secure storage set failed", "key", req.Key, "error", err)
		writeJSON(w, bridge.SetSecureStorageResponse{OK: false})
		return
	}

	writeJSON(w, bridge.SetSecureStorageResponse{OK: true})
}

func (s *Server) handleGetSecureStorage(w http.ResponseWriter, r *http.Request) {
	var req bridge.GetSecureStorageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, bridge.GetSecureStorageResponse{})
		return
	}

	value, found, err := s.secure.Retrieve(r.Context(), req.Key)
	if err != nil {
		s.logger.Warn(r.Context(), "secure storage get failed", "key", req.Key, "error", err)
		writeJSON(w, bridge.GetSecureStorageResponse{})
		return
	}

	writeJSON(w, bridge.GetSecureStorageResponse{Value: value, Found: found})
}

func (s *Server) handleDeleteSecureStorage(w http.ResponseWriter, r *http.Request) {
	var req bridge.DeleteSecureStorageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, bridge.DeleteSecureStorageResponse{OK: false})
		return
	}

	if err := s.secure.Delete(r.Context(), req.Key); err != nil {
		writeJSON(w, bridge.DeleteSecureStorageResponse{OK: false})
		return
	}

	writeJSON(w, bridge.DeleteSecureStorageResponse{OK: true})
}

func (s *Server) handleGetAppVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, bridge.GetAppVersionResponse{Version: appinfo.Version})
}

func (s *Server) handleGetAppPath(w http.ResponseWriter, r *http.Request) {
	var req bridge.GetAppPathRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	writeJSON(w, bridge.GetAppPathResponse{Path: appinfo.PathFor(req.Name)})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
