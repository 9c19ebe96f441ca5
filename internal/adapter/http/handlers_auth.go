// Package adapthttp implements the HTTP adapter for the application.
package adapthttp

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/Tarsisbs/Backend-APP-TCC/internal/app"
	"github.com/Tarsisbs/Backend-APP-TCC/internal/domain"
)

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	// "/" on a ServeMux catches everything without a better match.
	if r.URL.Path != "/" {
		writeError(w, http.StatusNotFound, "rota não encontrada")
		return
	}
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "método não permitido")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "env": s.env})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "método não permitido")
		return
	}

	var req struct {
		Email string `json:"email"`
		Senha string `json:"senha"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "email e senha são obrigatórios")
		return
	}

	token, name, err := s.auth.Login(r.Context(), req.Email, req.Senha)
	switch {
	case errors.Is(err, app.ErrMissingFields):
		writeError(w, http.StatusBadRequest, "email e senha são obrigatórios")
	case errors.Is(err, app.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "Credenciais inválidas")
	case err != nil:
		log.Printf("login: %v", err)
		writeError(w, http.StatusInternalServerError, "Erro interno")
	default:
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"token":   token,
			"nome":    name,
		})
	}
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "método não permitido")
		return
	}

	var req struct {
		Nome  string `json:"nome"`
		Email string `json:"email"`
		Senha string `json:"senha"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Preencha nome, email e senha")
		return
	}

	err := s.auth.Register(r.Context(), req.Nome, req.Email, req.Senha)
	switch {
	case errors.Is(err, app.ErrMissingFields):
		writeError(w, http.StatusBadRequest, "Preencha nome, email e senha")
	case errors.Is(err, domain.ErrEmailTaken):
		writeError(w, http.StatusBadRequest, "Email já cadastrado")
	case err != nil:
		log.Printf("register: %v", err)
		writeError(w, http.StatusInternalServerError, "Erro interno no servidor")
	default:
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"message": "Usuário cadastrado com sucesso!",
		})
	}
}

// handleMe echoes the verified token claim without touching the store, so the
// name it reports is the one captured at login time.
func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "método não permitido")
		return
	}

	claim, ok := claimFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Não autorizado")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"user": claim})
}

// handleProfile serves /usuarios/me and /perfil: a fresh store read projected
// to id, nome and email, never the verifier.
func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "método não permitido")
		return
	}

	claim, ok := claimFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Não autorizado")
		return
	}

	user, err := s.auth.Profile(r.Context(), claim.ID)
	switch {
	case errors.Is(err, app.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "Usuário não encontrado")
	case err != nil:
		log.Printf("profile: %v", err)
		writeError(w, http.StatusInternalServerError, "Erro interno")
	default:
		writeJSON(w, http.StatusOK, map[string]any{
			"id":    user.ID,
			"nome":  user.Name,
			"email": user.Email,
		})
	}
}
