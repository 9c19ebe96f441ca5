package adapthttp

import (
	"log"
	"net/http"
)

func (s *Server) handleNews(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "método não permitido")
		return
	}

	items, err := s.listings.News(r.Context())
	if err != nil {
		log.Printf("noticias: %v", err)
		writeError(w, http.StatusInternalServerError, "Erro ao buscar notícias")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleCalendar(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "método não permitido")
		return
	}

	entries, err := s.listings.Calendar(r.Context())
	if err != nil {
		log.Printf("calendario: %v", err)
		writeError(w, http.StatusInternalServerError, "Erro ao buscar calendário")
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleCashFlow(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "método não permitido")
		return
	}

	entries, err := s.listings.CashFlow(r.Context())
	if err != nil {
		log.Printf("fluxo_caixa: %v", err)
		writeError(w, http.StatusInternalServerError, "Erro ao buscar fluxo de caixa")
		return
	}
	writeJSON(w, http.StatusOK, entries)
}
