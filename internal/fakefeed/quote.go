package fakefeed

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-broadcast-datafeed/internal/logger"
	"github.com/MKhiriev/go-broadcast-datafeed/internal/utils"
	"github.com/MKhiriev/go-broadcast-datafeed/models"
)

func (s *Server) quote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid quote body")
		writeFailure(w, err, http.StatusBadRequest)
		return
	}
	if len(req.Symbols) == 0 {
		writeFailure(w, ErrNoSymbols, http.StatusBadRequest)
		return
	}

	data := s.lookupQuotes(req.Symbols, req.Fields)
	_, _ = utils.WriteJSON(w, map[string]any{"data": data}, http.StatusOK)
}
