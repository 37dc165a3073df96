package httpserver

import (
	"net/http"

	"github.com/OliveiraNt/kafka-utils/internal/utils"
)

func (s *Server) apiListBrokers(w http.ResponseWriter, r *http.Request) {
	brokers, err := s.clusterService.ListBrokers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	utils.Logger.Debug("api list brokers", "count", len(brokers))
	writeJSON(w, http.StatusOK, brokers)
}
