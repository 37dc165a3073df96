package httpserver

import (
	"net/http"
)

func (s *Server) apiListConsumerGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := s.groupService.ListConsumerGroups(r.Context(), r.URL.Query().Get("prefix"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, groups)
}

func (s *Server) apiDeleteConsumerGroups(w http.ResponseWriter, r *http.Request) {
	results, err := s.groupService.DeleteConsumerGroups(r.Context(), r.URL.Query().Get("prefix"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toDeleteResults(results))
}
