package httpserver

import (
	"net/http"
	"strconv"

	"github.com/OliveiraNt/kafka-utils/internal/utils"
)

func (s *Server) apiListTopics(w http.ResponseWriter, r *http.Request) {
	topics, err := s.topicService.ListTopics(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, topics)
}

func (s *Server) apiListTopicNames(w http.ResponseWriter, r *http.Request) {
	prefix := r.URL.Query().Get("prefix")
	names, err := s.topicService.ListTopicNames(r.Context(), prefix)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, names)
}

type topicDeleteResponse struct {
	DryRun     bool           `json:"dry_run"`
	Candidates []string       `json:"candidates"`
	Results    []deleteResult `json:"results,omitempty"`
}

// apiDeleteTopics deletes the topics starting with ?prefix=. Nothing is deleted unless
// ?run=true is given.
func (s *Server) apiDeleteTopics(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	run := false
	if v := q.Get("run"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			utils.Logger.Warn("api delete topics bad request", "run", v, "err", err)
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid run parameter: " + v})
			return
		}
		run = b
	}

	res, err := s.topicService.DeleteTopics(r.Context(), q.Get("prefix"), run)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, topicDeleteResponse{
		DryRun:     res.DryRun,
		Candidates: res.Candidates,
		Results:    toDeleteResults(res.Results),
	})
}
