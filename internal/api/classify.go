package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/moonball-archive/scorebook/internal/feed"
	"github.com/moonball-archive/scorebook/internal/gamelog"
	"github.com/moonball-archive/scorebook/internal/lint"
)

// parseGame handles POST /api/v1/games/{id}/parse. It fetches the game
// from the archive, classifies its event log, stores the result, and
// returns the lint report. ?dry_run=true skips the store.
func (s *Server) parseGame(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	dryRun := r.URL.Query().Get("dry_run") == "true"

	g, err := s.arc.Game(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusBadGateway, "fetch game: "+err.Error())
		return
	}

	events, err := gamelog.ProcessGame(g, gamelog.Options{Logger: s.logger})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "classify game: "+err.Error())
		return
	}
	report := lint.LintGame(id, events)

	if !dryRun {
		doc, err := json.Marshal(g)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "marshal game: "+err.Error())
			return
		}
		if err := s.store.SaveRawGame(r.Context(), id, g.Season, g.Day, doc); err != nil {
			writeError(w, http.StatusInternalServerError, "save game: "+err.Error())
			return
		}
		if err := s.store.SaveParsedEvents(r.Context(), id, events); err != nil {
			writeError(w, http.StatusInternalServerError, "save events: "+err.Error())
			return
		}
	}

	writeJSON(w, http.StatusOK, report)
}

// parseFeed handles POST /api/v1/feeds/{type}/{id}/parse for type
// "team" or "player".
func (s *Server) parseFeed(w http.ResponseWriter, r *http.Request) {
	entityType := chi.URLParam(r, "type")
	id := chi.URLParam(r, "id")
	dryRun := r.URL.Query().Get("dry_run") == "true"

	var entries []feed.Entry
	switch entityType {
	case "team":
		tm, err := s.arc.Team(r.Context(), id)
		if err != nil {
			writeError(w, http.StatusBadGateway, "fetch team: "+err.Error())
			return
		}
		entries = tm.FeedEntries()
	case "player":
		p, err := s.arc.Player(r.Context(), id)
		if err != nil {
			writeError(w, http.StatusBadGateway, "fetch player: "+err.Error())
			return
		}
		entries = p.FeedEntries()
	default:
		writeError(w, http.StatusBadRequest, "unknown feed entity type "+entityType)
		return
	}

	msgs, err := feed.ClassifyFeed(entries, feed.Options{Logger: s.logger})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "classify feed: "+err.Error())
		return
	}
	report, err := lint.LintFeed(entityType, id, entries, msgs)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "lint feed: "+err.Error())
		return
	}

	if !dryRun {
		if err := s.store.SaveFeedRecords(r.Context(), entityType, id, msgs); err != nil {
			writeError(w, http.StatusInternalServerError, "save feed: "+err.Error())
			return
		}
	}

	writeJSON(w, http.StatusOK, report)
}

// getGameEvents handles GET /api/v1/games/{id}/events.
func (s *Server) getGameEvents(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	events, err := s.store.GetParsedEvents(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "load events: "+err.Error())
		return
	}
	if len(events) == 0 {
		writeError(w, http.StatusNotFound, "no stored events for game "+id)
		return
	}
	writeJSON(w, http.StatusOK, events)
}

// getFeedRecords handles GET /api/v1/feeds/{type}/{id}.
func (s *Server) getFeedRecords(w http.ResponseWriter, r *http.Request) {
	entityType := chi.URLParam(r, "type")
	id := chi.URLParam(r, "id")
	records, err := s.store.GetFeedRecords(r.Context(), entityType, id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "load feed: "+err.Error())
		return
	}
	if len(records) == 0 {
		writeError(w, http.StatusNotFound, "no stored feed for "+entityType+" "+id)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

// getSweepRun handles GET /api/v1/runs/{id}.
func (s *Server) getSweepRun(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid run id")
		return
	}
	run, err := s.store.GetSweepRun(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "load run: "+err.Error())
		return
	}
	if run == nil {
		writeError(w, http.StatusNotFound, "no such run")
		return
	}
	writeJSON(w, http.StatusOK, run)
}

// getFindings handles GET /api/v1/runs/{id}/findings.
func (s *Server) getFindings(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid run id")
		return
	}
	findings, err := s.store.ListFindings(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "load findings: "+err.Error())
		return
	}
	if r.URL.Query().Get("aggregate") == "true" {
		items := make([]lint.Item, 0, len(findings))
		for _, f := range findings {
			items = append(items, lint.Item{
				Index:     f.Index,
				EventType: f.EventType,
				Text:      f.Text,
				Ambiguous: f.Ambiguous,
			})
		}
		writeJSON(w, http.StatusOK, lint.Aggregate(items))
		return
	}
	writeJSON(w, http.StatusOK, findings)
}
