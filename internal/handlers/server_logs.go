package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/augray/ray/internal/logging"
	"github.com/augray/ray/internal/logutil"
)

const (
	defaultTailLines = 200
	maxTailLines     = 5000
)

// GetServerLogs returns the last ?lines= lines of the dashboard's own log,
// capped at maxTailLines.
func GetServerLogs(w http.ResponseWriter, r *http.Request) {
	lines := defaultTailLines
	if q := r.URL.Query().Get("lines"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "lines must be a positive integer")
			return
		}
		if n > maxTailLines {
			log.Printf("[logs] server log tail of %s lines capped at %d", logutil.SanitizeForLog(q), maxTailLines)
			n = maxTailLines
		}
		lines = n
	}

	content, err := logging.ReadTail(lines)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"logs": content})
}

// ClearServerLogs truncates the dashboard's own log file.
func ClearServerLogs(w http.ResponseWriter, r *http.Request) {
	if err := logging.Clear(); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
