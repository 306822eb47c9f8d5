package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/augray/ray/internal/logutil"
	"github.com/augray/ray/internal/nodes"
)

type registerNodeRequest struct {
	NodeID   string `json:"node_id"`
	Hostname string `json:"hostname"`
	LogURL   string `json:"log_url"`
}

func ListNodes(w http.ResponseWriter, r *http.Request) {
	list, err := nodes.List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list nodes")
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// RegisterNode adds a node or refreshes its heartbeat.
func RegisterNode(w http.ResponseWriter, r *http.Request) {
	var body registerNodeRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	node, err := nodes.Register(body.NodeID, body.Hostname, body.LogURL)
	if errors.Is(err, nodes.ErrInvalidLogURL) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		log.Printf("[nodes] register %s failed: %v", logutil.SanitizeForLog(body.LogURL), err)
		writeError(w, http.StatusInternalServerError, "Failed to register node")
		return
	}
	writeJSON(w, http.StatusOK, node)
}

func DeleteNode(w http.ResponseWriter, r *http.Request) {
	nodeID := chi.URLParam(r, "nodeID")
	ok, err := nodes.Remove(nodeID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete node")
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "Node not found")
		return
	}
	log.Printf("[nodes] removed node %s", logutil.SanitizeForLog(nodeID))
	w.WriteHeader(http.StatusNoContent)
}
