package handlers

import (
	"net/http"

	"github.com/augray/ray/internal/database"
)

func HealthCheck(w http.ResponseWriter, r *http.Request) {
	dbStatus := "disconnected"
	var nodeCount int64
	if database.DB != nil {
		if sqlDB, err := database.DB.DB(); err == nil && sqlDB.Ping() == nil {
			dbStatus = "connected"
			database.DB.Model(&database.Node{}).Count(&nodeCount)
		}
	}

	status, code := "healthy", http.StatusOK
	if dbStatus != "connected" {
		status, code = "unhealthy", http.StatusServiceUnavailable
	}

	writeJSON(w, code, map[string]any{
		"status":   status,
		"database": dbStatus,
		"nodes":    nodeCount,
	})
}
