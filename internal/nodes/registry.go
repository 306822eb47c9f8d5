package nodes

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/augray/ray/internal/database"
)

var ErrInvalidLogURL = errors.New("log_url must be an absolute http(s) URL")

// Register adds the node serving logURL or refreshes it if already known.
// An empty nodeID keeps the existing one or assigns a new UUID.
func Register(nodeID, hostname, logURL string) (*database.Node, error) {
	u, err := url.Parse(strings.TrimSpace(logURL))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLogURL, logURL)
	}

	var node database.Node
	err = database.DB.Where("log_url = ?", u.String()).First(&node).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		if nodeID == "" {
			nodeID = uuid.NewString()
		}
		node = database.Node{NodeID: nodeID, LogURL: u.String()}
	case err != nil:
		return nil, fmt.Errorf("lookup node: %w", err)
	case nodeID != "":
		node.NodeID = nodeID
	}

	node.Host = strings.ToLower(u.Host)
	if hostname != "" {
		node.Hostname = hostname
	} else if node.Hostname == "" {
		node.Hostname = u.Hostname()
	}

	// Save bumps UpdatedAt, which is what keeps the node from being pruned.
	if err := database.DB.Save(&node).Error; err != nil {
		return nil, fmt.Errorf("save node: %w", err)
	}
	return &node, nil
}

// Remove deletes the node with nodeID and reports whether it existed.
func Remove(nodeID string) (bool, error) {
	res := database.DB.Where("node_id = ?", nodeID).Delete(&database.Node{})
	if res.Error != nil {
		return false, fmt.Errorf("delete node: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// List returns all nodes ordered by hostname, then log URL.
func List() ([]database.Node, error) {
	var nodes []database.Node
	if err := database.DB.Order("hostname, log_url").Find(&nodes).Error; err != nil {
		return nil, fmt.Errorf("list nodes: %w", err)
	}
	return nodes, nil
}

// MatchHost returns a node whose log URL is served from host (host[:port],
// case-insensitive).
func MatchHost(host string) (*database.Node, bool, error) {
	if host == "" {
		return nil, false, nil
	}
	var node database.Node
	err := database.DB.Where("host = ?", strings.ToLower(host)).Order("id").First(&node).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("match host: %w", err)
	}
	return &node, true, nil
}

// Prune deletes nodes last refreshed before now-ttl.
func Prune(ttl time.Duration) (int64, error) {
	cutoff := time.Now().Add(-ttl)
	res := database.DB.Where("updated_at < ?", cutoff).Delete(&database.Node{})
	if res.Error != nil {
		return 0, fmt.Errorf("prune nodes: %w", res.Error)
	}
	return res.RowsAffected, nil
}
