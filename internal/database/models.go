package database

import (
	"net/url"
	"time"
)

// Node is a log source listed on the log index. LogURL is the root of the
// node's log directory, Host its host[:port] as it appears in proxied URLs.
type Node struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"-"`
	NodeID    string    `gorm:"uniqueIndex;not null;size:64" json:"node_id"`
	Hostname  string    `gorm:"not null;default:''" json:"hostname"`
	LogURL    string    `gorm:"uniqueIndex;not null" json:"log_url"`
	Host      string    `gorm:"index;not null" json:"host"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// Scheme returns the scheme of LogURL, defaulting to http.
func (n Node) Scheme() string {
	if u, err := url.Parse(n.LogURL); err == nil && u.Scheme != "" {
		return u.Scheme
	}
	return "http"
}
