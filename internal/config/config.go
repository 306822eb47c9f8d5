package config

import (
	"log"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Settings configures the dashboard server. Variables carry the DASHBOARD_
// prefix, e.g. DASHBOARD_LISTEN_ADDR.
type Settings struct {
	ListenAddr   string `envconfig:"LISTEN_ADDR" default:":8265"`
	DatabasePath string `envconfig:"DATABASE_PATH" default:"/app/data/dashboard.db"`
	LogPath      string `envconfig:"LOG_PATH" default:""`
	AdminSecret  string `envconfig:"ADMIN_SECRET" default:""`

	// Node registry
	NodesFile     string        `envconfig:"NODES_FILE" default:""`
	NodeTTL       time.Duration `envconfig:"NODE_TTL" default:"0"`
	PruneSchedule string        `envconfig:"PRUNE_SCHEDULE" default:"@every 1m"`

	// Log proxy
	ProxyTimeout  time.Duration `envconfig:"PROXY_TIMEOUT" default:"30s"`
	ProxyMaxBytes int64         `envconfig:"PROXY_MAX_BYTES" default:"67108864"`
}

var Cfg Settings

func Load() {
	if err := envconfig.Process("DASHBOARD", &Cfg); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
}

// CLISettings configures the raylogs command. Variables carry the RAYLOGS_
// prefix; command-line flags take precedence.
type CLISettings struct {
	DashboardURL string `envconfig:"DASHBOARD_URL" default:"http://localhost:8265"`
	Token        string `envconfig:"TOKEN" default:""`
	Page         string `envconfig:"PAGE" default:"/"`
}

func LoadCLI() (CLISettings, error) {
	var s CLISettings
	if err := envconfig.Process("RAYLOGS", &s); err != nil {
		return s, err
	}
	return s, nil
}
