package nodes

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

type seedFile struct {
	Nodes []seedNode `yaml:"nodes"`
}

type seedNode struct {
	NodeID   string `yaml:"node_id"`
	Hostname string `yaml:"hostname"`
	LogURL   string `yaml:"log_url"`
}

// LoadSeedFile registers every node listed in the YAML file at path and
// returns how many were registered.
func LoadSeedFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read seed file: %w", err)
	}

	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return 0, fmt.Errorf("parse seed file %s: %w", path, err)
	}

	for i, n := range seed.Nodes {
		if _, err := Register(n.NodeID, n.Hostname, n.LogURL); err != nil {
			return i, fmt.Errorf("seed node %d: %w", i, err)
		}
	}
	log.Printf("[nodes] seeded %d nodes from %s", len(seed.Nodes), path)
	return len(seed.Nodes), nil
}
