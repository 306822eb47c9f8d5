package nodes

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// StartPruner schedules Prune(ttl) on the cron schedule (standard five-field
// spec or a descriptor such as "@every 1m"). A zero ttl disables pruning
// and returns a nil scheduler. Stop the returned cron on shutdown.
func StartPruner(schedule string, ttl time.Duration) (*cron.Cron, error) {
	if ttl <= 0 {
		return nil, nil
	}

	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		removed, err := Prune(ttl)
		if err != nil {
			log.Printf("[nodes] prune failed: %v", err)
			return
		}
		if removed > 0 {
			log.Printf("[nodes] pruned %d nodes not seen for %s", removed, ttl)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("schedule pruner %q: %w", schedule, err)
	}
	c.Start()
	log.Printf("[nodes] pruner started (schedule=%q, ttl=%s)", schedule, ttl)
	return c, nil
}
