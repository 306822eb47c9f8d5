// Package nodes maintains the registry of log sources served on the log
// index and checked by the log proxy.
//
// Nodes are registered through the API or a YAML seed file:
//
//	nodes:
//	  - node_id: head
//	    hostname: ray-head
//	    log_url: http://10.0.0.1:52365/logs
//
// Re-registering a log URL refreshes it. When a TTL is configured, a cron
// job removes nodes that have not been refreshed within it.
package nodes
