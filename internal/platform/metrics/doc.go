// Package metrics exposes Prometheus instrumentation for the tasks API:
// per-route HTTP request metrics, a counter of task change events and a gauge
// of stored tasks. Each Metrics value owns its registry so tests can build
// isolated instances.
package metrics
