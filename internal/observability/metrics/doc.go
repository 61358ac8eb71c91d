// Package metrics defines the Prometheus collectors of the briefing proxy.
// Collectors are registered on the default registry at package init and
// exposed through promhttp at /metrics.
package metrics
