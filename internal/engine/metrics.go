package engine

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	TrackListRequests    atomic.Int64
	SegmentFetchRequests atomic.Int64
	ProviderErrors       atomic.Int64
	PlayerFallbacks      atomic.Int64
	StealthFallbacks     atomic.Int64
}

// GetMetrics returns a snapshot of all metrics.
func GetMetrics() map[string]int64 {
	return map[string]int64{
		"track_list_requests":    metrics.TrackListRequests.Load(),
		"segment_fetch_requests": metrics.SegmentFetchRequests.Load(),
		"provider_errors":        metrics.ProviderErrors.Load(),
		"player_fallbacks":       metrics.PlayerFallbacks.Load(),
		"stealth_fallbacks":      metrics.StealthFallbacks.Load(),
	}
}

// FormatMetrics returns metrics as a simple text format for the HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	keys := []string{
		"track_list_requests", "segment_fetch_requests",
		"provider_errors", "player_fallbacks", "stealth_fallbacks",
	}
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

// Incrementors for the youtube sub-package.
func IncrTrackListRequests()    { metrics.TrackListRequests.Add(1) }
func IncrSegmentFetchRequests() { metrics.SegmentFetchRequests.Add(1) }
func IncrProviderErrors()       { metrics.ProviderErrors.Add(1) }
func IncrPlayerFallbacks()      { metrics.PlayerFallbacks.Add(1) }
func IncrStealthFallbacks()     { metrics.StealthFallbacks.Add(1) }
