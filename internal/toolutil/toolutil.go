// Package toolutil provides shared helper functions for go_tube MCP tools.
package toolutil

import (
	"strings"

	"github.com/anatolykoptev/go_tube/internal/engine"
)

// ClampLimit normalises a requested result count: zero or negative → def,
// above max → max.
func ClampLimit(limit int64, def, max int64) int64 {
	if limit <= 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}

// NormRegion normalises a region code: empty → configured default,
// otherwise upper-cased.
func NormRegion(region string) string {
	if region == "" {
		return engine.Cfg.DefaultRegion
	}
	return strings.ToUpper(strings.TrimSpace(region))
}

// NormOrder normalises a sort order: empty → def.
func NormOrder(order string, def string) string {
	order = strings.TrimSpace(order)
	if order == "" {
		return def
	}
	return order
}
