package configs

import (
	"fmt"
	"net/netip"
	"time"

	"metric-engine/internal/models"
)

// Config holds all configuration for the application.
type Config struct {
	Server  ServerConfig   `mapstructure:"server" validate:"required"`
	Log     LogConfig      `mapstructure:"log" validate:"required"`
	Engine  EngineConfig   `mapstructure:"engine"`
	Filters []FilterConfig `mapstructure:"filters" validate:"dive"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// EngineConfig holds engine-wide configuration.
type EngineConfig struct {
	// NodeLabel identifies this node in notices. Falls back to the hostname.
	NodeLabel string `mapstructure:"node_label"`
}

// FilterConfig declares one filter to register at startup. Predicates are not
// expressible in configuration; embedding code registers predicate-bearing
// filters programmatically.
type FilterConfig struct {
	MetricID         string            `mapstructure:"metric_id" validate:"required"`
	Name             string            `mapstructure:"name" validate:"required"`
	BreakInterval    string            `mapstructure:"break_interval"`
	Log              bool              `mapstructure:"log"`
	Note             string            `mapstructure:"note"`
	AggregateMask    int               `mapstructure:"aggregate_mask" validate:"omitempty,min=1,max=128"`
	AggregateTable   map[string]string `mapstructure:"aggregate_table"`
	NoticeThreshold  int64             `mapstructure:"notice_threshold" validate:"omitempty,min=1"`
	NoticeThresholds []int64           `mapstructure:"notice_thresholds"`
	NoticeCooldown   string            `mapstructure:"notice_cooldown"`
}

// ToFilter converts the declaration into an engine filter, parsing durations,
// addresses, and prefixes.
func (c FilterConfig) ToFilter() (*models.Filter, error) {
	filter := &models.Filter{
		MetricID:         c.MetricID,
		Name:             c.Name,
		Log:              c.Log,
		Note:             c.Note,
		AggregateMask:    c.AggregateMask,
		NoticeThreshold:  c.NoticeThreshold,
		NoticeThresholds: c.NoticeThresholds,
	}

	if c.BreakInterval != "" {
		interval, err := time.ParseDuration(c.BreakInterval)
		if err != nil {
			return nil, fmt.Errorf("filter %q: invalid break_interval %q: %w", c.Name, c.BreakInterval, err)
		}
		filter.BreakInterval = interval
	}

	if c.NoticeCooldown != "" {
		cooldown, err := time.ParseDuration(c.NoticeCooldown)
		if err != nil {
			return nil, fmt.Errorf("filter %q: invalid notice_cooldown %q: %w", c.Name, c.NoticeCooldown, err)
		}
		filter.NoticeCooldown = cooldown
	}

	if len(c.AggregateTable) > 0 {
		filter.AggregateTable = make(map[netip.Addr]netip.Prefix, len(c.AggregateTable))
		for hostStr, prefixStr := range c.AggregateTable {
			host, err := netip.ParseAddr(hostStr)
			if err != nil {
				return nil, fmt.Errorf("filter %q: invalid aggregate_table host %q: %w", c.Name, hostStr, err)
			}
			prefix, err := netip.ParsePrefix(prefixStr)
			if err != nil {
				return nil, fmt.Errorf("filter %q: invalid aggregate_table subnet %q: %w", c.Name, prefixStr, err)
			}
			filter.AggregateTable[host] = prefix
		}
	}

	return filter, nil
}
