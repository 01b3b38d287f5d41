// Package config loads process configuration: the default region, the
// man-day/month conversion for estimates, and extra holiday rows layered
// over the built-in calendars.
//
// Holiday tables stay immutable at runtime; configuration is applied once
// at startup by building a fresh engine.
package config

import (
	"github.com/ib823/cockpit-engine/internal/estimator"
)

// HolidayEntry is one configured holiday: either a fixed date or a yearly
// recurrence rule.
type HolidayEntry struct {
	// Date is an ISO date ("2026-06-15"). Mutually exclusive with RRule.
	Date string `koanf:"date"`

	// RRule is a raw recurrence rule ("FREQ=YEARLY;BYMONTH=6;BYMONTHDAY=15")
	// expanded over the planning horizon.
	RRule string `koanf:"rrule"`

	Name string `koanf:"name"`
}

// Config contains process configuration.
type Config struct {
	// DefaultRegion is the region used when a command omits --region.
	DefaultRegion string `koanf:"default_region"`

	// WorkdaysPerMonth converts estimated months into working days when
	// laying out phase timelines.
	WorkdaysPerMonth float64 `koanf:"workdays_per_month"`

	// HorizonYears bounds the expansion of recurring holiday rules,
	// counted from the current year.
	HorizonYears int `koanf:"horizon_years"`

	// Calendars maps region codes to extra holidays layered over the
	// built-in tables. Built-in rows win on duplicate dates.
	Calendars map[string][]HolidayEntry `koanf:"calendars"`
}

// New returns a Config with defaults.
func New() *Config {
	return &Config{
		DefaultRegion:    "ABMY",
		WorkdaysPerMonth: estimator.WorkingDaysPerMonth,
		HorizonYears:     3,
	}
}
