package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/ib823/cockpit-engine/internal/calendar"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if COCKPIT_CONFIG is set
//  3. env (prefix COCKPIT_)
func Load() (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("COCKPIT_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: COCKPIT_DEFAULT_REGION, COCKPIT_WORKDAYS_PER_MONTH, ...
	// Keys keep their underscores to match the koanf tags on the struct.
	envProvider := env.Provider("COCKPIT_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "cockpit_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if _, err := calendar.ParseRegion(c.DefaultRegion); err != nil {
		return fmt.Errorf("%w: default_region: %w", ErrInvalidConfig, err)
	}
	if c.WorkdaysPerMonth <= 0 {
		return fmt.Errorf("%w: workdays_per_month must be positive", ErrInvalidConfig)
	}
	if c.HorizonYears < 1 {
		return fmt.Errorf("%w: horizon_years must be at least 1", ErrInvalidConfig)
	}
	for region, entries := range c.Calendars {
		if _, err := calendar.ParseRegion(region); err != nil {
			return fmt.Errorf("%w: calendars: %w", ErrInvalidConfig, err)
		}
		for _, e := range entries {
			if (e.Date == "") == (e.RRule == "") {
				return fmt.Errorf("%w: calendar entry %q needs exactly one of date or rrule", ErrInvalidConfig, e.Name)
			}
		}
	}
	return nil
}

// Engine builds a calendar engine with the configured extra holidays layered
// over the built-in tables. Recurring rules are expanded from the start of
// the current year through HorizonYears ahead.
func (c *Config) Engine(now time.Time) (*calendar.Engine, error) {
	if len(c.Calendars) == 0 {
		return calendar.NewEngine(), nil
	}

	from := calendar.NewDay(now.Year(), time.January, 1)
	to := calendar.NewDay(now.Year()+c.HorizonYears, time.December, 31)

	base := calendar.NewEngine()
	tables := make(map[calendar.Region]*calendar.Table, len(c.Calendars))
	for code, entries := range c.Calendars {
		region, err := calendar.ParseRegion(code)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}

		var extra []calendar.Holiday
		for _, e := range entries {
			switch {
			case e.Date != "":
				d, err := calendar.ParseDay(e.Date)
				if err != nil {
					return nil, fmt.Errorf("%w: holiday %q: %w", ErrInvalidConfig, e.Name, err)
				}
				extra = append(extra, calendar.Holiday{Date: d, Name: e.Name})
			case e.RRule != "":
				rule, err := calendar.ParseRecurrence(e.RRule)
				if err != nil {
					return nil, fmt.Errorf("%w: holiday %q: %w", ErrInvalidConfig, e.Name, err)
				}
				expanded, err := calendar.ExpandRecurring(e.Name, rule, from, to)
				if err != nil {
					return nil, fmt.Errorf("%w: holiday %q: %w", ErrInvalidConfig, e.Name, err)
				}
				extra = append(extra, expanded...)
			}
		}

		builtinTable, err := base.Table(region)
		if err != nil {
			return nil, err
		}
		tables[region] = builtinTable.Merge(extra)
	}

	return calendar.NewEngineWithTables(tables), nil
}
