package cli

import (
	"time"

	"github.com/ib823/cockpit-engine/internal/calendar"
	"github.com/ib823/cockpit-engine/internal/config"
)

// runContext bundles the loaded configuration and the calendar engine built
// from it. Commands construct one per invocation; nothing is cached.
type runContext struct {
	cfg    *config.Config
	engine *calendar.Engine
}

func newRunContext() (*runContext, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	engine, err := cfg.Engine(time.Now())
	if err != nil {
		return nil, err
	}
	return &runContext{cfg: cfg, engine: engine}, nil
}

// resolveRegion returns the region from the flag value, falling back to the
// configured default when the flag is empty.
func (rc *runContext) resolveRegion(flag string) (calendar.Region, error) {
	if flag == "" {
		flag = rc.cfg.DefaultRegion
	}
	return calendar.ParseRegion(flag)
}
