package timecond

import (
	"errors"
	"time"

	"github.com/Tora-Build/w3cash-sdk-sub001/adapter"
	"github.com/Tora-Build/w3cash-sdk-sub001/adapter/catalog"
)

func init() {
	catalog.MustRegister(catalog.Factory{
		Name:        "timecond",
		Description: "wait-until-timestamp condition (pauses until the deadline passes)",
		New: func(cfg catalog.Config) (adapter.Provider, error) {
			now := cfg.Now
			if now == nil {
				now = time.Now
			}
			if cfg.Dispatcher.IsZero() {
				return nil, errors.New("timecond: dispatcher address is required")
			}
			return New(cfg.Dispatcher, now), nil
		},
	})
}
