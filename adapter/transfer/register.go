package transfer

import (
	"errors"

	"github.com/Tora-Build/w3cash-sdk-sub001/adapter"
	"github.com/Tora-Build/w3cash-sdk-sub001/adapter/catalog"
)

func init() {
	catalog.MustRegister(catalog.Factory{
		Name:        "transfer",
		Description: "ledger value transfer attributed to the initiator",
		New: func(cfg catalog.Config) (adapter.Provider, error) {
			if cfg.Dispatcher.IsZero() {
				return nil, errors.New("transfer: dispatcher address is required")
			}
			if cfg.Ledger == nil {
				return nil, errors.New("transfer: ledger is required")
			}
			return New(cfg.Dispatcher, cfg.Ledger), nil
		},
	})
}
