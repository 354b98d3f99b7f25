package dispatch

import (
	"context"
	"fmt"
	"math/big"

	"github.com/Tora-Build/w3cash-sdk-sub001/model"
)

// EstimateFee delegates cost estimation to the transport provider
// registered under transportID. It fails if the transport ID is
// unregistered; it has no side effects.
func (p *Processor) EstimateFee(ctx context.Context, transportID, domainIndex uint8, value *big.Int, gasBudget uint64) (uint64, error) {
	loc, err := p.reg.Provider(transportID)
	if err != nil {
		return 0, model.WrapError(model.KindLookup, "W3-EXEC-011",
			fmt.Sprintf("transport %d", transportID), err)
	}
	prov, ok := p.env.ProviderAt(loc)
	if !ok {
		return 0, model.NewError(model.KindLookup, "W3-EXEC-012",
			fmt.Sprintf("no transport provider at %s", loc))
	}
	return prov.EstimateFee(ctx, domainIndex, value, gasBudget)
}
