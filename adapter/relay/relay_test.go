package relay

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/Tora-Build/w3cash-sdk-sub001/adapter"
	"github.com/Tora-Build/w3cash-sdk-sub001/model"
)

var dispatcher = func() model.Address {
	var a model.Address
	a[0] = 0x01
	return a
}()

func TestEstimateFeeSchedule(t *testing.T) {
	p := New(dispatcher, map[uint8]Route{
		2: {BaseFee: 100, PerGas: 3},
	})
	fee, err := p.EstimateFee(context.Background(), 2, big.NewInt(5), 10)
	if err != nil {
		t.Fatalf("EstimateFee: %v", err)
	}
	if fee != 130 {
		t.Fatalf("fee %d, want 130", fee)
	}
	if _, err := p.EstimateFee(context.Background(), 9, nil, 0); err == nil {
		t.Fatal("unrouted domain index must fail")
	}
}

func TestSendGuardsCaller(t *testing.T) {
	p := New(dispatcher, nil)
	var other model.Address
	other[0] = 0x99
	_, err := p.Send(context.Background(), adapter.Call{Caller: other}, []byte("msg"), 2, 0, nil)
	if !errors.Is(err, adapter.ErrNotDispatcher) {
		t.Fatalf("want ErrNotDispatcher, got %v", err)
	}
}

func TestSendRequiresRoute(t *testing.T) {
	p := New(dispatcher, nil)
	_, err := p.Send(context.Background(), adapter.Call{Caller: dispatcher}, []byte("msg"), 2, 0, nil)
	if err == nil {
		t.Fatal("unrouted send must fail")
	}
}

func TestExecuteHasNoLocalEffect(t *testing.T) {
	p := New(dispatcher, nil)
	_, err := p.Execute(context.Background(), adapter.Call{Caller: dispatcher}, nil)
	if !errors.Is(err, adapter.ErrBadInput) {
		t.Fatalf("want ErrBadInput, got %v", err)
	}
}

func TestMessageHandleIsContentDerived(t *testing.T) {
	if messageHandle([]byte("a")) != messageHandle([]byte("a")) {
		t.Fatal("handle must be deterministic")
	}
	if messageHandle([]byte("a")) == messageHandle([]byte("b")) {
		t.Fatal("distinct messages must not collide")
	}
}
