package timecond

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Tora-Build/w3cash-sdk-sub001/adapter"
	"github.com/Tora-Build/w3cash-sdk-sub001/model"
)

var dispatcher = func() model.Address {
	var a model.Address
	a[0] = 0x01
	return a
}()

func TestPausesUntilDeadline(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	p := New(dispatcher, func() time.Time { return now })
	call := adapter.Call{Caller: dispatcher}
	input := DeadlineInput(now.Add(time.Hour))

	res, err := p.Execute(context.Background(), call, input)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !adapter.IsPause(res) {
		t.Fatal("future deadline must pause")
	}

	// Same step after the clock passes: proceeds without error.
	now = now.Add(2 * time.Hour)
	res, err = p.Execute(context.Background(), call, input)
	if err != nil {
		t.Fatalf("Execute after deadline: %v", err)
	}
	if adapter.IsPause(res) {
		t.Fatal("elapsed deadline must not pause")
	}
}

func TestDeadlineExactlyNowProceeds(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	p := New(dispatcher, func() time.Time { return now })
	res, err := p.Execute(context.Background(), adapter.Call{Caller: dispatcher}, DeadlineInput(now))
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if adapter.IsPause(res) {
		t.Fatal("deadline equal to now must not pause")
	}
}

func TestRejectsBadInput(t *testing.T) {
	p := New(dispatcher, time.Now)
	_, err := p.Execute(context.Background(), adapter.Call{Caller: dispatcher}, []byte{1, 2, 3})
	if !errors.Is(err, adapter.ErrBadInput) {
		t.Fatalf("want ErrBadInput, got %v", err)
	}
}

func TestRejectsForeignCaller(t *testing.T) {
	p := New(dispatcher, time.Now)
	var other model.Address
	other[0] = 0x99
	_, err := p.Execute(context.Background(), adapter.Call{Caller: other}, DeadlineInput(time.Now()))
	if !errors.Is(err, adapter.ErrNotDispatcher) {
		t.Fatalf("want ErrNotDispatcher, got %v", err)
	}
}

func TestNotTransportCapable(t *testing.T) {
	p := New(dispatcher, time.Now)
	if _, err := p.Send(context.Background(), adapter.Call{Caller: dispatcher}, nil, 0, 0, nil); !errors.Is(err, adapter.ErrNotTransport) {
		t.Fatalf("Send: want ErrNotTransport, got %v", err)
	}
	if _, err := p.EstimateFee(context.Background(), 0, nil, 0); !errors.Is(err, adapter.ErrNotTransport) {
		t.Fatalf("EstimateFee: want ErrNotTransport, got %v", err)
	}
}
