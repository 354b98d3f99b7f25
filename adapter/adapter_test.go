package adapter

import (
	"testing"

	"github.com/Tora-Build/w3cash-sdk-sub001/model"
)

func TestPauseSentinel(t *testing.T) {
	if !IsPause(Pause()) {
		t.Fatal("Pause() must satisfy IsPause")
	}
	if IsPause(nil) {
		t.Fatal("nil is not the pause sentinel")
	}
	if IsPause([]byte("result")) {
		t.Fatal("ordinary results are not the pause sentinel")
	}

	// Callers may mutate the returned slice without corrupting the sentinel.
	p := Pause()
	p[0] ^= 0xff
	if IsPause(p) {
		t.Fatal("mutated copy must not match")
	}
	if !IsPause(Pause()) {
		t.Fatal("sentinel must be unaffected by caller mutation")
	}
}

func TestGuardCaller(t *testing.T) {
	var dispatcher, other model.Address
	dispatcher[0] = 0x01
	other[0] = 0x02

	if err := GuardCaller(Call{Caller: dispatcher}, dispatcher); err != nil {
		t.Fatalf("dispatcher call rejected: %v", err)
	}
	if err := GuardCaller(Call{Caller: other}, dispatcher); err != ErrNotDispatcher {
		t.Fatalf("want ErrNotDispatcher, got %v", err)
	}
}
