package auth

import (
	"crypto/ed25519"
	"crypto/rand"
	"testing"

	"github.com/cloudflare/circl/sign/dilithium/mode3"

	"github.com/Tora-Build/w3cash-sdk-sub001/model"
)

func genEd25519(t *testing.T) ed25519.PrivateKey {
	t.Helper()
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	return priv
}

func TestSignVerifyEd25519(t *testing.T) {
	priv := genEd25519(t)
	payload := []byte("payload bytes under signature")

	sig, initiator, err := SignEd25519(payload, priv)
	if err != nil {
		t.Fatalf("SignEd25519: %v", err)
	}
	if initiator.IsZero() {
		t.Fatal("initiator must not be zero")
	}
	if err := Verify(payload, initiator, sig); err != nil {
		t.Fatalf("Verify: %v", err)
	}
}

func TestVerifyRejectsTamperedPayload(t *testing.T) {
	priv := genEd25519(t)
	payload := []byte("original payload")
	sig, initiator, err := SignEd25519(payload, priv)
	if err != nil {
		t.Fatalf("SignEd25519: %v", err)
	}

	tampered := append([]byte(nil), payload...)
	tampered[0] ^= 0x01
	if err := Verify(tampered, initiator, sig); err == nil {
		t.Fatal("tampered payload must not verify")
	} else if !model.IsKind(err, model.KindAuth) {
		t.Fatalf("want Auth kind, got %v", err)
	}
}

func TestVerifyRejectsTamperedSignature(t *testing.T) {
	priv := genEd25519(t)
	payload := []byte("payload")
	sig, initiator, err := SignEd25519(payload, priv)
	if err != nil {
		t.Fatalf("SignEd25519: %v", err)
	}

	for _, i := range []int{0, 1, len(sig) - 1} {
		bad := append([]byte(nil), sig...)
		bad[i] ^= 0xff
		if err := Verify(payload, initiator, bad); err == nil {
			t.Fatalf("flipped byte %d must not verify", i)
		}
	}
}

func TestVerifyRejectsWrongInitiator(t *testing.T) {
	priv := genEd25519(t)
	payload := []byte("payload")
	sig, _, err := SignEd25519(payload, priv)
	if err != nil {
		t.Fatalf("SignEd25519: %v", err)
	}

	other := genEd25519(t)
	claimed := AddressFromPublicKey(other.Public().(ed25519.PublicKey))
	err = Verify(payload, claimed, sig)
	if err == nil {
		t.Fatal("signature must not recover to a different initiator")
	}
	if model.RuleID(err) != "W3-AUTH-001" {
		t.Fatalf("want W3-AUTH-001, got %v", err)
	}
}

func TestRecoverDerivesEmbeddedKeyIdentity(t *testing.T) {
	priv := genEd25519(t)
	payload := []byte("payload")
	sig, initiator, err := SignEd25519(payload, priv)
	if err != nil {
		t.Fatalf("SignEd25519: %v", err)
	}
	got, err := Recover(SigningDigest(payload), sig)
	if err != nil {
		t.Fatalf("Recover: %v", err)
	}
	if got != initiator {
		t.Fatalf("recovered %s, want %s", got, initiator)
	}
}

func TestSignVerifyDilithium3(t *testing.T) {
	pub, priv, err := mode3.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("generate dilithium3 key: %v", err)
	}
	payload := []byte("post-quantum payload")
	sig, initiator, err := SignDilithium3(payload, pub, priv)
	if err != nil {
		t.Fatalf("SignDilithium3: %v", err)
	}
	if err := Verify(payload, initiator, sig); err != nil {
		t.Fatalf("Verify: %v", err)
	}

	tampered := append([]byte(nil), payload...)
	tampered[0] ^= 0x01
	if err := Verify(tampered, initiator, sig); err == nil {
		t.Fatal("tampered payload must not verify")
	}
}

func TestEnvelopeFailClosed(t *testing.T) {
	priv := genEd25519(t)
	sig, _, err := SignEd25519([]byte("p"), priv)
	if err != nil {
		t.Fatalf("SignEd25519: %v", err)
	}

	cases := []struct {
		name string
		b    []byte
	}{
		{"empty", nil},
		{"unknown algorithm", append([]byte{0x7f}, sig[1:]...)},
		{"truncated", sig[:len(sig)-1]},
		{"extended", append(append([]byte(nil), sig...), 0x00)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeEnvelope(tc.b); err == nil {
				t.Fatal("malformed envelope must be rejected")
			} else if !model.IsKind(err, model.KindAuth) {
				t.Fatalf("want Auth kind, got %v", err)
			}
		})
	}
}

func TestEnvelopeEncodeValidatesWidths(t *testing.T) {
	if _, err := (Envelope{Alg: AlgEd25519, PublicKey: []byte("short"), Sig: make([]byte, ed25519.SignatureSize)}).Encode(); err == nil {
		t.Fatal("short public key must be rejected")
	}
	if _, err := (Envelope{Alg: Algorithm(9), PublicKey: nil, Sig: nil}).Encode(); err == nil {
		t.Fatal("unknown algorithm must be rejected")
	}
}

func TestSigningDigestIsDomainSeparated(t *testing.T) {
	payload := []byte("payload")
	if SigningDigest(payload) == PayloadDigest(payload) {
		t.Fatal("signing digest must differ from the raw payload digest")
	}
	// Deterministic for equal input.
	if SigningDigest(payload) != SigningDigest([]byte("payload")) {
		t.Fatal("signing digest must be deterministic")
	}
}

func TestAddressFromPublicKeyIsStable(t *testing.T) {
	priv := genEd25519(t)
	pub := priv.Public().(ed25519.PublicKey)
	if AddressFromPublicKey(pub) != AddressFromPublicKey(pub) {
		t.Fatal("address derivation must be deterministic")
	}
	other := genEd25519(t).Public().(ed25519.PublicKey)
	if AddressFromPublicKey(pub) == AddressFromPublicKey(other) {
		t.Fatal("distinct keys must not collide")
	}
}
