// Command workflow_vector_gen prints a deterministic signed workflow
// for interop checks: fixed seeds in, stable bytes out. Useful when
// comparing an alternate implementation of the wire format.
package main

import (
	"crypto/ed25519"
	"fmt"
	"math/big"

	"github.com/Tora-Build/w3cash-sdk-sub001/adapter/transfer"
	"github.com/Tora-Build/w3cash-sdk-sub001/auth"
	"github.com/Tora-Build/w3cash-sdk-sub001/cidutil"
	"github.com/Tora-Build/w3cash-sdk-sub001/codec"
	"github.com/Tora-Build/w3cash-sdk-sub001/model"
	"github.com/Tora-Build/w3cash-sdk-sub001/workflow"
)

func mustKey(seedByte byte) ed25519.PrivateKey {
	seed := make([]byte, ed25519.SeedSize)
	for i := range seed {
		seed[i] = seedByte
	}
	return ed25519.NewKeyFromSeed(seed)
}

func fixedAddress(b byte) model.Address {
	var a model.Address
	for i := range a {
		a[i] = b
	}
	return a
}

func main() {
	priv := mustKey(0xA1)

	sel, err := workflow.Selector("xfer")
	if err != nil {
		panic(err)
	}
	input, err := transfer.Input(fixedAddress(0xB2), big.NewInt(1000))
	if err != nil {
		panic(err)
	}

	var b workflow.Builder
	b.Add(model.Operation{
		DomainIndex: 1,
		Target:      fixedAddress(0xC3),
		Selector:    sel,
		Value:       big.NewInt(0),
	}, input)

	instruction, err := b.Encode(0)
	if err != nil {
		panic(err)
	}
	instr, err := codec.DecodeInstruction(instruction)
	if err != nil {
		panic(err)
	}
	sig, initiator, err := auth.SignEd25519(instr.Payload, priv)
	if err != nil {
		panic(err)
	}
	signed := codec.EncodeSignedPayload(model.SignedPayload{
		Instruction: instruction,
		Initiator:   initiator,
		Signature:   sig,
	})

	fmt.Printf("initiator=%s\n", initiator)
	fmt.Printf("payload_digest=%s\n", auth.PayloadDigest(instr.Payload))
	fmt.Printf("workflow_cid=%s\n", cidutil.WorkflowCIDString(instr.Payload))
	fmt.Printf("---BEGIN SIGNED PAYLOAD---\n%x\n---END SIGNED PAYLOAD---\n", signed)
}
