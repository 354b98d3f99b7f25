package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/Tora-Build/w3cash-sdk-sub001/adapter/timecond"
	"github.com/Tora-Build/w3cash-sdk-sub001/adapter/transfer"
	"github.com/Tora-Build/w3cash-sdk-sub001/auth"
	"github.com/Tora-Build/w3cash-sdk-sub001/cidutil"
	"github.com/Tora-Build/w3cash-sdk-sub001/model"
	"github.com/Tora-Build/w3cash-sdk-sub001/workflow"
)

// workflowFile is the TOML description of a workflow: an ordered list
// of steps, each with the operation tuple and exactly one input form.
type workflowFile struct {
	Steps []stepConfig `toml:"step"`
}

type stepConfig struct {
	DomainIndex  uint8  `toml:"domain_index"`
	TransportID  uint8  `toml:"transport_id"`
	TransportFee uint64 `toml:"transport_fee"`
	Target       string `toml:"target"`
	Selector     string `toml:"selector"`
	Value        string `toml:"value"`

	// Input forms, mutually exclusive. InputHex is the raw escape
	// hatch; the typed forms encode inputs for the bundled adapters.
	InputHex string          `toml:"input_hex"`
	Transfer *transferConfig `toml:"transfer"`
	Deadline string          `toml:"deadline"`
}

type transferConfig struct {
	To     string `toml:"to"`
	Amount string `toml:"amount"`
}

func parseValue(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("invalid decimal value %q", s)
	}
	if v.Sign() < 0 || v.BitLen() > 112 {
		return nil, fmt.Errorf("value %q out of the 112-bit range", s)
	}
	return v, nil
}

func (sc stepConfig) input(index int) ([]byte, error) {
	forms := 0
	if sc.InputHex != "" {
		forms++
	}
	if sc.Transfer != nil {
		forms++
	}
	if sc.Deadline != "" {
		forms++
	}
	if forms > 1 {
		return nil, fmt.Errorf("step %d: input_hex, transfer, and deadline are mutually exclusive", index)
	}
	switch {
	case sc.InputHex != "":
		b, err := hex.DecodeString(strings.TrimPrefix(sc.InputHex, "0x"))
		if err != nil {
			return nil, fmt.Errorf("step %d: input_hex: %w", index, err)
		}
		return b, nil
	case sc.Transfer != nil:
		to, err := model.ParseAddress(sc.Transfer.To)
		if err != nil {
			return nil, fmt.Errorf("step %d: transfer.to: %w", index, err)
		}
		amount, err := parseValue(sc.Transfer.Amount)
		if err != nil {
			return nil, fmt.Errorf("step %d: transfer.amount: %w", index, err)
		}
		return transfer.Input(to, amount)
	case sc.Deadline != "":
		t, err := time.Parse(time.RFC3339, sc.Deadline)
		if err != nil {
			return nil, fmt.Errorf("step %d: deadline: %w", index, err)
		}
		return timecond.DeadlineInput(t), nil
	default:
		return nil, nil
	}
}

// loadWorkflow reads a workflow file into a builder.
func loadWorkflow(path string) (*workflow.Builder, error) {
	var wf workflowFile
	if _, err := toml.DecodeFile(path, &wf); err != nil {
		return nil, fmt.Errorf("decode workflow: %w", err)
	}
	if len(wf.Steps) == 0 {
		return nil, fmt.Errorf("workflow %q has no steps", path)
	}
	var b workflow.Builder
	for i, sc := range wf.Steps {
		target, err := model.ParseAddress(sc.Target)
		if err != nil {
			return nil, fmt.Errorf("step %d: target: %w", i, err)
		}
		sel, err := workflow.Selector(sc.Selector)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		value, err := parseValue(sc.Value)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		input, err := sc.input(i)
		if err != nil {
			return nil, err
		}
		b.Add(model.Operation{
			DomainIndex:  sc.DomainIndex,
			TransportID:  sc.TransportID,
			TransportFee: sc.TransportFee,
			Target:       target,
			Selector:     sel,
			Value:        value,
		}, input)
	}
	return &b, nil
}

func cmdEncode(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("encode", flag.ContinueOnError)
	fs.SetOutput(errOut)
	path := fs.String("workflow", "", "workflow TOML file")
	cursor := fs.Uint("cursor", 0, "starting step")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	b, err := loadWorkflow(*path)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 2
	}
	payload, err := b.Payload()
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 2
	}
	instruction, err := b.Encode(uint32(*cursor))
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 2
	}
	fmt.Fprintf(out, "steps: %d\n", b.Len())
	fmt.Fprintf(out, "payload digest: %s\n", auth.PayloadDigest(payload))
	fmt.Fprintf(out, "workflow cid: %s\n", cidutil.WorkflowCIDString(payload))
	fmt.Fprintf(out, "instruction: %x\n", instruction)
	return 0
}

func cmdSign(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("sign", flag.ContinueOnError)
	fs.SetOutput(errOut)
	path := fs.String("workflow", "", "workflow TOML file")
	signer := fs.String("signer", "", "key name")
	role := fs.String("role", "", "role (optional)")
	cursor := fs.Uint("cursor", 0, "starting step")
	outPath := fs.String("out", "", "write the signed payload hex to a file instead of stdout")
	dir := fs.String("dir", "", "keystore directory")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	b, err := loadWorkflow(*path)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 2
	}
	instruction, err := b.Encode(uint32(*cursor))
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 2
	}
	ks, ok := openStore(errOut, *dir)
	if !ok {
		return 1
	}
	signed, initiator, err := ks.SignWorkflow(*signer, *role, instruction)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	payload, err := b.Payload()
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	fmt.Fprintf(out, "initiator: %s\n", initiator)
	fmt.Fprintf(out, "payload digest: %s\n", auth.PayloadDigest(payload))
	fmt.Fprintf(out, "workflow cid: %s\n", cidutil.WorkflowCIDString(payload))
	if *outPath != "" {
		if err := os.WriteFile(*outPath, []byte(hex.EncodeToString(signed)+"\n"), 0o644); err != nil {
			fmt.Fprintln(errOut, err)
			return 1
		}
		fmt.Fprintf(out, "wrote %s\n", *outPath)
		return 0
	}
	fmt.Fprintf(out, "signed payload: %x\n", signed)
	return 0
}
