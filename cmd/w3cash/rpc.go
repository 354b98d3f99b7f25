package main

import (
	"context"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/Tora-Build/w3cash-sdk-sub001/grpcdispatch"
)

const rpcTimeout = 30 * time.Second

func dial(addr string) (*grpc.ClientConn, error) {
	if addr == "" {
		return nil, fmt.Errorf("--addr is required")
	}
	return grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
}

func structRequest(fields map[string]any) (*structpb.Struct, error) {
	return structpb.NewStruct(fields)
}

func cmdExecute(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("execute", flag.ContinueOnError)
	fs.SetOutput(errOut)
	addr := fs.String("addr", "", "daemon address")
	in := fs.String("in", "", "file holding the signed payload hex (- for stdin)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	raw, err := readHexInput(*in)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 2
	}
	conn, err := dial(*addr)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 2
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), rpcTimeout)
	defer cancel()
	resp, err := grpcdispatch.NewDispatchClient(conn).Execute(ctx, wrapperspb.Bytes(raw))
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	keys := make([]string, 0, len(resp.GetFields()))
	for k := range resp.GetFields() {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := resp.GetFields()[k]
		switch {
		case v.GetStringValue() != "":
			fmt.Fprintf(out, "%s: %s\n", k, v.GetStringValue())
		default:
			fmt.Fprintf(out, "%s: %v\n", k, v.AsInterface())
		}
	}
	return 0
}

func readHexInput(path string) ([]byte, error) {
	if path == "" {
		return nil, fmt.Errorf("--in is required")
	}
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	s := strings.TrimSpace(string(data))
	s = strings.TrimPrefix(s, "0x")
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decode signed payload hex: %w", err)
	}
	return raw, nil
}

func cmdEstimateFee(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("estimate-fee", flag.ContinueOnError)
	fs.SetOutput(errOut)
	addr := fs.String("addr", "", "daemon address")
	transport := fs.Uint("transport", 0, "transport provider ID")
	domainIndex := fs.Uint("domain-index", 0, "destination domain index")
	value := fs.String("value", "0", "value carried by the step (decimal)")
	gas := fs.Uint64("gas", 0, "execution budget on the destination")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	conn, err := dial(*addr)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 2
	}
	defer conn.Close()

	req, err := structRequest(map[string]any{
		"transport_id": strconv.FormatUint(uint64(*transport), 10),
		"domain_index": strconv.FormatUint(uint64(*domainIndex), 10),
		"value":        *value,
		"gas_budget":   strconv.FormatUint(*gas, 10),
	})
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	ctx, cancel := context.WithTimeout(context.Background(), rpcTimeout)
	defer cancel()
	resp, err := grpcdispatch.NewDispatchClient(conn).EstimateFee(ctx, req)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	fmt.Fprintf(out, "fee: %s\n", resp.GetValue())
	return 0
}

func cmdEndpoint(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("endpoint", flag.ContinueOnError)
	fs.SetOutput(errOut)
	addr := fs.String("addr", "", "daemon address")
	caller := fs.String("caller", "", "registry owner address")
	endpoint := fs.String("endpoint", "", "endpoint hash (0x-prefixed)")
	allow := fs.Bool("allow", true, "authorize (true) or revoke (false)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	conn, err := dial(*addr)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 2
	}
	defer conn.Close()

	req, err := structRequest(map[string]any{
		"caller":   *caller,
		"endpoint": *endpoint,
		"allowed":  *allow,
	})
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	ctx, cancel := context.WithTimeout(context.Background(), rpcTimeout)
	defer cancel()
	if _, err := grpcdispatch.NewDispatchClient(conn).SetEndpoint(ctx, req); err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	fmt.Fprintln(out, "ok")
	return 0
}

func cmdAdmin(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "admin: expected subcommand (set-provider, freeze-provider, set-domain, freeze-domain, get-provider, get-domain, owner, transfer-ownership)")
		return 2
	}
	sub, rest := args[0], args[1:]

	fs := flag.NewFlagSet("admin "+sub, flag.ContinueOnError)
	fs.SetOutput(errOut)
	addr := fs.String("addr", "", "daemon address")
	caller := fs.String("caller", "", "registry owner address")
	id := fs.Uint("id", 0, "provider ID")
	index := fs.Uint("index", 0, "domain index")
	location := fs.String("location", "", "provider location address")
	domainID := fs.Uint64("domain-id", 0, "domain identifier")
	newOwner := fs.String("new-owner", "", "new owner address")
	if err := fs.Parse(rest); err != nil {
		return 2
	}
	conn, err := dial(*addr)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 2
	}
	defer conn.Close()
	client := grpcdispatch.NewAdminClient(conn)

	ctx, cancel := context.WithTimeout(context.Background(), rpcTimeout)
	defer cancel()

	fields := map[string]any{
		"caller":    *caller,
		"id":        strconv.FormatUint(uint64(*id), 10),
		"index":     strconv.FormatUint(uint64(*index), 10),
		"location":  *location,
		"domain_id": strconv.FormatUint(*domainID, 10),
		"new_owner": *newOwner,
	}
	req, err := structRequest(fields)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}

	switch sub {
	case "set-provider":
		_, err = client.SetProvider(ctx, req)
	case "freeze-provider":
		_, err = client.FreezeProvider(ctx, req)
	case "set-domain":
		_, err = client.SetDomain(ctx, req)
	case "freeze-domain":
		_, err = client.FreezeDomain(ctx, req)
	case "transfer-ownership":
		_, err = client.TransferOwnership(ctx, req)
	case "get-provider":
		var resp *wrapperspb.StringValue
		resp, err = client.GetProvider(ctx, req)
		if err == nil {
			fmt.Fprintf(out, "provider: %s\n", resp.GetValue())
			return 0
		}
	case "get-domain":
		var resp *wrapperspb.StringValue
		resp, err = client.GetDomain(ctx, req)
		if err == nil {
			fmt.Fprintf(out, "domain: %s\n", resp.GetValue())
			return 0
		}
	case "owner":
		var resp *wrapperspb.StringValue
		resp, err = client.Owner(ctx, req)
		if err == nil {
			fmt.Fprintf(out, "owner: %s\n", resp.GetValue())
			return 0
		}
	default:
		fmt.Fprintf(errOut, "admin: unknown subcommand %s\n", sub)
		return 2
	}
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	fmt.Fprintln(out, "ok")
	return 0
}
