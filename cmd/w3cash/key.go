package main

import (
	"crypto/ed25519"
	"flag"
	"fmt"
	"io"

	"github.com/Tora-Build/w3cash-sdk-sub001/auth"
	"github.com/Tora-Build/w3cash-sdk-sub001/keys"
)

func cmdKey(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "key: expected subcommand (init, derive, list, export)")
		return 2
	}
	switch args[0] {
	case "init":
		return cmdKeyInit(args[1:], out, errOut)
	case "derive":
		return cmdKeyDerive(args[1:], out, errOut)
	case "list":
		return cmdKeyList(args[1:], out, errOut)
	case "export":
		return cmdKeyExport(args[1:], out, errOut)
	default:
		fmt.Fprintf(errOut, "key: unknown subcommand %s\n", args[0])
		return 2
	}
}

func openStore(errOut io.Writer, dir string) (*keys.KeyStore, bool) {
	ks, err := keys.Open(dir)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return nil, false
	}
	return ks, true
}

func cmdKeyInit(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("key init", flag.ContinueOnError)
	fs.SetOutput(errOut)
	name := fs.String("name", "", "key name")
	seedHex := fs.String("seed-hex", "", "32-byte ed25519 seed (hex); random if omitted")
	force := fs.Bool("force", false, "overwrite an existing key")
	dir := fs.String("dir", "", "keystore directory (default ~/.w3cash/keys)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	ks, ok := openStore(errOut, *dir)
	if !ok {
		return 1
	}
	var seed []byte
	if *seedHex != "" {
		var err error
		seed, err = keys.ParseSeedHex(*seedHex)
		if err != nil {
			fmt.Fprintln(errOut, err)
			return 2
		}
	}
	if err := ks.InitRoot(*name, seed, *force); err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	priv, err := ks.PrivateKey(*name, "")
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	addr := auth.AddressFromPublicKey(priv.Public().(ed25519.PublicKey))
	fmt.Fprintf(out, "created %s\naddress: %s\n", *name, addr)
	return 0
}

func cmdKeyDerive(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("key derive", flag.ContinueOnError)
	fs.SetOutput(errOut)
	from := fs.String("from", "", "root key name")
	role := fs.String("role", "", "role to derive")
	force := fs.Bool("force", false, "overwrite an existing role key")
	dir := fs.String("dir", "", "keystore directory")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	ks, ok := openStore(errOut, *dir)
	if !ok {
		return 1
	}
	if err := ks.DeriveRole(*from, *role, *force); err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	fmt.Fprintf(out, "derived %s/%s\n", *from, *role)
	return 0
}

func cmdKeyList(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("key list", flag.ContinueOnError)
	fs.SetOutput(errOut)
	dir := fs.String("dir", "", "keystore directory")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	ks, ok := openStore(errOut, *dir)
	if !ok {
		return 1
	}
	entries, err := ks.List()
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	for _, e := range entries {
		fmt.Fprintln(out, e.Identifier)
		for _, r := range e.Roles {
			fmt.Fprintf(out, "  role: %s\n", r)
		}
	}
	return 0
}

func cmdKeyExport(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("key export", flag.ContinueOnError)
	fs.SetOutput(errOut)
	name := fs.String("name", "", "key name")
	role := fs.String("role", "", "role (optional)")
	dir := fs.String("dir", "", "keystore directory")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	ks, ok := openStore(errOut, *dir)
	if !ok {
		return 1
	}
	priv, err := ks.PrivateKey(*name, *role)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	pub := priv.Public().(ed25519.PublicKey)
	fmt.Fprintf(out, "address: %s\n", auth.AddressFromPublicKey(pub))
	fmt.Fprintf(out, "pubkey: %x\n", pub)
	return 0
}
