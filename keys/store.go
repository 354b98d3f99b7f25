package keys

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// KeyStore stores initiator keys on the local filesystem.
type KeyStore struct {
	Directory string
}

// KeyEntry is one listed key.
type KeyEntry struct {
	Identifier string
	Roles      []string
}

// DefaultDirectory is where keys live unless overridden.
func DefaultDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".w3cash", "keys"), nil
}

// Open returns a keystore over directory, defaulting to ~/.w3cash/keys.
func Open(directory string) (*KeyStore, error) {
	if directory == "" {
		var err error
		directory, err = DefaultDirectory()
		if err != nil {
			return nil, err
		}
	}
	return &KeyStore{Directory: directory}, nil
}

func (ks *KeyStore) rootKeyPath(identifier string) string {
	return filepath.Join(ks.Directory, identifier, "root.key")
}

func (ks *KeyStore) roleKeyPath(identifier, role string) string {
	return filepath.Join(ks.Directory, identifier, "roles", role+".key")
}

// CheckName validates a key or role identifier.
func CheckName(identifier string) error {
	if identifier == "" {
		return errors.New("identifier cannot be empty")
	}
	for _, char := range identifier {
		if (char >= 'a' && char <= 'z') || (char >= 'A' && char <= 'Z') || (char >= '0' && char <= '9') || char == '-' || char == '_' {
			continue
		}
		return fmt.Errorf("invalid character %q in identifier", char)
	}
	return nil
}

// ParseSeedHex parses a 32-byte ed25519 seed from hex.
func ParseSeedHex(seedHex string) ([]byte, error) {
	seedHex = strings.TrimSpace(seedHex)
	seedHex = strings.TrimPrefix(seedHex, "0x")
	data, err := hex.DecodeString(seedHex)
	if err != nil {
		return nil, err
	}
	if len(data) != ed25519.SeedSize {
		return nil, fmt.Errorf("expected seed length of %d bytes, got %d", ed25519.SeedSize, len(data))
	}
	return data, nil
}

func (ks *KeyStore) saveSeed(filePath string, seed []byte, overwrite bool) error {
	if len(seed) != ed25519.SeedSize {
		return fmt.Errorf("expected seed length of %d bytes", ed25519.SeedSize)
	}
	if err := os.MkdirAll(filepath.Dir(filePath), 0o700); err != nil {
		return err
	}
	flags := os.O_WRONLY | os.O_CREATE
	if overwrite {
		flags |= os.O_TRUNC
	} else {
		flags |= os.O_EXCL
	}
	file, err := os.OpenFile(filePath, flags, 0o600)
	if err != nil {
		return err
	}
	defer file.Close()
	if _, err := file.WriteString(hex.EncodeToString(seed) + "\n"); err != nil {
		return err
	}
	return nil
}

func (ks *KeyStore) loadSeed(filePath string) ([]byte, error) {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	return ParseSeedHex(string(raw))
}

// InitRoot creates a root key. A nil seed generates a random one.
func (ks *KeyStore) InitRoot(identifier string, seed []byte, overwrite bool) error {
	if err := CheckName(identifier); err != nil {
		return err
	}
	if seed == nil {
		seed = make([]byte, ed25519.SeedSize)
		if _, err := rand.Read(seed); err != nil {
			return err
		}
	}
	return ks.saveSeed(ks.rootKeyPath(identifier), seed, overwrite)
}

// DeriveRole creates a deterministic role subkey from a stored root key.
func (ks *KeyStore) DeriveRole(identifier, role string, overwrite bool) error {
	if err := CheckName(identifier); err != nil {
		return err
	}
	rootSeed, err := ks.loadSeed(ks.rootKeyPath(identifier))
	if err != nil {
		return err
	}
	roleSeed, err := DeriveRoleSeed(rootSeed, role)
	if err != nil {
		return err
	}
	return ks.saveSeed(ks.roleKeyPath(identifier, role), roleSeed, overwrite)
}

// PrivateKey loads the ed25519 private key for an identifier; role may
// be empty for the root key.
func (ks *KeyStore) PrivateKey(identifier, role string) (ed25519.PrivateKey, error) {
	if err := CheckName(identifier); err != nil {
		return nil, err
	}
	path := ks.rootKeyPath(identifier)
	if role != "" {
		if err := CheckName(role); err != nil {
			return nil, err
		}
		path = ks.roleKeyPath(identifier, role)
	}
	seed, err := ks.loadSeed(path)
	if err != nil {
		return nil, err
	}
	return ed25519.NewKeyFromSeed(seed), nil
}

// List enumerates stored keys and their derived roles.
func (ks *KeyStore) List() ([]KeyEntry, error) {
	entries, err := os.ReadDir(ks.Directory)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var out []KeyEntry
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		ke := KeyEntry{Identifier: entry.Name()}
		roleDir := filepath.Join(ks.Directory, entry.Name(), "roles")
		roles, err := os.ReadDir(roleDir)
		if err == nil {
			for _, r := range roles {
				name := strings.TrimSuffix(r.Name(), ".key")
				if name != r.Name() {
					ke.Roles = append(ke.Roles, name)
				}
			}
			sort.Strings(ke.Roles)
		}
		out = append(out, ke)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Identifier < out[j].Identifier })
	return out, nil
}
