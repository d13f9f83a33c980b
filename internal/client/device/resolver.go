// Package device resolves a stable identifier for vote deduplication.
//
// The service deduplicates votes per (suggestion, device) pair, so the
// identifier should survive restarts, but voting must never be blocked by
// a failed resolution. Resolution degrades through a provider chain and
// bottoms out at a fixed sentinel shared by every client that could not be
// identified, trading deduplication precision for availability.
package device

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/Tharun-raj-u/speakout/internal/client/storage"
)

// FallbackID is the sentinel used when every provider fails.
const FallbackID = "device123"

const keyDeviceID = "device_id"

// machineIDFile is a test seam; the default is the systemd machine id.
var machineIDFile = "/etc/machine-id"

// Provider yields a device identifier or an error. Errors are never
// surfaced to the user; they only advance the chain.
type Provider func(ctx context.Context) (string, error)

// Resolver walks its provider chain on first use and caches the winner for
// the life of the process.
type Resolver struct {
	providers []Provider
	cached    string
}

// NewResolver builds the default chain: hashed machine id first, then a
// per-install UUID persisted in the metadata database.
func NewResolver(meta storage.Repository) *Resolver {
	return &Resolver{
		providers: []Provider{
			MachineID,
			PersistedID(meta),
		},
	}
}

// NewResolverWith builds a resolver over an explicit chain. Used by tests
// and by callers that want to disable persistence.
func NewResolverWith(providers ...Provider) *Resolver {
	return &Resolver{providers: providers}
}

// DeviceID returns the first identifier the chain produces, or FallbackID
// when every provider fails. It never returns an error.
func (r *Resolver) DeviceID(ctx context.Context) string {
	if r.cached != "" {
		return r.cached
	}
	for _, p := range r.providers {
		id, err := p(ctx)
		if err == nil && id != "" {
			r.cached = id
			return id
		}
	}
	return FallbackID
}

// MachineID derives an identifier from the host machine id. The raw id is
// hashed so the host identity never leaves the machine verbatim.
func MachineID(ctx context.Context) (string, error) {
	data, err := os.ReadFile(machineIDFile)
	if err != nil {
		return "", err
	}
	raw := strings.TrimSpace(string(data))
	if raw == "" {
		return "", os.ErrNotExist
	}
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:16]), nil
}

// PersistedID returns a provider that reads a per-install UUID from the
// metadata database, minting and saving one on first use.
func PersistedID(meta storage.Repository) Provider {
	return func(ctx context.Context) (string, error) {
		v, err := meta.Get(ctx, keyDeviceID)
		if err != nil {
			return "", err
		}
		if len(v) > 0 {
			return string(v), nil
		}
		id := uuid.NewString()
		if err := meta.Set(ctx, keyDeviceID, []byte(id)); err != nil {
			return "", err
		}
		return id, nil
	}
}
