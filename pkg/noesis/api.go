// Package noesis is the public surface of the equilibrium engine. A Client
// bundles a balance registry with a persistence backend and exposes the
// catalog, compliance, and persistence operations the internal packages
// provide.
package noesis

import (
	"context"
	"fmt"

	"noesis/internal/catalog"
	"noesis/internal/compliance"
	"noesis/internal/equilibrium"
	"noesis/internal/model"
	"noesis/internal/storage"
)

const defaultDBPath = "noesis.db"

type Options struct {
	StoreKind string
	DBPath    string
}

type Client struct {
	store    storage.Store
	registry *equilibrium.Registry
}

// Report re-exports the compliance report type so callers do not need to
// import internal packages.
type Report = compliance.Report

type ProofReport = compliance.HierarchyProofReport

type AuditReport = compliance.RegistryAuditReport

type Stats = storage.Stats

func New(opts Options) (*Client, error) {
	dbPath := opts.DBPath
	if dbPath == "" {
		dbPath = defaultDBPath
	}

	store, err := storage.NewStore(opts.StoreKind, dbPath)
	if err != nil {
		return nil, err
	}

	return &Client{
		store:    store,
		registry: equilibrium.NewRegistry(),
	}, nil
}

func (c *Client) Close() error {
	return storage.CloseIfSupported(c.store)
}

func (c *Client) Init(ctx context.Context) error {
	return c.store.Init(ctx)
}

// Registry exposes the client's balance registry. All domains built through
// this client register their dualities here.
func (c *Client) Registry() *equilibrium.Registry {
	return c.registry
}

// BuildSeeds constructs the built-in domain catalog into a hierarchy.
func (c *Client) BuildSeeds() (*model.Hierarchy, error) {
	return catalog.BuildHierarchy("knowledge", catalog.Seeds(), c.registry)
}

// BuildCatalog constructs a hierarchy from a YAML catalog file.
func (c *Client) BuildCatalog(path string) (*model.Hierarchy, error) {
	file, err := catalog.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	name := file.Name
	if name == "" {
		name = "knowledge"
	}
	return catalog.BuildHierarchy(name, file.Domains, c.registry)
}

// Verify checks every domain reachable from the hierarchy roots.
func (c *Client) Verify(h *model.Hierarchy) Report {
	return compliance.HierarchyReport(h)
}

// Proof builds the full per-domain evidence report for a hierarchy.
func (c *Client) Proof(h *model.Hierarchy) ProofReport {
	return compliance.HierarchyProof(h)
}

// Audit reports every parameter pair registered with the client's registry.
func (c *Client) Audit() AuditReport {
	return compliance.RegistryAudit(c.registry)
}

// Persist writes every domain in the hierarchy to the client's store and
// returns the saved names in walk order.
func (c *Client) Persist(ctx context.Context, h *model.Hierarchy) ([]string, error) {
	return storage.PersistHierarchy(ctx, c.store, h)
}

func (c *Client) Stats(ctx context.Context) (Stats, error) {
	return c.store.Stats(ctx)
}
