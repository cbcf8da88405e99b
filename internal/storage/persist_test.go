package storage

import (
	"context"
	"testing"

	"noesis/internal/model"
)

func activatedDomain(t *testing.T, name string) *model.Domain {
	t.Helper()
	d := model.NewDomain(name, model.DomainFundamental, "", nil)
	if err := d.SetDuality("positive", 50, "negative", 50, ""); err != nil {
		t.Fatalf("set duality: %v", err)
	}
	if err := d.Activate(); err != nil {
		t.Fatalf("activate: %v", err)
	}
	return d
}

func TestPersistDomainWritesEverythingItOwns(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}

	d := activatedDomain(t, "physics")
	d.CreateConcept("gravity", model.ConceptLaw, "masses attract", 80)
	other := activatedDomain(t, "mathematics")
	d.AddRelation(model.NewDomainRelation("physics_math", d, other, 50, 50))

	if err := PersistDomain(ctx, store, d); err != nil {
		t.Fatalf("persist domain: %v", err)
	}

	rec, ok, err := store.GetDomain(ctx, "physics")
	if err != nil || !ok {
		t.Fatalf("get domain: ok=%v err=%v", ok, err)
	}
	if !rec.Active || !rec.Compliant {
		t.Fatalf("expected active compliant record, got %+v", rec)
	}
	if rec.DualityName != "physics_duality" {
		t.Fatalf("unexpected duality name %q", rec.DualityName)
	}

	if _, ok, _ := store.GetDuality(ctx, "physics_duality"); !ok {
		t.Fatal("expected persisted duality")
	}

	concepts, err := store.ConceptsForDomain(ctx, d.ID().String())
	if err != nil {
		t.Fatalf("concepts: %v", err)
	}
	if len(concepts) != 1 || concepts[0].Name != "gravity" {
		t.Fatalf("unexpected concepts: %+v", concepts)
	}
	if concepts[0].Balanced {
		t.Fatal("80/20 concept should be flagged unbalanced in the store")
	}

	rel, ok, err := store.GetRelation(ctx, "physics_math")
	if err != nil || !ok {
		t.Fatalf("get relation: ok=%v err=%v", ok, err)
	}
	if !rel.Balanced {
		t.Fatal("50/50 relation should be stored balanced")
	}
}

func TestPersistHierarchyWalkOrder(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}

	root := activatedDomain(t, "science")
	child := activatedDomain(t, "physics")
	grandchild := activatedDomain(t, "optics")
	child.AddSubDomain(grandchild)
	root.AddSubDomain(child)

	h := model.NewHierarchy("knowledge")
	h.AddRoot(root)

	saved, err := PersistHierarchy(ctx, store, h)
	if err != nil {
		t.Fatalf("persist hierarchy: %v", err)
	}
	want := []string{"science", "physics", "optics"}
	if len(saved) != len(want) {
		t.Fatalf("saved %v, want %v", saved, want)
	}
	for i := range want {
		if saved[i] != want[i] {
			t.Fatalf("saved %v, want %v", saved, want)
		}
	}

	stats, err := store.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Domains != 3 || stats.CompliantDomains != 3 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}
