package storage

import (
	"context"
	"fmt"

	"noesis/internal/model"
)

// DomainSnapshot flattens an in-memory domain into its durable records. The
// compliance fields carry whatever was true in memory; the sync guards
// re-derive them at write time regardless.
func DomainSnapshot(d *model.Domain) (DomainRecord, []ConceptRecord, []RelationRecord) {
	rec := DomainRecord{
		ID:          d.ID().String(),
		Name:        d.Name(),
		Type:        string(d.Type()),
		Description: d.Description(),
		State:       string(d.State()),
		Active:      d.State() == model.StateActive,
		Compliant:   d.Compliant(),
	}
	if duality := d.Duality(); duality != nil {
		rec.DualityName = duality.Name
		rec.PositiveName = duality.Positive.Name
		rec.PositiveValue = duality.Positive.Value
		rec.NegativeName = duality.Negative.Name
		rec.NegativeValue = duality.Negative.Value
	}

	concepts := make([]ConceptRecord, 0, len(d.Concepts()))
	for _, c := range d.Concepts() {
		concepts = append(concepts, ConceptRecord{
			ID:          c.ID.String(),
			DomainID:    d.ID().String(),
			Name:        c.Name,
			Type:        string(c.Type),
			Description: c.Description,
			Certainty:   c.Certainty,
			Uncertainty: c.Uncertainty,
			Balanced:    c.IsBalanced(),
		})
	}

	relations := make([]RelationRecord, 0, len(d.Outgoing()))
	for _, r := range d.Outgoing() {
		relations = append(relations, RelationRecord{
			ID:           r.ID.String(),
			Name:         r.Name,
			Type:         r.Type,
			SourceDomain: r.Source.Name(),
			TargetDomain: r.Target.Name(),
			Give:         r.Give,
			Receive:      r.Receive,
			Balanced:     r.IsBalanced(),
		})
	}

	return rec, concepts, relations
}

// DualitySnapshot flattens a duality into its durable record.
func DualitySnapshot(d *model.Duality) DualityRecord {
	return DualityRecord{
		ID:            d.Name,
		Name:          d.Name,
		PositiveName:  d.Positive.Name,
		PositiveValue: d.Positive.Value,
		NegativeName:  d.Negative.Name,
		NegativeValue: d.Negative.Value,
		Balanced:      d.IsBalanced(),
	}
}

// PersistDomain writes a domain and everything it owns: its record, its
// duality, its concepts, and its outgoing relations.
func PersistDomain(ctx context.Context, store Store, d *model.Domain) error {
	rec, concepts, relations := DomainSnapshot(d)

	if err := store.SaveDomain(ctx, rec); err != nil {
		return fmt.Errorf("save domain %s: %w", d.Name(), err)
	}
	if duality := d.Duality(); duality != nil {
		if err := store.SaveDuality(ctx, DualitySnapshot(duality)); err != nil {
			return fmt.Errorf("save duality %s: %w", duality.Name, err)
		}
	}
	for _, c := range concepts {
		if err := store.SaveConcept(ctx, c); err != nil {
			return fmt.Errorf("save concept %s: %w", c.Name, err)
		}
	}
	for _, r := range relations {
		if err := store.SaveRelation(ctx, r); err != nil {
			return fmt.Errorf("save relation %s: %w", r.Name, err)
		}
	}
	return nil
}

// PersistHierarchy writes every reachable domain in the hierarchy and
// returns the saved names in walk order.
func PersistHierarchy(ctx context.Context, store Store, h *model.Hierarchy) ([]string, error) {
	saved := make([]string, 0, h.TotalDomains())
	for _, d := range h.Domains() {
		if err := PersistDomain(ctx, store, d); err != nil {
			return saved, err
		}
		saved = append(saved, d.Name())
	}
	return saved, nil
}
