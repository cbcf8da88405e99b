package storage

import (
	"math"

	"noesis/internal/equilibrium"
)

// The sync guards below run immediately before each insert or update, one
// per record kind. Each recomputes the stored compliance flag from the
// values present in the record being written and overwrites whatever the
// caller supplied, so the durable flag is always a function of the durable
// values in the same write. Guards only flag; they never reject the write.

// SyncDuality overwrites the record's balance flag from its pole values.
func SyncDuality(rec DualityRecord) DualityRecord {
	rec.Balanced = equilibrium.IsBalanced(rec.PositiveValue, rec.NegativeValue)
	return rec
}

// SyncDomain overwrites the record's compliance flag from its denormalized
// duality values. A record without a duality is non-compliant.
func SyncDomain(rec DomainRecord) DomainRecord {
	if rec.DualityName == "" {
		rec.Compliant = false
		return rec
	}
	rec.Compliant = equilibrium.IsBalanced(rec.PositiveValue, rec.NegativeValue)
	return rec
}

// SyncRelation overwrites the record's balance flag. Only the give share is
// checked against 50; a zero-total pair is vacuously balanced.
func SyncRelation(rec RelationRecord) RelationRecord {
	rec.Balanced = equilibrium.IsBalancedAt(rec.Give, rec.Receive, equilibrium.DefaultTarget, equilibrium.DefaultEpsilon)
	return rec
}

// SyncConcept renormalizes the stored certainty/uncertainty pair to sum to
// 100 and overwrites the balance flag from the renormalized certainty.
func SyncConcept(rec ConceptRecord) ConceptRecord {
	total := rec.Certainty + rec.Uncertainty
	if total > 0 {
		rec.Certainty = rec.Certainty / total * 100
		rec.Uncertainty = rec.Uncertainty / total * 100
	}
	rec.Balanced = math.Abs(rec.Certainty-equilibrium.DefaultTarget) < equilibrium.DefaultEpsilon
	return rec
}
