// Package model defines the knowledge-domain entities and the balance
// contract each of them carries. Enforcement is deliberately two-tier:
// dualities fail fast at construction, concepts silently self-correct, and
// relations only report. The tiers are distinct policies, not one policy
// with bugs; callers depend on each behaving exactly this way.
package model

// Balancer is the behavior shared by every balanced entity variant.
//
// ValidateBalance recomputes (and for some variants corrects) the entity's
// balance and returns the fresh result. IsBalanced returns the cached result
// of the last validation without recomputing.
type Balancer interface {
	ValidateBalance() bool
	IsBalanced() bool
}
