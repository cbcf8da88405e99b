package compliance

import (
	"fmt"

	"noesis/internal/equilibrium"
	"noesis/internal/model"
)

// PoleProof is one side of a duality with its computed percentage.
type PoleProof struct {
	Name       string  `json:"name"`
	Value      float64 `json:"value"`
	Percentage float64 `json:"percentage"`
}

// DualityProofReport carries the recomputed balance of a duality.
type DualityProofReport struct {
	Name     string    `json:"name"`
	Positive PoleProof `json:"positive"`
	Negative PoleProof `json:"negative"`
	Balanced bool      `json:"is_balanced"`
}

// AttributeProof shows the deterministic structural split of an attribute.
type AttributeProof struct {
	Name        string  `json:"name"`
	Total       float64 `json:"total"`
	Structure   float64 `json:"structure"`
	Flexibility float64 `json:"flexibility"`
	Ratio       string  `json:"ratio"`
}

// DomainProofReport is the full proof payload for one domain.
type DomainProofReport struct {
	Domain          string              `json:"domain"`
	Type            string              `json:"type"`
	State           string              `json:"state"`
	Compliant       bool                `json:"compliant"`
	Duality         *DualityProofReport `json:"duality,omitempty"`
	Attributes      []AttributeProof    `json:"attributes"`
	SubDomains      int                 `json:"sub_domains"`
	SubDomainsValid bool                `json:"sub_domains_valid"`
	Concepts        int                 `json:"concepts"`
}

// HierarchyProofReport is the proof payload for an entire hierarchy.
type HierarchyProofReport struct {
	Hierarchy string              `json:"hierarchy"`
	Report    Report              `json:"report"`
	Roots     []DomainProofReport `json:"roots"`
}

// ParameterProof is one audited registry entry.
type ParameterProof struct {
	Name     string  `json:"name"`
	Positive float64 `json:"positive"`
	Negative float64 `json:"negative"`
	Balance  string  `json:"balance"`
	Balanced bool    `json:"is_balanced"`
}

// RegistryAuditReport enumerates every registered parameter with its
// recomputed balance.
type RegistryAuditReport struct {
	Total       int              `json:"total"`
	AllBalanced bool             `json:"all_balanced"`
	Parameters  []ParameterProof `json:"parameters"`
}

// DualityProof recomputes the percentage split of a duality's poles.
func DualityProof(d *model.Duality) DualityProofReport {
	pa, pb := d.Balance()
	return DualityProofReport{
		Name:     d.Name,
		Positive: PoleProof{Name: d.Positive.Name, Value: d.Positive.Value, Percentage: pa},
		Negative: PoleProof{Name: d.Negative.Name, Value: d.Negative.Value, Percentage: pb},
		Balanced: d.ValidateBalance(),
	}
}

// DomainProof builds the proof payload for one domain. Sub-domain validity
// is surfaced as a separate field, never ANDed into the domain's own flag.
func DomainProof(d *model.Domain) DomainProofReport {
	proof := DomainProofReport{
		Domain:     d.Name(),
		Type:       string(d.Type()),
		State:      string(d.State()),
		Compliant:  d.Compliant(),
		Attributes: []AttributeProof{},
		SubDomains: len(d.SubDomains()),
		Concepts:   len(d.Concepts()),
	}
	if duality := d.Duality(); duality != nil {
		p := DualityProof(duality)
		proof.Duality = &p
	}
	for _, attr := range d.Attributes() {
		proof.Attributes = append(proof.Attributes, AttributeProof{
			Name:        attr.Name,
			Total:       attr.Total,
			Structure:   attr.Structure,
			Flexibility: attr.Flexibility,
			Ratio:       fmt.Sprintf("%.0f/%.0f", equilibrium.OperationalStructure, equilibrium.OperationalFlexibility),
		})
	}
	proof.SubDomainsValid = SubDomainsReport(d).AllCompliant
	return proof
}

// HierarchyProof builds the full audit payload for a hierarchy: the summary
// report plus a proof per root domain.
func HierarchyProof(h *model.Hierarchy) HierarchyProofReport {
	proof := HierarchyProofReport{
		Hierarchy: h.Name(),
		Report:    HierarchyReport(h),
		Roots:     []DomainProofReport{},
	}
	for _, root := range h.Roots() {
		proof.Roots = append(proof.Roots, DomainProof(root))
	}
	return proof
}

// RegistryAudit recomputes the balance of every registered parameter in
// registration order.
func RegistryAudit(reg *equilibrium.Registry) RegistryAuditReport {
	audit := RegistryAuditReport{
		AllBalanced: true,
		Parameters:  []ParameterProof{},
	}
	for _, param := range reg.Enumerate() {
		pa, pb := equilibrium.PercentageSplit(param.Positive, param.Negative)
		balanced := equilibrium.IsBalanced(param.Positive, param.Negative)
		audit.Parameters = append(audit.Parameters, ParameterProof{
			Name:     param.Name,
			Positive: param.Positive,
			Negative: param.Negative,
			Balance:  fmt.Sprintf("%.2f/%.2f", pa, pb),
			Balanced: balanced,
		})
		if !balanced {
			audit.AllBalanced = false
		}
	}
	audit.Total = len(audit.Parameters)
	return audit
}
