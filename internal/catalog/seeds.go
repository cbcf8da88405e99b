package catalog

// Seeds returns the embedded descriptor catalog: a representative set of
// knowledge domains with their dualities, principle concepts, and
// attributes. Values mirror the canonical catalog: poles at 50/50,
// principles at certainty 80, axioms at 100.
func Seeds() []Descriptor {
	return []Descriptor{
		{
			Name:        "Art",
			Type:        "fundamental",
			Description: "The study of visual arts and their creation, meaning, and history",
			Duality:     DualitySpec{Name: "art_duality", PositiveName: "form", NegativeName: "content"},
			Attributes: []AttributeSeed{
				{Name: "technique", Total: 100},
				{Name: "expression", Total: 100},
			},
			Concepts: []ConceptSeed{
				{Name: "Unity in Variety", Type: "principle", Description: "Art balances diversity with coherence", Certainty: 80},
				{Name: "Significant Form", Type: "principle", Description: "Form itself can carry meaning", Certainty: 80},
				{Name: "Expression Theory", Type: "principle", Description: "Art expresses emotion", Certainty: 80},
				{Name: "Context Dependency", Type: "principle", Description: "Meaning depends on context", Certainty: 80},
			},
			Relations: []RelationSeed{
				{Source: "Significant Form", Target: "Expression Theory", Type: "contradicts"},
				{Source: "Context Dependency", Target: "Unity in Variety", Type: "supports"},
			},
		},
		{
			Name:        "Astronomy",
			Type:        "fundamental",
			Description: "The study of celestial objects and the universe",
			Duality:     DualitySpec{Name: "astronomy_duality", PositiveName: "light", NegativeName: "dark"},
			Concepts: []ConceptSeed{
				{Name: "Cosmological Principle", Type: "principle", Description: "The universe is homogeneous and isotropic on large scales", Certainty: 80},
				{Name: "Hubble's Law", Type: "law", Description: "Galaxies recede at velocities proportional to their distance", Certainty: 80},
				{Name: "Copernican Principle", Type: "principle", Description: "Earth does not occupy a special position in the universe", Certainty: 80},
				{Name: "Stellar Nucleosynthesis", Type: "theory", Description: "Elements are forged in the cores of stars", Certainty: 80},
			},
			Relations: []RelationSeed{
				{Source: "Hubble's Law", Target: "Cosmological Principle", Type: "supports"},
			},
		},
		{
			Name:        "Psychology",
			Type:        "fundamental",
			Description: "The study of mind and behavior",
			Duality:     DualitySpec{Name: "psychology_duality", PositiveName: "conscious", NegativeName: "unconscious"},
			Concepts: []ConceptSeed{
				{Name: "Psychic Determinism", Type: "principle", Description: "All mental events have causes", Certainty: 80},
				{Name: "Behavioral Plasticity", Type: "principle", Description: "Behavior can be modified through experience", Certainty: 80},
				{Name: "Individual Differences", Type: "principle", Description: "People vary systematically in psychological attributes", Certainty: 80},
				{Name: "Mind-Body Interaction", Type: "principle", Description: "Mental and physical processes mutually influence each other", Certainty: 80},
			},
		},
		{
			Name:        "Mathematics",
			Type:        "fundamental",
			Description: "The study of quantity, structure, space, and change",
			Duality:     DualitySpec{Name: "mathematics_duality", PositiveName: "abstract", NegativeName: "concrete"},
			Attributes: []AttributeSeed{
				{Name: "rigor", Total: 100},
			},
			Concepts: []ConceptSeed{
				{Name: "Identity", Type: "axiom", Description: "For any value x, x = x", Certainty: 100},
				{Name: "Non-Contradiction", Type: "axiom", Description: "A statement cannot be both true and false", Certainty: 100},
				{Name: "Excluded Middle", Type: "axiom", Description: "Every statement is either true or false", Certainty: 100},
				{Name: "Induction", Type: "axiom", Description: "If P(0) and P(n) implies P(n+1), then P(n) for all n", Certainty: 100},
				{Name: "Choice", Type: "axiom", Description: "For any collection of non-empty sets, a choice function exists", Certainty: 100},
			},
			Relations: []RelationSeed{
				{Source: "Excluded Middle", Target: "Non-Contradiction", Type: "derives_from"},
			},
		},
		{
			Name:        "Ecology",
			Type:        "fundamental",
			Description: "The study of organisms and their environment",
			Duality:     DualitySpec{Name: "ecology_duality", PositiveName: "growth", NegativeName: "decay"},
			Concepts: []ConceptSeed{
				{Name: "Energy Flow", Type: "principle", Description: "Energy flows through ecosystems in one direction", Certainty: 80},
				{Name: "Nutrient Cycling", Type: "principle", Description: "Matter cycles through ecosystems in biogeochemical cycles", Certainty: 80},
				{Name: "Competitive Exclusion", Type: "principle", Description: "Two species cannot occupy the same niche indefinitely", Certainty: 80},
				{Name: "Ecological Succession", Type: "principle", Description: "Ecosystems undergo predictable changes over time", Certainty: 80},
			},
		},
		{
			Name:        "Music",
			Type:        "fundamental",
			Description: "The study of organized sound in time",
			Duality:     DualitySpec{Name: "music_duality", PositiveName: "sound", NegativeName: "silence"},
			Concepts: []ConceptSeed{
				{Name: "Temporal Art", Type: "principle", Description: "Music unfolds in time", Certainty: 80},
				{Name: "Harmonic Series", Type: "principle", Description: "Overtones determine timbre and consonance", Certainty: 80},
				{Name: "Tension and Resolution", Type: "principle", Description: "Music creates and resolves tension", Certainty: 80},
				{Name: "Repetition and Variation", Type: "principle", Description: "Form arises from repetition and change", Certainty: 80},
			},
			Relations: []RelationSeed{
				{Source: "Tension and Resolution", Target: "Harmonic Series", Type: "derives_from"},
			},
		},
	}
}
