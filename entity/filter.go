package entity

// FilterSpec narrows a collection to items whose Property matches Value.
// Value is an unanchored, case-insensitive pattern.
// Several specs applied together are AND-ed.
type FilterSpec struct {
	Property string `yaml:"property"`
	Value    string `yaml:"value"`
}
