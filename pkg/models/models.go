// Package models defines the closed set of completion models askai can use.
package models

// Model identifies one of the fixed completion models offered by the
// setup wizard.
type Model string

const (
	TextAda001     Model = "text-ada-001"
	TextBabbage001 Model = "text-babbage-001"
	TextCurie001   Model = "text-curie-001"
	TextDavinci003 Model = "text-davinci-003"
)

// All returns the selectable models in menu order. The position of a model
// in the returned slice determines its 1-based ordinal in the wizard.
func All() []Model {
	return []Model{TextAda001, TextBabbage001, TextCurie001, TextDavinci003}
}

// FromOrdinal maps a 1-based menu ordinal to its model. The second return
// value is false when n is outside 1..len(All()).
func FromOrdinal(n int) (Model, bool) {
	all := All()
	if n < 1 || n > len(all) {
		return "", false
	}

	return all[n-1], true
}

// Valid reports whether m is one of the known models.
func (m Model) Valid() bool {
	switch m {
	case TextAda001, TextBabbage001, TextCurie001, TextDavinci003:
		return true
	}
	return false
}

// String returns the canonical model name.
func (m Model) String() string {
	return string(m)
}
