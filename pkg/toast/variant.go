package toast

// Variant is the semantic severity of a toast, driving icon and color.
type Variant string

const (
	VariantSuccess Variant = "success"
	VariantError   Variant = "error"
	VariantWarning Variant = "warning"
	VariantInfo    Variant = "info"
)

// ParseVariant maps a raw string onto the closed variant set. Unrecognized
// values degrade to VariantInfo rather than failing.
func ParseVariant(s string) Variant {
	switch Variant(s) {
	case VariantSuccess, VariantError, VariantWarning, VariantInfo:
		return Variant(s)
	default:
		return VariantInfo
	}
}

// Valid reports whether v is one of the four known variants.
func (v Variant) Valid() bool {
	switch v {
	case VariantSuccess, VariantError, VariantWarning, VariantInfo:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (v Variant) String() string {
	return string(v)
}
