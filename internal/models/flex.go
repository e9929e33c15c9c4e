package models

import (
	"encoding/json"
	"fmt"
)

// FlexStrings is a prescription value that is either a single literal
// applying to every set ("10-15") or one value per set (["12","10","8"]).
// The original JSON shape is preserved on round-trip: a scalar stays a
// scalar, a list stays a list.
type FlexStrings struct {
	scalar bool
	vals   []string
}

// LiteralString builds a scalar-shaped value.
func LiteralString(s string) FlexStrings {
	return FlexStrings{scalar: true, vals: []string{s}}
}

// PerSetStrings builds a list-shaped value with one entry per set.
func PerSetStrings(vals ...string) FlexStrings {
	return FlexStrings{vals: append([]string(nil), vals...)}
}

// IsZero reports whether the value is unset. Used by the omitzero JSON
// option so absent prescriptions stay absent on the wire.
func (f FlexStrings) IsZero() bool { return len(f.vals) == 0 }

// IsScalar reports whether the original shape was a single literal.
func (f FlexStrings) IsScalar() bool { return f.scalar }

// Values returns a copy of the underlying values.
func (f FlexStrings) Values() []string { return append([]string(nil), f.vals...) }

// ForSet returns the prescription for set i (0-based). A scalar applies to
// every set; a list is indexed, returning "" past its end.
func (f FlexStrings) ForSet(i int) string {
	if f.scalar {
		return f.vals[0]
	}
	if i < 0 || i >= len(f.vals) {
		return ""
	}
	return f.vals[i]
}

// Clone returns an independent copy.
func (f FlexStrings) Clone() FlexStrings {
	return FlexStrings{scalar: f.scalar, vals: append([]string(nil), f.vals...)}
}

func (f FlexStrings) MarshalJSON() ([]byte, error) {
	if f.scalar {
		return json.Marshal(f.vals[0])
	}
	return json.Marshal(f.vals)
}

func (f *FlexStrings) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexStrings{scalar: true, vals: []string{s}}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("expected string or string list: %w", err)
	}
	*f = FlexStrings{vals: list}
	return nil
}

// FlexFloats is the numeric counterpart of FlexStrings, used for
// prescribed weight and percent-of-max values.
type FlexFloats struct {
	scalar bool
	vals   []float64
}

// LiteralFloat builds a scalar-shaped value.
func LiteralFloat(v float64) FlexFloats {
	return FlexFloats{scalar: true, vals: []float64{v}}
}

// PerSetFloats builds a list-shaped value with one entry per set.
func PerSetFloats(vals ...float64) FlexFloats {
	return FlexFloats{vals: append([]float64(nil), vals...)}
}

// IsZero reports whether the value is unset.
func (f FlexFloats) IsZero() bool { return len(f.vals) == 0 }

// IsScalar reports whether the original shape was a single number.
func (f FlexFloats) IsScalar() bool { return f.scalar }

// Values returns a copy of the underlying values.
func (f FlexFloats) Values() []float64 { return append([]float64(nil), f.vals...) }

// ForSet returns the value for set i (0-based), 0 past the end of a list.
func (f FlexFloats) ForSet(i int) float64 {
	if f.scalar {
		return f.vals[0]
	}
	if i < 0 || i >= len(f.vals) {
		return 0
	}
	return f.vals[i]
}

// Clone returns an independent copy.
func (f FlexFloats) Clone() FlexFloats {
	return FlexFloats{scalar: f.scalar, vals: append([]float64(nil), f.vals...)}
}

func (f FlexFloats) MarshalJSON() ([]byte, error) {
	if f.scalar {
		return json.Marshal(f.vals[0])
	}
	return json.Marshal(f.vals)
}

func (f *FlexFloats) UnmarshalJSON(data []byte) error {
	var v float64
	if err := json.Unmarshal(data, &v); err == nil {
		*f = FlexFloats{scalar: true, vals: []float64{v}}
		return nil
	}
	var list []float64
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("expected number or number list: %w", err)
	}
	*f = FlexFloats{vals: list}
	return nil
}
