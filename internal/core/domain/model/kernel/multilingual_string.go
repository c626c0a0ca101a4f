package kernel

// MultilingualString carries a text value in the primary language (Japanese)
// with an optional English slot. Venue names, event names and customer display
// names all use this shape.
//
// The zero value is valid and represents an absent name.
type MultilingualString struct {
	Ja string
	En string
}

// NewMultilingualString creates a MultilingualString with distinct values per
// language slot.
func NewMultilingualString(ja string, en string) MultilingualString {
	return MultilingualString{Ja: ja, En: en}
}

// NewUniformMultilingualString creates a MultilingualString with the same value
// in both language slots. Used when a separate translation is not available,
// e.g. stamping a customer name onto a reservation at order time.
func NewUniformMultilingualString(value string) MultilingualString {
	return MultilingualString{Ja: value, En: value}
}

// IsEmpty reports whether both language slots are absent.
func (m MultilingualString) IsEmpty() bool {
	return m.Ja == "" && m.En == ""
}
