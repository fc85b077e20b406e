package models

import "strconv"

// FlatFieldMap maps tag names to their text. Absent tags read as "".
type FlatFieldMap map[string]string

// Get returns the value for key, or "" when absent.
func (m FlatFieldMap) Get(key string) string {
	return m[key]
}

// Has reports whether key was present in the source subtree, even with an
// empty value.
func (m FlatFieldMap) Has(key string) bool {
	_, ok := m[key]
	return ok
}

// GetOr returns the value for key when present and non-empty, else fallback.
func (m FlatFieldMap) GetOr(key, fallback string) string {
	if v := m[key]; v != "" {
		return v
	}
	return fallback
}

// Merge copies every entry of other into m. Shallow merge, last value wins.
func (m FlatFieldMap) Merge(other FlatFieldMap) {
	for k, v := range other {
		m[k] = v
	}
}

// WithPrefix returns a copy of m with every key prefixed.
func (m FlatFieldMap) WithPrefix(prefix string) FlatFieldMap {
	out := make(FlatFieldMap, len(m))
	for k, v := range m {
		out[prefix+k] = v
	}
	return out
}

// InstallmentKey builds the ordinal-suffixed key of an installment field,
// e.g. InstallmentKey("DataScadenzaPagamento", 3) == "DataScadenzaPagamento3".
func InstallmentKey(tag string, ordinal int) string {
	return tag + strconv.Itoa(ordinal)
}
