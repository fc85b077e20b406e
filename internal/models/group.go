package models

import (
	"fmt"
	"sort"
	"strings"
)

// Group is a batch of documents belonging to one counterparty role.
type Group string

const (
	GroupSuppliers Group = "suppliers"
	GroupClients   Group = "clients"
)

// Groups returns every group in processing order.
func Groups() []Group {
	return []Group{GroupSuppliers, GroupClients}
}

// ParseGroup accepts the group name in any case.
func ParseGroup(s string) (Group, error) {
	switch Group(strings.ToLower(strings.TrimSpace(s))) {
	case GroupSuppliers:
		return GroupSuppliers, nil
	case GroupClients:
		return GroupClients, nil
	}
	return "", fmt.Errorf("unknown group %q (want %q or %q)", s, GroupSuppliers, GroupClients)
}

// YearConfig is the active reporting year and the years a user may switch
// among. Available is kept ascending and duplicate-free.
type YearConfig struct {
	Active    int
	Available []int
}

// Normalized returns a copy with Available sorted and de-duplicated.
func (y YearConfig) Normalized() YearConfig {
	return YearConfig{Active: y.Active, Available: NormalizeYears(y.Available)}
}

// NormalizeYears sorts ascending and removes duplicates. It never returns nil.
func NormalizeYears(years []int) []int {
	seen := make(map[int]struct{}, len(years))
	out := make([]int, 0, len(years))
	for _, y := range years {
		if _, ok := seen[y]; ok {
			continue
		}
		seen[y] = struct{}{}
		out = append(out, y)
	}
	sort.Ints(out)
	return out
}

// PathConfig holds the document source of each group; each entry is a single
// document or a directory of documents.
type PathConfig struct {
	Suppliers string
	Clients   string
}

// For returns the source path of g.
func (p PathConfig) For(g Group) string {
	if g == GroupClients {
		return p.Clients
	}
	return p.Suppliers
}

// IsComplete reports whether both paths are set.
func (p PathConfig) IsComplete() bool {
	return strings.TrimSpace(p.Suppliers) != "" && strings.TrimSpace(p.Clients) != ""
}
