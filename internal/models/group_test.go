package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGroup(t *testing.T) {
	g, err := ParseGroup(" Clients ")
	require.NoError(t, err)
	assert.Equal(t, GroupClients, g)

	_, err = ParseGroup("vendors")
	assert.Error(t, err)
}

func TestNormalizeYears(t *testing.T) {
	assert.Equal(t, []int{2023, 2024, 2025}, NormalizeYears([]int{2025, 2023, 2025, 2024}))
	assert.Equal(t, []int{}, NormalizeYears(nil))

	y := YearConfig{Active: 2025, Available: []int{2026, 2025, 2026}}.Normalized()
	assert.Equal(t, []int{2025, 2026}, y.Available)
}

func TestPathConfig(t *testing.T) {
	p := PathConfig{Suppliers: "/in/suppliers", Clients: ""}
	assert.Equal(t, "/in/suppliers", p.For(GroupSuppliers))
	assert.False(t, p.IsComplete())
	p.Clients = "/in/clients"
	assert.True(t, p.IsComplete())
}

func TestInvoiceRowLess(t *testing.T) {
	d := func(s string) time.Time {
		v, err := time.Parse("2006-01-02", s)
		require.NoError(t, err)
		return v
	}
	a := InvoiceRow{Deadline: d("2024-12-31"), DocumentDate: d("2024-12-01")}
	b := InvoiceRow{Deadline: d("2025-01-01"), DocumentDate: d("2024-01-01")}
	c := InvoiceRow{Deadline: d("2025-01-01"), DocumentDate: d("2024-06-01")}

	assert.True(t, a.Less(b))
	assert.True(t, b.Less(c))
	assert.False(t, c.Less(b))
	assert.False(t, b.Less(b))
}
