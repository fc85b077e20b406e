package batch

import (
	"scadenzade/internal/dateutils"
	"scadenzade/internal/models"
)

// SniffYears returns the distinct years of every installment deadline in
// extractions, ascending. Deadlines that are not valid dates are ignored.
func SniffYears(extractions []*models.Extraction) []int {
	var years []int
	for _, ext := range extractions {
		if ext == nil {
			continue
		}
		for _, inst := range ext.AllInstallments() {
			t, err := dateutils.ParseISODate(inst.Deadline)
			if err != nil {
				continue
			}
			years = append(years, t.Year())
		}
	}
	return models.NormalizeYears(years)
}

// MergeYears combines year lists into one ascending, duplicate-free list.
func MergeYears(lists ...[]int) []int {
	var all []int
	for _, l := range lists {
		all = append(all, l...)
	}
	return models.NormalizeYears(all)
}
