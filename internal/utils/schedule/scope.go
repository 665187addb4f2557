package schedule

import (
	"sort"

	"github.com/SscSPs/edu_backoffice/internal/core/domain"
)

// ResolveScope returns the entries an edit or delete on target applies to.
// ScopeSingle, or a target outside any series, yields target alone.
// ScopeFuture yields every entry of target's series due on or after target,
// ascending by due date. series may contain unrelated entries; they are ignored.
func ResolveScope(target domain.FinancialEntry, series []domain.FinancialEntry, scope domain.UpdateScope) []domain.FinancialEntry {
	if scope != domain.ScopeFuture || target.SeriesID == nil {
		return []domain.FinancialEntry{target}
	}

	seriesID := *target.SeriesID
	resolved := make([]domain.FinancialEntry, 0, len(series)+1)
	seenTarget := false
	for _, e := range series {
		if e.CompanyID != target.CompanyID || !e.InSeries(seriesID) {
			continue
		}
		if e.DueDate.Before(target.DueDate) {
			continue
		}
		if e.EntryID == target.EntryID {
			seenTarget = true
		}
		resolved = append(resolved, e)
	}
	if !seenTarget {
		resolved = append(resolved, target)
	}

	sort.SliceStable(resolved, func(i, j int) bool {
		if !resolved[i].DueDate.Equal(resolved[j].DueDate) {
			return resolved[i].DueDate.Before(resolved[j].DueDate)
		}
		return resolved[i].EntryID < resolved[j].EntryID
	})
	return resolved
}

// EntryIDs collects the ids of entries, keeping order.
func EntryIDs(entries []domain.FinancialEntry) []string {
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.EntryID
	}
	return ids
}
