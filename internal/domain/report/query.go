package report

import (
	"sort"
	"strings"

	"github.com/foundit/foundit-api/internal/pkg/identity"
)

// DefaultPageSize matches the moderation table page size
const DefaultPageSize = 10

// Filter holds browse-view filter criteria. Empty fields match
// everything for their dimension; non-empty fields are ANDed.
type Filter struct {
	Type     string
	Status   string
	Category string
	Search   string
}

// Matches reports whether r satisfies every non-empty criterion.
// Category is a case-insensitive substring match; Search looks through
// title, description and location.
func (f Filter) Matches(r *Report) bool {
	if f.Type != "" && string(r.Type) != f.Type {
		return false
	}
	if f.Status != "" && string(r.Status) != f.Status {
		return false
	}
	if f.Category != "" && !strings.Contains(strings.ToLower(r.ItemCategory), strings.ToLower(f.Category)) {
		return false
	}
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		haystack := strings.ToLower(r.Title) + " " + strings.ToLower(r.Description) + " " + strings.ToLower(r.Location)
		if !strings.Contains(haystack, q) {
			return false
		}
	}
	return true
}

// Visible narrows reports to those the actor may view. Visibility is a
// precondition, not a post-filter: hidden records never reach filter or
// pagination math.
func Visible(actor identity.Actor, reports []Report) []Report {
	out := make([]Report, 0, len(reports))
	for i := range reports {
		if Can(actor, &reports[i], ActionView) {
			out = append(out, reports[i])
		}
	}
	return out
}

// Apply filters reports in store order
func Apply(f Filter, reports []Report) []Report {
	out := make([]Report, 0, len(reports))
	for i := range reports {
		if f.Matches(&reports[i]) {
			out = append(out, reports[i])
		}
	}
	return out
}

// Page returns the 1-indexed page of the given size. Pages beyond the
// range are empty, never an error.
func Page(reports []Report, page, pageSize int) []Report {
	if page < 1 || pageSize < 1 {
		return []Report{}
	}
	start := (page - 1) * pageSize
	if start >= len(reports) {
		return []Report{}
	}
	end := start + pageSize
	if end > len(reports) {
		end = len(reports)
	}
	return reports[start:end]
}

// TotalPages returns ceil(total / pageSize)
func TotalPages(total, pageSize int) int {
	if pageSize < 1 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

// DistinctTypes returns the sorted distinct types present in reports
func DistinctTypes(reports []Report) []string {
	return distinct(reports, func(r *Report) string { return string(r.Type) })
}

// DistinctStatuses returns the sorted distinct statuses present in reports
func DistinctStatuses(reports []Report) []string {
	return distinct(reports, func(r *Report) string { return string(r.Status) })
}

// DistinctCategories returns the sorted distinct non-empty categories
func DistinctCategories(reports []Report) []string {
	return distinct(reports, func(r *Report) string { return r.ItemCategory })
}

func distinct(reports []Report, key func(*Report) string) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for i := range reports {
		k := key(&reports[i])
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
