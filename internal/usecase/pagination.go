package usecase

import (
	"sort"
	"strings"

	"github.com/xavierca1/ligue-leads/internal/entity"
)

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

// LeadPage is one slice of a filtered, sorted result set plus the
// metadata the listing endpoint reports. Both store implementations
// return it with identical semantics.
type LeadPage struct {
	Items      []entity.Lead
	TotalItems int
	TotalPages int
	Page       int
	Limit      int
}

// NormalizePageLimit applies the paging bounds: pages below 1 act as
// page 1, a missing or non-positive limit falls back to the default,
// and the limit is capped at MaxPageLimit.
func NormalizePageLimit(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	return page, limit
}

// Paginate slices an already-sorted sequence into the requested page.
// Out-of-range pages yield an empty item list, never an error. TotalPages
// is ceil(total/limit); an empty set reports zero pages and the consuming
// layer owns any display floor.
func Paginate(items []entity.Lead, page, limit int) *LeadPage {
	page, limit = NormalizePageLimit(page, limit)

	total := len(items)
	start := (page - 1) * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	out := make([]entity.Lead, end-start)
	copy(out, items[start:end])

	return &LeadPage{
		Items:      out,
		TotalItems: total,
		TotalPages: (total + limit - 1) / limit,
		Page:       page,
		Limit:      limit,
	}
}

// SortLeads orders leads in place by the named field and direction.
// Records with a missing value for the field sort last regardless of
// direction, and date fields compare by timestamp rather than lexically.
// The sort is stable, so equal keys keep their incoming order.
func SortLeads(leads []entity.Lead, field string, descending bool) {
	sort.SliceStable(leads, func(i, j int) bool {
		aMissing := missingSortValue(&leads[i], field)
		bMissing := missingSortValue(&leads[j], field)
		if aMissing || bMissing {
			return !aMissing && bMissing
		}

		c := compareSortValue(&leads[i], &leads[j], field)
		if c == 0 {
			return false
		}
		if descending {
			return c > 0
		}
		return c < 0
	})
}

func missingSortValue(l *entity.Lead, field string) bool {
	switch field {
	case "createdAt":
		return l.CreatedAt.IsZero()
	case "updatedAt":
		return l.UpdatedAt.IsZero()
	case "name":
		return l.Name == ""
	case "email":
		return l.Email == ""
	case "phone":
		return l.Phone == ""
	case "status":
		return l.Status == ""
	case "notes":
		return l.Notes == ""
	}
	return false
}

func compareSortValue(a, b *entity.Lead, field string) int {
	switch field {
	case "createdAt":
		return compareInt64(a.CreatedAt.UnixMilli(), b.CreatedAt.UnixMilli())
	case "updatedAt":
		return compareInt64(a.UpdatedAt.UnixMilli(), b.UpdatedAt.UnixMilli())
	case "name":
		return strings.Compare(a.Name, b.Name)
	case "email":
		return strings.Compare(a.Email, b.Email)
	case "phone":
		return strings.Compare(a.Phone, b.Phone)
	case "status":
		return strings.Compare(a.Status, b.Status)
	case "notes":
		return strings.Compare(a.Notes, b.Notes)
	}
	return 0
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
