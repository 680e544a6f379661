package query

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/BruksfildServices01/salon-admin/internal/models"
)

func ActiveClients(cs []models.Client) []models.Client {
	return filter(cs, func(c models.Client) bool { return c.IsActive })
}

// SearchClients matches first name, last name and email ignoring case, and
// phone as typed. An empty term returns every client.
func SearchClients(cs []models.Client, term string) []models.Client {
	m := newMatcher(term)
	if m.empty() {
		return filter(cs, func(models.Client) bool { return true })
	}
	return filter(cs, func(c models.Client) bool {
		return m.fold(c.FirstName) || m.fold(c.LastName) || m.fold(c.Email) || m.exact(c.Phone)
	})
}

type ActiveFilter string

const (
	ActiveAll      ActiveFilter = "all"
	ActiveOnly     ActiveFilter = "active"
	ActiveInactive ActiveFilter = "inactive"
)

// FilterByActive keeps records by their active flag. Unknown values keep all.
func FilterByActive[T any](in []T, f ActiveFilter, isActive func(T) bool) []T {
	switch f {
	case ActiveOnly:
		return filter(in, isActive)
	case ActiveInactive:
		return filter(in, func(v T) bool { return !isActive(v) })
	default:
		return filter(in, func(T) bool { return true })
	}
}

type ClientSort string

const (
	SortByName   ClientSort = "name"
	SortByVisits ClientSort = "visits"
	SortBySpent  ClientSort = "spent"
	SortByRecent ClientSort = "recent"
)

// SortClients returns a sorted copy. Names use Spanish collation; visits,
// spent and recent (last visit, never-visited last) sort descending.
func SortClients(cs []models.Client, by ClientSort) []models.Client {
	out := append([]models.Client(nil), cs...)

	switch by {
	case SortByName:
		col := collate.New(language.Spanish, collate.IgnoreCase)
		sort.SliceStable(out, func(i, j int) bool {
			return col.CompareString(out[i].FullName(), out[j].FullName()) < 0
		})
	case SortByVisits:
		sort.SliceStable(out, func(i, j int) bool { return out[i].TotalVisits > out[j].TotalVisits })
	case SortBySpent:
		sort.SliceStable(out, func(i, j int) bool { return out[i].TotalSpent > out[j].TotalSpent })
	case SortByRecent:
		sort.SliceStable(out, func(i, j int) bool {
			a, b := out[i].LastVisit, out[j].LastVisit
			switch {
			case a == nil:
				return false
			case b == nil:
				return true
			default:
				return a.After(*b)
			}
		})
	}
	return out
}
