package roster

import "sort"

// SortOrder is one of the three orders the roster can be sorted in.
// A closed set, not an arbitrary comparator: these are the only orders
// anyone ever asks for.
type SortOrder int

const (
	ByMarksAsc SortOrder = iota
	ByMarksDesc
	ByName
)

func (o SortOrder) String() string {
	switch o {
	case ByMarksAsc:
		return "marks ascending"
	case ByMarksDesc:
		return "marks descending"
	case ByName:
		return "name ascending"
	}
	return "unknown"
}

// Sort reorders records in place. Descending marks is the exact negation
// of ascending (a sign flip, not a stable complement). Name order is
// byte-wise. No-op on 0 or 1 records; otherwise sets Modified because the
// persisted order changes even when the permutation is identity.
func (r *Roster) Sort(order SortOrder) {
	if len(r.records) < 2 {
		return
	}
	recs := r.records
	switch order {
	case ByMarksAsc:
		sort.Slice(recs, func(i, j int) bool { return recs[i].Marks < recs[j].Marks })
	case ByMarksDesc:
		sort.Slice(recs, func(i, j int) bool { return recs[i].Marks > recs[j].Marks })
	case ByName:
		sort.Slice(recs, func(i, j int) bool { return recs[i].Name < recs[j].Name })
	}
	r.Modified = true
}
