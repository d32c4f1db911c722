package models

// Filter keys accepted by the public notes listing.
const (
	FilterSubject  = "subject"
	FilterCourse   = "course"
	FilterSemester = "semester"
	FilterSearch   = "search"
)

// FilterSet maps filter keys to non-empty values. Absent keys mean "no
// constraint"; empty values must never be present (see Prune).
type FilterSet map[string]string

// Prune returns a copy with all empty-valued keys removed. A FilterSet is
// always pruned before it is stored or applied to a request.
func (f FilterSet) Prune() FilterSet {
	pruned := make(FilterSet, len(f))
	for key, value := range f {
		if value != "" {
			pruned[key] = value
		}
	}
	return pruned
}

// Clone returns an independent copy so callers can never mutate the
// session's stored set through a shared map.
func (f FilterSet) Clone() FilterSet {
	clone := make(FilterSet, len(f))
	for key, value := range f {
		clone[key] = value
	}
	return clone
}
