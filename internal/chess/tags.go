package chess

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Tags holds PGN header tags.
type Tags map[string]string

// SevenTagRoster contains the seven required PGN tags in order.
var SevenTagRoster = []string{
	"Event",
	"Site",
	"Date",
	"Round",
	"White",
	"Black",
	"Result",
}

// DefaultTags returns the seven tag roster filled with unknown values.
func DefaultTags() Tags {
	return Tags{
		"Event":  "?",
		"Site":   "?",
		"Date":   "????.??.??",
		"Round":  "?",
		"White":  "?",
		"Black":  "?",
		"Result": "*",
	}
}

// IsSevenTagRosterTag returns true if the tag is one of the seven required tags.
func IsSevenTagRosterTag(tag string) bool {
	return slices.Contains(SevenTagRoster, tag)
}

// Merge returns a copy of t with every tag of other applied on top.
func (t Tags) Merge(other Tags) Tags {
	out := make(Tags, len(t)+len(other))
	maps.Copy(out, t)
	maps.Copy(out, other)
	return out
}

// ExtraTags returns the names of tags outside the seven tag roster, sorted.
func (t Tags) ExtraTags() []string {
	var names []string
	for name := range t {
		if !IsSevenTagRosterTag(name) {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}
