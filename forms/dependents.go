package forms

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
)

// Dependent kinds, matching the persisted discriminator values.
const (
	KindSpouse = "spouse"
	KindChild  = "child"
	KindOther  = "other"
)

// Row indices are discovered by scanning submitted keys, not by an explicit
// count: the client may renumber or leave gaps when rows are removed.
var dependentKeyPattern = regexp.MustCompile(`^(child|other)_(\d+)_last_name$`)

// DependentRow is one surviving Part 2 group. Index is the client-side row
// number, used only to order rows of the same kind; it is not persisted.
type DependentRow struct {
	Kind         string
	Index        int
	LastName     string
	FirstName    string
	MiddleName   string
	Suffix       string
	DateOfBirth  string
	Relationship string
}

// HasAnyValue reports whether any gathered field carries a value. Fully
// blank rows are silently dropped, never stored.
func (r DependentRow) HasAnyValue() bool {
	return r.LastName != "" || r.FirstName != "" || r.MiddleName != "" ||
		r.Suffix != "" || r.DateOfBirth != "" || r.Relationship != ""
}

// CollectDependents extracts the spouse group and every dynamically numbered
// child/other group from the submitted fields, in spouse, children (index
// ascending), others (index ascending) order.
func CollectDependents(f Fields) []DependentRow {
	var rows []DependentRow
	spouse := DependentRow{
		Kind:        KindSpouse,
		LastName:    f.Get("spouse_last_name"),
		FirstName:   f.Get("spouse_first_name"),
		MiddleName:  f.Get("spouse_middle_name"),
		Suffix:      f.Get("spouse_suffix"),
		DateOfBirth: f.Get("spouse_birth"),
	}
	if spouse.HasAnyValue() {
		rows = append(rows, spouse)
	}
	rows = append(rows, collectIndexed(f, KindChild)...)
	rows = append(rows, collectIndexed(f, KindOther)...)
	return rows
}

func collectIndexed(f Fields, kind string) []DependentRow {
	seen := map[int]bool{}
	indices := []int{}
	for key := range f {
		m := dependentKeyPattern.FindStringSubmatch(key)
		if m == nil || m[1] != kind {
			continue
		}
		idx, err := strconv.Atoi(m[2])
		if err != nil || seen[idx] {
			continue
		}
		seen[idx] = true
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	var rows []DependentRow
	for _, idx := range indices {
		prefix := fmt.Sprintf("%s_%d_", kind, idx)
		row := DependentRow{
			Kind:        kind,
			Index:       idx,
			LastName:    f.Get(prefix + "last_name"),
			FirstName:   f.Get(prefix + "first_name"),
			MiddleName:  f.Get(prefix + "middle_name"),
			Suffix:      f.Get(prefix + "suffix"),
			DateOfBirth: f.Get(prefix + "birth"),
		}
		if kind == KindOther {
			row.Relationship = f.Get(prefix + "relationship")
		}
		if row.HasAnyValue() {
			rows = append(rows, row)
		}
	}
	return rows
}
