// Package filters implements the set-membership column filters used by the spell grid.
//
// A column filter holds a Selection of domain codes. The default selection is the
// full domain, which means "not filtering": a filter becomes active only when the
// user removes values from it, never by adding values to an empty set.
package filters

// Selection is the set of domain codes currently selected for one column.
// It never holds duplicates. Order carries no meaning.
type Selection []int

// LabelFunc maps a domain code to the label the grid displays for it.
type LabelFunc func(value int) string

// CreateDefaultSelection returns every code of a domain of the given size,
// in order. Callers pass validated, non-negative sizes only.
func CreateDefaultSelection(domainSize int) Selection {
	selection := make(Selection, domainSize)
	for i := range selection {
		selection[i] = i
	}
	return selection
}

// IsActive reports whether the selection filters anything out.
//
// Selections only ever hold distinct in-domain codes, so comparing lengths is
// enough to tell a partial selection from the full domain.
func IsActive(selection Selection, fullDomainSize int) bool {
	return len(selection) != fullDomainSize
}

// PassesFilter reports whether a row's displayed value matches the label of any
// selected code. An empty rowValue is missing data and never passes.
//
// Comparison happens on labels, not codes: two codes that render to the same
// label are indistinguishable here.
func PassesFilter(rowValue string, selection Selection, labelOf LabelFunc) bool {
	if rowValue == "" {
		return false
	}

	for _, value := range selection {
		if labelOf(value) == rowValue {
			return true
		}
	}
	return false
}

// Toggle returns a new selection with value removed if present, added otherwise.
// The input is left untouched.
func Toggle(selection Selection, value int) Selection {
	if IsChecked(selection, value) {
		next := make(Selection, 0, len(selection)-1)
		for _, v := range selection {
			if v != value {
				next = append(next, v)
			}
		}
		return next
	}

	next := make(Selection, len(selection), len(selection)+1)
	copy(next, selection)
	return append(next, value)
}

// IsChecked reports whether value is in the selection.
func IsChecked(selection Selection, value int) bool {
	for _, v := range selection {
		if v == value {
			return true
		}
	}
	return false
}

// Clone returns an independent copy; a nil selection clones to an empty one.
func (s Selection) Clone() Selection {
	out := make(Selection, len(s))
	copy(out, s)
	return out
}
