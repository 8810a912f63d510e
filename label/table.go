package label

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/shibukawa/preic"
)

// Table holds the labels of one program in definition order
type Table struct {
	labels map[string]*Label
	order  []*Label
}

// NewTable creates an empty Table
func NewTable() *Table {
	return &Table{labels: make(map[string]*Label)}
}

// Define adds a label, a name can only be defined once per kind
func (t *Table) Define(l *Label) error {
	if l.Name == "" {
		return fmt.Errorf("%w: %s label", preic.ErrBlankLabel, l.Kind)
	}

	key := l.Key()
	if _, ok := t.labels[key]; ok {
		return fmt.Errorf("%w: %s", preic.ErrDuplicateLabel, key)
	}

	t.labels[key] = l
	t.order = append(t.order, l)

	return nil
}

// Lookup finds a label by its key, e.g. "{#loop}"
func (t *Table) Lookup(key string) (*Label, bool) {
	l, ok := t.labels[key]
	return l, ok
}

// Retarget moves every line label bound to line number from to line number to
func (t *Table) Retarget(from, to int) {
	for _, l := range t.order {
		if l.Kind == Line && l.LineNumber == from {
			l.LineNumber = to
		}
	}
}

// Len returns the number of labels
func (t *Table) Len() int {
	return len(t.order)
}

// SortedLabels returns the labels of a kind in label dump order: line labels by
// number, variables by BASIC name, literals by name
func (t *Table) SortedLabels(kind Kind) []*Label {
	var result []*Label

	for _, l := range t.order {
		if l.Kind == kind {
			result = append(result, l)
		}
	}

	slices.SortStableFunc(result, func(a, b *Label) int {
		switch kind {
		case Line:
			return cmp.Compare(a.LineNumber, b.LineNumber)
		case Variable:
			return cmp.Compare(a.BasicName, b.BasicName)
		default:
			return cmp.Compare(a.Name, b.Name)
		}
	})

	return result
}
