package reader

import (
	"maps"
	"slices"
)

// FlagSet is the set of active pre-processing flags.
// The same instance is shared by every file of a read, so a #define inside an
// included file stays visible to the including file after the include.
type FlagSet struct {
	names map[string]struct{}
}

// NewFlagSet creates a flag set with the given flags defined
func NewFlagSet(names ...string) *FlagSet {
	f := &FlagSet{names: make(map[string]struct{}, len(names))}
	for _, name := range names {
		f.Define(name)
	}

	return f
}

// Define adds a flag
func (f *FlagSet) Define(name string) {
	f.names[name] = struct{}{}
}

// Undef removes a flag
func (f *FlagSet) Undef(name string) {
	delete(f.names, name)
}

// Has reports whether the flag is defined
func (f *FlagSet) Has(name string) bool {
	_, ok := f.names[name]
	return ok
}

// Names returns the defined flags in sorted order
func (f *FlagSet) Names() []string {
	return slices.Sorted(maps.Keys(f.names))
}

// conditionalFrame is one #ifdef level of a file
type conditionalFrame struct {
	name string
	// whenPresent keeps the lines when the flag is defined, otherwise when it is not
	whenPresent bool
}

func (c conditionalFrame) skips(flags *FlagSet) bool {
	return c.whenPresent != flags.Has(c.name)
}
