// Package varname generates short BASIC variable names.
package varname

import (
	"fmt"
	"regexp"
	"slices"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/shibukawa/preic"
)

const (
	letters    = "abcdefghijklmnopqrstuvwxyz"
	characters = "0123456789" + letters // digits are tried first for the second character
)

// MaxNames is the number of one and two character names per variable type
// reachable by bumping the characters
const MaxNames = len(letters) * len(characters)

// reserved two character prefixes collide with keywords of some dialects
var reserved = []string{"do", "ds", "el", "er", "fn", "go", "if", "on", "or", "pi", "st", "ti", "to"}

var validName = regexp.MustCompile(`^[a-z][a-z0-9]?$`)

var lower = cases.Lower(language.Und)

// candidate is a name under construction, second is -1 for a single letter name
type candidate struct {
	first  int
	second int
}

func (c candidate) String() string {
	if c.second < 0 {
		return letters[c.first : c.first+1]
	}

	return letters[c.first:c.first+1] + characters[c.second:c.second+1]
}

// next bumps the second character, then the first one
func (c candidate) next() candidate {
	if c.second+1 < len(characters) {
		return candidate{first: c.first, second: c.second + 1}
	}

	return candidate{first: (c.first + 1) % len(letters), second: 0}
}

// Repository hands out unique names per variable type
type Repository struct {
	shortNames bool
	used       map[preic.VariableType]map[string]struct{}
}

// NewRepository creates a Repository. When shortNames is set names are not
// derived from the original identifier, single letters are used first.
func NewRepository(shortNames bool) *Repository {
	return &Repository{
		shortNames: shortNames,
		used:       make(map[preic.VariableType]map[string]struct{}),
	}
}

// Allocate returns a new name for the identifier without its type postfix
func (r *Repository) Allocate(name string, varType preic.VariableType) (string, error) {
	used := r.used[varType]
	if used == nil {
		used = make(map[string]struct{})
		r.used[varType] = used
	}

	var found string
	if r.shortNames {
		found = r.shortName(used)
	}

	if found == "" {
		c := seed(name)
		if r.shortNames {
			c = candidate{first: 0, second: 0}
		}

		for range MaxNames + 1 {
			if r.isValid(c.String(), used) {
				found = c.String()
				break
			}

			c = c.next()
		}
	}

	if found == "" {
		return "", fmt.Errorf("%w: %s variables, last requested: %s", preic.ErrVariableNamesExhausted, varType, name)
	}

	used[found] = struct{}{}

	return found, nil
}

// shortName returns the first unused single letter name
func (r *Repository) shortName(used map[string]struct{}) string {
	for i := range letters {
		name := letters[i : i+1]
		if r.isValid(name, used) {
			return name
		}
	}

	return ""
}

func (r *Repository) isValid(name string, used map[string]struct{}) bool {
	if _, ok := used[name]; ok {
		return false
	}

	return validName.MatchString(name) && !slices.Contains(reserved, name)
}

// seed derives the first candidate from the first two characters of the identifier
func seed(name string) candidate {
	folded := lower.String(name)

	c := candidate{first: 0, second: -1}
	if folded == "" {
		return c
	}

	if i := indexOf(letters, folded[0]); i >= 0 {
		c.first = i
	}

	if len(folded) > 1 {
		c.second = indexOf(characters, folded[1])
	}

	return c
}

func indexOf(set string, b byte) int {
	for i := range len(set) {
		if set[i] == b {
			return i
		}
	}

	return -1
}

// Used returns the number of names handed out for the type
func (r *Repository) Used(varType preic.VariableType) int {
	return len(r.used[varType])
}
