package datetime

import (
	"fmt"
	"slices"

	"github.com/smasher164/xid"
	"golang.org/x/exp/maps" // Switch to maps when go 1.22 dropped
)

// The format registry maps a format tag to a constructor so that callers,
// the serializer in particular, can reconstruct a value from its tag alone.
// Formats register themselves from init; the registry is never mutated after
// process start and is therefore safe for concurrent reads.
var registry = map[string]func() DateTimeValues{}

// Register adds a format constructor under tag. It panics when the tag is
// already taken or is not a valid identifier, as both indicate a programming
// error in a format definition.
func Register(tag string, constructor func() DateTimeValues) {
	if !isIdentifier(tag) {
		panic(fmt.Sprintf("datetime: invalid format tag %q", tag))
	}
	if _, dup := registry[tag]; dup {
		panic(fmt.Sprintf("datetime: format %q already registered", tag))
	}
	registry[tag] = constructor
}

// New returns a fresh value of the format registered under tag. Returns
// false when no such format has been registered.
func New(tag string) (DateTimeValues, bool) {
	constructor, ok := registry[tag]
	if !ok {
		return nil, false
	}
	return constructor(), true
}

// Formats returns the sorted tags of all registered formats.
func Formats() []string {
	tags := maps.Keys(registry)
	slices.Sort(tags)
	return tags
}

// isIdentifier reports whether tag is a valid identifier: an XID_Start rune
// followed by XID_Continue runes.
func isIdentifier(tag string) bool {
	for i, r := range tag {
		if i == 0 {
			if !xid.Start(r) {
				return false
			}
			continue
		}
		if !xid.Continue(r) {
			return false
		}
	}
	return tag != ""
}
