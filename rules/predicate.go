package rules

import (
	"sort"
	"strconv"
	"strings"
)

// Kind tags the variant held by a Predicate.
type Kind uint8

// Predicate variants.
const (
	KindAlways Kind = iota
	KindHasItem
	KindHasAny
	KindHasAll
	KindHasGroup
	KindAnd
)

var kindNames = [...]string{"always", "has", "has_any", "has_all", "has_group", "and"}

// String returns the short name of k.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Predicate is an immutable access condition. Build it with the
// constructors below; the fields are unexported so a value cannot be
// altered after construction.
type Predicate struct {
	kind  Kind
	name  string      // item name (HasItem) or group name (HasGroup)
	count int         // HasItem / HasGroup threshold
	names []string    // sorted, deduplicated (HasAny / HasAll)
	terms []Predicate // And
}

// Always returns the predicate that holds for every state.
func Always() Predicate { return Predicate{} }

// HasItem holds when the player owns at least count copies of item.
// A count below 1 is treated as 1.
func HasItem(item string, count int) Predicate {
	if count < 1 {
		count = 1
	}

	return Predicate{kind: KindHasItem, name: item, count: count}
}

// HasAny holds when the player owns at least one of items.
func HasAny(items ...string) Predicate {
	return Predicate{kind: KindHasAny, names: normalise(items)}
}

// HasAll holds when the player owns every one of items.
func HasAll(items ...string) Predicate {
	return Predicate{kind: KindHasAll, names: normalise(items)}
}

// HasGroup holds when the player owns at least count items of group.
// A count of 0 or less always holds.
func HasGroup(group string, count int) Predicate {
	if count < 0 {
		count = 0
	}

	return Predicate{kind: KindHasGroup, name: group, count: count}
}

// And holds when every term holds. And() is Always(); a single term is
// returned unchanged.
func And(terms ...Predicate) Predicate {
	switch len(terms) {
	case 0:
		return Always()
	case 1:
		return terms[0]
	}

	return Predicate{kind: KindAnd, terms: append([]Predicate(nil), terms...)}
}

// Kind returns the variant tag.
func (p Predicate) Kind() Kind { return p.kind }

// IsAlways reports whether p is the ungated predicate.
func (p Predicate) IsAlways() bool { return p.kind == KindAlways }

// Name returns the item (HasItem) or group (HasGroup) name.
func (p Predicate) Name() string { return p.name }

// Count returns the threshold of HasItem and HasGroup.
func (p Predicate) Count() int { return p.count }

// Names returns a copy of the item set of HasAny and HasAll, sorted.
func (p Predicate) Names() []string { return append([]string(nil), p.names...) }

// Terms returns a copy of the terms of And.
func (p Predicate) Terms() []Predicate { return append([]Predicate(nil), p.terms...) }

// Equal reports whether p and q are structurally identical.
func (p Predicate) Equal(q Predicate) bool {
	if p.kind != q.kind || p.name != q.name || p.count != q.count ||
		len(p.names) != len(q.names) || len(p.terms) != len(q.terms) {
		return false
	}
	for i := range p.names {
		if p.names[i] != q.names[i] {
			return false
		}
	}
	for i := range p.terms {
		if !p.terms[i].Equal(q.terms[i]) {
			return false
		}
	}

	return true
}

// String renders p in a stable, human-readable form, for example
// and(has_group("gemhearts", 4), has("Level 1 A-Side Cassette")).
func (p Predicate) String() string {
	var sb strings.Builder
	p.write(&sb)

	return sb.String()
}

func (p Predicate) write(sb *strings.Builder) {
	switch p.kind {
	case KindAlways:
		sb.WriteString("true")
	case KindHasItem:
		sb.WriteString("has(")
		sb.WriteString(strconv.Quote(p.name))
		if p.count > 1 {
			sb.WriteString(", ")
			sb.WriteString(strconv.Itoa(p.count))
		}
		sb.WriteByte(')')
	case KindHasAny, KindHasAll:
		sb.WriteString(p.kind.String())
		sb.WriteByte('(')
		for i, n := range p.names {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.Quote(n))
		}
		sb.WriteByte(')')
	case KindHasGroup:
		sb.WriteString("has_group(")
		sb.WriteString(strconv.Quote(p.name))
		sb.WriteString(", ")
		sb.WriteString(strconv.Itoa(p.count))
		sb.WriteByte(')')
	case KindAnd:
		sb.WriteString("and(")
		for i, t := range p.terms {
			if i > 0 {
				sb.WriteString(", ")
			}
			t.write(sb)
		}
		sb.WriteByte(')')
	}
}

// normalise copies, sorts and deduplicates a name set.
func normalise(items []string) []string {
	out := append([]string(nil), items...)
	sort.Strings(out)
	n := 0
	for i, s := range out {
		if i > 0 && s == out[n-1] {
			continue
		}
		out[n] = s
		n++
	}

	return out[:n]
}
