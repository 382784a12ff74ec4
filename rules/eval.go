package rules

// State is the host's collection-state query interface. Implementations
// answer for a given player id; predicates never see any other host state.
type State interface {
	Has(item string, player int) bool
	HasAny(items []string, player int) bool
	HasAll(items []string, player int) bool
	HasGroup(group string, player int, count int) bool
}

// Counter is implemented by states that can report how many copies of an
// item a player holds. HasItem with a count above 1 needs it.
type Counter interface {
	Count(item string, player int) int
}

// Evaluate interprets p against s for player. A nil state satisfies only
// Always.
func Evaluate(p Predicate, s State, player int) bool {
	if p.kind == KindAlways {
		return true
	}
	if s == nil {
		return false
	}

	switch p.kind {
	case KindHasItem:
		if p.count <= 1 {
			return s.Has(p.name, player)
		}
		if c, ok := s.(Counter); ok {
			return c.Count(p.name, player) >= p.count
		}
		return false
	case KindHasAny:
		return len(p.names) > 0 && s.HasAny(p.names, player)
	case KindHasAll:
		return len(p.names) == 0 || s.HasAll(p.names, player)
	case KindHasGroup:
		return s.HasGroup(p.name, player, p.count)
	case KindAnd:
		for _, t := range p.terms {
			if !Evaluate(t, s, player) {
				return false
			}
		}
		return true
	}

	return false
}

// Eval is shorthand for Evaluate(p, s, player).
func (p Predicate) Eval(s State, player int) bool { return Evaluate(p, s, player) }
