package star

import "strings"

// identitySep joins identity fields. A control character avoids collisions
// between tuples like ("a,b", "c") and ("a", "b,c").
const identitySep = "\x1f"

// keyspace assigns surrogate keys to attribute tuples as a pure fold over
// the input order: keys start at 1 and follow first-seen order, so the
// same input always produces the same assignment.
type keyspace struct {
	keys map[string]int
	next int
}

func newKeyspace() *keyspace {
	return &keyspace{keys: make(map[string]int), next: 1}
}

// assign returns the surrogate key for an identity tuple, allocating the
// next key if the tuple is new.
func (k *keyspace) assign(parts ...string) (id int, isNew bool) {
	identity := normalizeIdentity(parts)
	if id, ok := k.keys[identity]; ok {
		return id, false
	}
	id = k.next
	k.next++
	k.keys[identity] = id
	return id, true
}

// normalizeIdentity case/whitespace-folds tuple fields so semantically
// identical values collapse to one dimension row. Callers keep the
// first-seen original casing for storage.
func normalizeIdentity(parts []string) string {
	folded := make([]string, len(parts))
	for i, p := range parts {
		folded[i] = strings.ToLower(strings.TrimSpace(p))
	}
	return strings.Join(folded, identitySep)
}
