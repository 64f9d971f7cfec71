package models

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// EntityKind identifies which reference namespace an identifier belongs to.
// Seed prefixes differ per kind, so classification needs to know the target.
type EntityKind int

const (
	EntityProjectType EntityKind = iota
	EntityProjectCategory
)

// seedPrefixes maps each entity kind to the prefix its static seed rows carry.
var seedPrefixes = map[EntityKind]string{
	EntityProjectType:     "type-",
	EntityProjectCategory: "cat-",
}

// RefKind is the resolved class of a reference identifier.
type RefKind int

const (
	// RefInvalid means the identifier is neither a persisted key nor a seed
	// id. It is treated as absent everywhere.
	RefInvalid RefKind = iota
	// RefSeed means the identifier names a static in-memory seed row.
	RefSeed
	// RefPersisted means the identifier is a relational primary key.
	RefPersisted
)

// uuidPattern matches UUID v1-v5 in the canonical 8-4-4-4-12 form, with the
// version nibble constrained to 1-5 and the variant nibble to the RFC 4122 set.
var uuidPattern = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[1-5][0-9a-fA-F]{3}-[89abAB][0-9a-fA-F]{3}-[0-9a-fA-F]{12}$`)

// RefID is a reference identifier tagged with its resolved class. Classification
// happens once at the boundary; nothing downstream re-parses prefixes.
type RefID struct {
	Kind RefKind
	Raw  string
}

// ClassifyRef decides whether id is a persisted relational key, a seed id for
// the given entity kind, or invalid. Pure function, no side effects.
func ClassifyRef(kind EntityKind, id string) RefID {
	if id == "" {
		return RefID{Kind: RefInvalid}
	}
	if prefix, ok := seedPrefixes[kind]; ok && strings.HasPrefix(id, prefix) {
		return RefID{Kind: RefSeed, Raw: id}
	}
	if uuidPattern.MatchString(id) {
		return RefID{Kind: RefPersisted, Raw: id}
	}
	return RefID{Kind: RefInvalid, Raw: id}
}

// StorageID returns the UUID to forward to the backing store. Seed and invalid
// references store as NULL; the raw string survives only on the in-memory
// aggregate returned to the caller.
func (r RefID) StorageID() *uuid.UUID {
	if r.Kind != RefPersisted {
		return nil
	}
	id, err := uuid.Parse(r.Raw)
	if err != nil {
		return nil
	}
	return &id
}

// IsPresent reports whether the reference resolves to anything at all.
func (r RefID) IsPresent() bool {
	return r.Kind != RefInvalid
}
