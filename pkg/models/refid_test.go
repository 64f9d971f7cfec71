package models

import "testing"

func TestClassifyRef_Seed(t *testing.T) {
	r := ClassifyRef(EntityProjectType, "type-1")
	if r.Kind != RefSeed {
		t.Fatalf("ClassifyRef(type-1) kind = %v, want RefSeed", r.Kind)
	}
	if r.Raw != "type-1" {
		t.Errorf("Raw = %q, want type-1", r.Raw)
	}
	if r.StorageID() != nil {
		t.Errorf("StorageID() = %v, want nil for seed id", r.StorageID())
	}

	c := ClassifyRef(EntityProjectCategory, "cat-7")
	if c.Kind != RefSeed {
		t.Errorf("ClassifyRef(cat-7) kind = %v, want RefSeed", c.Kind)
	}
}

func TestClassifyRef_SeedPrefixIsPerKind(t *testing.T) {
	// A "cat-" id is not a seed id in the project-type namespace.
	r := ClassifyRef(EntityProjectType, "cat-1")
	if r.Kind != RefInvalid {
		t.Errorf("ClassifyRef(EntityProjectType, cat-1) kind = %v, want RefInvalid", r.Kind)
	}
}

func TestClassifyRef_Persisted(t *testing.T) {
	r := ClassifyRef(EntityProjectType, "123e4567-e89b-12d3-a456-426614174000")
	if r.Kind != RefPersisted {
		t.Fatalf("kind = %v, want RefPersisted", r.Kind)
	}
	id := r.StorageID()
	if id == nil {
		t.Fatal("StorageID() = nil, want parsed UUID")
	}
	if id.String() != "123e4567-e89b-12d3-a456-426614174000" {
		t.Errorf("StorageID() = %s", id)
	}
}

func TestClassifyRef_Invalid(t *testing.T) {
	cases := []string{
		"abc",
		"",
		"123e4567-e89b-62d3-a456-426614174000", // version nibble out of range
		"123e4567e89b12d3a456426614174000",     // no hyphens
		"type1",
	}
	for _, in := range cases {
		if r := ClassifyRef(EntityProjectType, in); r.Kind != RefInvalid {
			t.Errorf("ClassifyRef(%q) kind = %v, want RefInvalid", in, r.Kind)
		}
	}
}

func TestRefID_IsPresent(t *testing.T) {
	if ClassifyRef(EntityProjectType, "").IsPresent() {
		t.Error("empty id should not be present")
	}
	if !ClassifyRef(EntityProjectType, "type-1").IsPresent() {
		t.Error("seed id should be present")
	}
}
