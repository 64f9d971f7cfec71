package repositories

import (
	"context"
	"testing"
)

func TestSeedTaxonomyListTypes(t *testing.T) {
	repo := NewSeedTaxonomyRepository()

	types, err := repo.ListTypes(context.Background())
	if err != nil {
		t.Fatalf("list types failed: %v", err)
	}
	if len(types) != 5 {
		t.Fatalf("expected 5 seed types, got %d", len(types))
	}
	if types[0].ID != "type-1" || types[0].Name != "Web Development" {
		t.Errorf("unexpected first seed type: %+v", types[0])
	}
}

func TestSeedTaxonomyNameLookups(t *testing.T) {
	repo := NewSeedTaxonomyRepository()
	ctx := context.Background()

	tests := []struct {
		id   string
		want string
	}{
		{"type-2", "Mobile App"},
		{"cat-9", ""},
		{"type-99", ""},
		{"b2c3d4e5-0000-0000-0000-000000000000", ""},
	}
	for _, tt := range tests {
		got, err := repo.TypeName(ctx, tt.id)
		if err != nil {
			t.Fatalf("TypeName(%q) failed: %v", tt.id, err)
		}
		if got != tt.want {
			t.Errorf("TypeName(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}

	name, err := repo.CategoryName(ctx, "cat-9")
	if err != nil {
		t.Fatalf("CategoryName failed: %v", err)
	}
	if name != "Hosting & Support" {
		t.Errorf("CategoryName(cat-9) = %q, want Hosting & Support", name)
	}
}
