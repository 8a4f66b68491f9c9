package cart

import (
	"fmt"
	"testing"

	"github.com/dolapay/embed-sdk/pkg/ids"
)

func TestExtractVariantsAppendsEachMatch(t *testing.T) {
	t.Parallel()

	dataset := validDataset()
	dataset[VariantPrefix+"Color"] = "red"
	dataset[VariantPrefix+"Size"] = "XL"
	dataset["dolaUnrelated"] = "ignored"

	item, err := ComposeItem(dataset)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := ExtractVariants(ids.NewSource(), dataset, item)
	if got != item {
		t.Fatal("expected the same item back, not a copy")
	}
	if len(item.VariantInfo) != 2 {
		t.Fatalf("expected 2 variants, got %d", len(item.VariantInfo))
	}

	// Sorted key order: Color before Size.
	if item.VariantInfo[0].Name != "Color" || item.VariantInfo[0].Value != "red" {
		t.Fatalf("unexpected first variant %+v", item.VariantInfo[0])
	}
	if item.VariantInfo[1].Name != "Size" || item.VariantInfo[1].Value != "XL" {
		t.Fatalf("unexpected second variant %+v", item.VariantInfo[1])
	}
	if item.VariantInfo[0].ID == "" || item.VariantInfo[0].ID == item.VariantInfo[1].ID {
		t.Fatalf("expected unique non-empty ids, got %+v", item.VariantInfo)
	}
}

func TestExtractVariantsScalesWithMatchingKeys(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 1, 5, 12} {
		dataset := validDataset()
		for i := 0; i < n; i++ {
			dataset[fmt.Sprintf("%sOption%02d", VariantPrefix, i)] = fmt.Sprintf("v%d", i)
		}

		item, err := ComposeItem(dataset)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		ExtractVariants(ids.NewSource(), dataset, item)

		if len(item.VariantInfo) != n {
			t.Fatalf("n=%d: expected %d variants, got %d", n, n, len(item.VariantInfo))
		}
		seen := make(map[string]struct{}, n)
		for i, v := range item.VariantInfo {
			if want := fmt.Sprintf("Option%02d", i); v.Name != want {
				t.Fatalf("n=%d: expected name %q at %d, got %q", n, want, i, v.Name)
			}
			if _, dup := seen[v.ID]; dup {
				t.Fatalf("n=%d: duplicate variant id %q", n, v.ID)
			}
			seen[v.ID] = struct{}{}
		}
	}
}

func TestExtractVariantsStableOrderWithinCall(t *testing.T) {
	t.Parallel()

	dataset := validDataset()
	dataset[VariantPrefix+"Zeta"] = "z"
	dataset[VariantPrefix+"Alpha"] = "a"
	dataset[VariantPrefix+"Mid"] = "m"

	for run := 0; run < 20; run++ {
		item, err := ComposeItem(dataset)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		ExtractVariants(ids.NewSource(), dataset, item)
		names := []string{item.VariantInfo[0].Name, item.VariantInfo[1].Name, item.VariantInfo[2].Name}
		if names[0] != "Alpha" || names[1] != "Mid" || names[2] != "Zeta" {
			t.Fatalf("run %d: unstable order %v", run, names)
		}
	}
}

func TestExtractVariantsValueReadUnderOriginalKey(t *testing.T) {
	t.Parallel()

	// A suffix that itself contains the prefix must not confuse lookup.
	dataset := validDataset()
	key := VariantPrefix + VariantPrefix
	dataset[key] = "nested"

	item, err := ComposeItem(dataset)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ExtractVariants(ids.NewSource(), dataset, item)

	if len(item.VariantInfo) != 1 {
		t.Fatalf("expected 1 variant, got %d", len(item.VariantInfo))
	}
	if item.VariantInfo[0].Name != VariantPrefix || item.VariantInfo[0].Value != "nested" {
		t.Fatalf("unexpected variant %+v", item.VariantInfo[0])
	}
}

func TestExtractVariantsKeepsDuplicateNames(t *testing.T) {
	t.Parallel()

	// Two keys can only collide on name through distinct raw keys; the
	// extractor appends both rather than overwriting by name.
	dataset := validDataset()
	dataset[VariantPrefix+"Color"] = "red"
	dataset[VariantPrefix+"color"] = "blue"

	item, err := ComposeItem(dataset)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ExtractVariants(ids.NewSource(), dataset, item)

	if len(item.VariantInfo) != 2 {
		t.Fatalf("expected both variants kept, got %+v", item.VariantInfo)
	}
}
