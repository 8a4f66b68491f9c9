package cart

import (
	"sort"
	"strings"

	"github.com/dolapay/embed-sdk/pkg/ids"
	"github.com/dolapay/embed-sdk/pkg/types"
)

// ExtractVariants scans the dataset for keys starting with VariantPrefix
// and appends one variant per match to the item. The variant name is the
// key's suffix after the prefix; the value is read under the original key.
// Duplicate names are appended, never merged. Keys are walked in sorted
// order so append order is stable within a call. The item is mutated and
// returned.
func ExtractVariants(src ids.Source, dataset map[string]string, item *types.CartItem) *types.CartItem {
	keys := make([]string, 0, len(dataset))
	for key := range dataset {
		if strings.HasPrefix(key, VariantPrefix) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	for _, key := range keys {
		item.VariantInfo = append(item.VariantInfo, types.Variant{
			ID:    src.NewID(),
			Name:  strings.TrimPrefix(key, VariantPrefix),
			Value: dataset[key],
		})
	}
	return item
}
