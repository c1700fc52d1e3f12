package grocery

import (
	"fmt"

	"github.com/local-mcps/grocery-mcps/internal/common"
)

// Normalizers are the only place untyped upstream JSON is narrowed into the
// package's entity types. Upstream field names do not track the operation
// names (version suffixes come and go), so every mapping is explicit here.
// Sparse envelopes never fail; only a missing top-level object does.

// NormalizeSearchProducts maps the search response into products. Absent
// arrays are treated as empty.
func NormalizeSearchProducts(data map[string]interface{}) ([]Product, error) {
	result := asMap(data["searchProductsResultsV2"])
	if result == nil {
		return nil, fmt.Errorf("%w: search results missing from response", common.ErrUpstream)
	}

	records := asSlice(result["products"])
	products := make([]Product, 0, len(records))
	for _, record := range records {
		m := asMap(record)
		if m == nil {
			continue
		}
		products = append(products, normalizeProduct(m))
	}
	return products, nil
}

func normalizeProduct(m map[string]interface{}) Product {
	p := Product{
		ProductID:    getString(m, "id"),
		Name:         getString(m, "fullDisplayName"),
		Brand:        getString(asMap(m["brand"]), "name"),
		ImageURL:     selectImage(asSlice(m["images"])),
		Availability: mapAvailability(getString(asMap(m["inventory"]), "inventoryState")),
	}

	// Price and size come off the first SKU only; there is no cross-SKU
	// aggregation.
	skus := asSlice(m["SKUs"])
	if len(skus) > 0 {
		sku := asMap(skus[0])
		p.Size = getString(sku, "customerFriendlySize")
		for _, cp := range asSlice(sku["contextPrices"]) {
			entry := asMap(cp)
			if getString(entry, "context") != "ONLINE" {
				continue
			}
			if amount, ok := getFloat(asMap(entry["salePrice"]), "amount"); ok {
				p.Price = &amount
			}
			break
		}
	}

	return p
}

// NormalizeShoppingLists maps list summaries. Upstream names differ from the
// entity fields: totalItemCount, created and updated become itemCount,
// createdAt and updatedAt.
func NormalizeShoppingLists(data map[string]interface{}) ([]ShoppingList, error) {
	records := asSlice(data["shoppingListsV2"])
	if records == nil {
		return nil, fmt.Errorf("%w: shopping lists missing from response", common.ErrUpstream)
	}

	lists := make([]ShoppingList, 0, len(records))
	for _, record := range records {
		m := asMap(record)
		if m == nil {
			continue
		}
		lists = append(lists, normalizeListSummary(m))
	}
	return lists, nil
}

func normalizeListSummary(m map[string]interface{}) ShoppingList {
	count := 0
	if n, ok := getFloat(m, "totalItemCount"); ok {
		count = int(n)
	}
	return ShoppingList{
		ID:        getString(m, "id"),
		Name:      getString(m, "name"),
		ItemCount: count,
		CreatedAt: getString(m, "created"),
		UpdatedAt: getString(m, "updated"),
	}
}

// NormalizeShoppingListDetail maps one list with its items. A missing list
// object means the list does not exist.
func NormalizeShoppingListDetail(data map[string]interface{}) (*ShoppingListDetail, error) {
	m := asMap(data["shoppingListV2"])
	if m == nil {
		return nil, fmt.Errorf("%w: shopping list not found", common.ErrNotFound)
	}

	detail := &ShoppingListDetail{
		ShoppingList: normalizeListSummary(m),
		Items:        []ShoppingListItem{},
	}

	for _, record := range asSlice(m["items"]) {
		im := asMap(record)
		if im == nil {
			continue
		}
		detail.Items = append(detail.Items, normalizeListItem(im))
	}
	return detail, nil
}

func normalizeListItem(m map[string]interface{}) ShoppingListItem {
	product := asMap(m["product"])

	quantity := 1
	if n, ok := getFloat(m, "quantity"); ok {
		quantity = int(n)
	}

	item := ShoppingListItem{
		ID:        getString(m, "id"),
		ProductID: getString(product, "id"),
		Name:      getString(product, "fullDisplayName"),
		Quantity:  quantity,
		Checked:   getBool(m, "checked"),
		ImageURL:  selectImage(asSlice(product["images"])),
	}

	if price, ok := getFloat(asMap(m["itemPrice"]), "salePrice"); ok {
		item.Price = &price
	}

	return item
}

// selectImage prefers the MEDIUM-sized entry, then falls back to the first
// entry in array order.
func selectImage(entries []interface{}) string {
	first := ""
	for _, entry := range entries {
		m := asMap(entry)
		if m == nil {
			continue
		}
		url := getString(m, "url")
		if url == "" {
			continue
		}
		if getString(m, "size") == "MEDIUM" {
			return url
		}
		if first == "" {
			first = url
		}
	}
	return first
}

func mapAvailability(state string) string {
	switch state {
	case "IN_STOCK":
		return AvailabilityInStock
	case "LOW_STOCK":
		return AvailabilityLowStock
	default:
		return AvailabilityOutOfStock
	}
}

func asMap(v interface{}) map[string]interface{} {
	m, _ := v.(map[string]interface{})
	return m
}

func asSlice(v interface{}) []interface{} {
	s, _ := v.([]interface{})
	return s
}

func getString(m map[string]interface{}, key string) string {
	if m == nil {
		return ""
	}
	s, _ := m[key].(string)
	return s
}

func getFloat(m map[string]interface{}, key string) (float64, bool) {
	if m == nil {
		return 0, false
	}
	switch n := m[key].(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}

func getBool(m map[string]interface{}, key string) bool {
	if m == nil {
		return false
	}
	b, _ := m[key].(bool)
	return b
}
