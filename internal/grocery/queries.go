package grocery

// The upstream API only accepts persisted queries: the request names an
// operation and carries the sha256 of its registered query text. The hash
// table below is a closed contract; the server rejects anything else.

const (
	opSearchProducts     = "SearchProducts"
	opGetShoppingLists   = "GetShoppingListsV2"
	opGetShoppingList    = "GetShoppingListDetails"
	opAddItemsToList     = "AddItemsToShoppingList"
	opRemoveItemFromList = "RemoveItemFromShoppingList"
)

var persistedQueryHashes = map[string]string{
	opSearchProducts:     "9f1c3b5a2de07c8f41d6a0b9e3572c14f8a6d0b27c5e49318b0d6f2a7c145e93",
	opGetShoppingLists:   "3a8e51c09b2f476d1e8c35a704b9d6f2185c0e7a943d2b61f05a8c39e7d41b26",
	opGetShoppingList:    "c47d09e2a1f8365b90c4d7e612a3f58b04e9c1d6273a85f0b1e64c92d8a07f35",
	opAddItemsToList:     "e12b84f6a09c3d571e26b8f4903ac5d718f20e6b4c97a3d105e8b2f6c49d0a78",
	opRemoveItemFromList: "68d3a0c5f29e417b86a1d4c702e9f36508b7d2a1e64c93f07ba5e18d2c60f49b",
}

type GraphQLRequest struct {
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
	Extensions    Extensions             `json:"extensions"`
}

type Extensions struct {
	PersistedQuery PersistedQuery `json:"persistedQuery"`
}

type PersistedQuery struct {
	Version    int    `json:"version"`
	SHA256Hash string `json:"sha256Hash"`
}

func newRequest(operationName string, variables map[string]interface{}) *GraphQLRequest {
	return &GraphQLRequest{
		OperationName: operationName,
		Variables:     variables,
		Extensions: Extensions{
			PersistedQuery: PersistedQuery{
				Version:    1,
				SHA256Hash: persistedQueryHashes[operationName],
			},
		},
	}
}

// NewSearchProductsRequest builds the catalog search payload. Page size and
// ordering are fixed defaults; only query, limit and store vary per call.
func NewSearchProductsRequest(query string, limit int, storeID string) *GraphQLRequest {
	return newRequest(opSearchProducts, map[string]interface{}{
		"query":           query,
		"pageSize":        limit,
		"page":            1,
		"storeId":         storeID,
		"sortBy":          "relevance",
		"shoppingContext": "CURBSIDE_PICKUP",
	})
}

func NewGetShoppingListsRequest() *GraphQLRequest {
	return newRequest(opGetShoppingLists, map[string]interface{}{})
}

func NewGetShoppingListRequest(listID string) *GraphQLRequest {
	return newRequest(opGetShoppingList, map[string]interface{}{
		"listId": listID,
	})
}

// NewAddItemsRequest expands (productID, quantity) pairs into repeated
// single-unit entries. The upstream mutation has no quantity field, so a
// quantity of 3 becomes three entries for the same product.
func NewAddItemsRequest(listID string, productIDs []string, quantities []int) *GraphQLRequest {
	return newRequest(opAddItemsToList, map[string]interface{}{
		"listId": listID,
		"items":  ExpandItemEntries(productIDs, quantities),
	})
}

func NewRemoveItemRequest(listID, itemID string) *GraphQLRequest {
	return newRequest(opRemoveItemFromList, map[string]interface{}{
		"listId": listID,
		"itemId": itemID,
	})
}

// ExpandItemEntries produces one single-unit entry per unit of quantity,
// grouped by product in input order. A product without a matching quantity
// defaults to one unit.
func ExpandItemEntries(productIDs []string, quantities []int) []map[string]interface{} {
	entries := make([]map[string]interface{}, 0, len(productIDs))
	for i, id := range productIDs {
		quantity := 1
		if i < len(quantities) {
			quantity = quantities[i]
		}
		for j := 0; j < quantity; j++ {
			entries = append(entries, map[string]interface{}{
				"productId": id,
				"quantity":  1,
			})
		}
	}
	return entries
}
