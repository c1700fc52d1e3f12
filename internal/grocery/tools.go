package grocery

import (
	"context"
	"fmt"
	"strings"

	"github.com/local-mcps/grocery-mcps/internal/common"
	"github.com/local-mcps/grocery-mcps/pkg/mcp"
)

const defaultSearchLimit = 10

func (s *Server) searchProductsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "search_products",
		Description: "Search the store catalog for products",
		InputSchema: mcp.BuildInputSchema(
			map[string]interface{}{
				"query": mcp.StringProperty("Search terms"),
				"limit": mcp.IntProperty("Maximum number of results (default: 10)"),
			},
			[]string{"query"},
		),
		Handler: s.handleSearchProducts,
	}
}

func (s *Server) handleSearchProducts(ctx context.Context, params map[string]interface{}) (*mcp.ToolResult, error) {
	query, err := mcp.GetStringParam(params, "query", true)
	if err != nil {
		return nil, common.WrapError(common.ErrValidation, err.Error())
	}
	query, err = common.RequireString("query", query)
	if err != nil {
		return nil, err
	}

	limit, err := mcp.GetIntParam(params, "limit", false, defaultSearchLimit)
	if err != nil {
		return nil, common.WrapError(common.ErrValidation, err.Error())
	}
	if err := common.RequirePositive("limit", limit); err != nil {
		return nil, err
	}

	products, err := s.searchProducts(ctx, query, limit)
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"tool":  "search_products",
		"count": len(products),
	}).Info("search completed")

	return mcp.JSONResult(map[string]interface{}{
		"query":    query,
		"count":    len(products),
		"products": products,
	})
}

func (s *Server) searchProducts(ctx context.Context, query string, limit int) ([]Product, error) {
	data, err := s.client.Execute(ctx, NewSearchProductsRequest(query, limit, s.config.StoreID))
	if err != nil {
		return nil, err
	}
	return NormalizeSearchProducts(data)
}

func (s *Server) getShoppingListsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_shopping_lists",
		Description: "List all shopping lists on the account",
		InputSchema: mcp.BuildInputSchema(map[string]interface{}{}, nil),
		Handler:     s.handleGetShoppingLists,
	}
}

func (s *Server) handleGetShoppingLists(ctx context.Context, params map[string]interface{}) (*mcp.ToolResult, error) {
	data, err := s.client.Execute(ctx, NewGetShoppingListsRequest())
	if err != nil {
		return nil, err
	}

	lists, err := NormalizeShoppingLists(data)
	if err != nil {
		return nil, err
	}

	return mcp.JSONResult(map[string]interface{}{
		"count": len(lists),
		"lists": lists,
	})
}

func (s *Server) getShoppingListTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_shopping_list",
		Description: "Fetch one shopping list with its items",
		InputSchema: mcp.BuildInputSchema(
			map[string]interface{}{
				"list_id": mcp.StringProperty("Shopping list UUID (default: configured list)"),
			},
			nil,
		),
		Handler: s.handleGetShoppingList,
	}
}

func (s *Server) handleGetShoppingList(ctx context.Context, params map[string]interface{}) (*mcp.ToolResult, error) {
	listID, err := s.resolveListID(params)
	if err != nil {
		return nil, err
	}

	detail, err := s.fetchListDetail(ctx, listID)
	if err != nil {
		return nil, err
	}

	return mcp.JSONResult(detail)
}

func (s *Server) fetchListDetail(ctx context.Context, listID string) (*ShoppingListDetail, error) {
	data, err := s.client.Execute(ctx, NewGetShoppingListRequest(listID))
	if err != nil {
		return nil, err
	}
	return NormalizeShoppingListDetail(data)
}

func (s *Server) addToListTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "add_to_list",
		Description: "Add products to a shopping list",
		InputSchema: mcp.BuildInputSchema(
			map[string]interface{}{
				"list_id":     mcp.StringProperty("Shopping list UUID (default: configured list)"),
				"product_ids": mcp.ArrayProperty("string", "Numeric product identifiers"),
				"quantities":  mcp.ArrayProperty("integer", "Quantity per product; missing entries default to 1"),
			},
			[]string{"product_ids"},
		),
		Handler: s.handleAddToList,
	}
}

func (s *Server) handleAddToList(ctx context.Context, params map[string]interface{}) (*mcp.ToolResult, error) {
	listID, err := s.resolveListID(params)
	if err != nil {
		return nil, err
	}

	rawIDs, err := mcp.GetStringArrayParam(params, "product_ids", true)
	if err != nil {
		return nil, common.WrapError(common.ErrValidation, err.Error())
	}
	if len(rawIDs) == 0 {
		return nil, common.ValidationErrorf("product_ids must not be empty")
	}

	productIDs := make([]string, len(rawIDs))
	for i, raw := range rawIDs {
		productIDs[i], err = common.ValidateProductID(raw)
		if err != nil {
			return nil, err
		}
	}

	quantities, err := mcp.GetIntArrayParam(params, "quantities", false)
	if err != nil {
		return nil, common.WrapError(common.ErrValidation, err.Error())
	}
	for _, q := range quantities {
		if err := common.RequirePositive("quantity", q); err != nil {
			return nil, err
		}
	}

	if _, err := s.client.Execute(ctx, NewAddItemsRequest(listID, productIDs, quantities)); err != nil {
		return nil, err
	}

	total := len(ExpandItemEntries(productIDs, quantities))
	s.logger.WithFields(map[string]interface{}{
		"tool":    "add_to_list",
		"list_id": listID,
		"entries": total,
	}).Info("items added")

	return mcp.TextResult(fmt.Sprintf("Added %d item(s) across %d product(s) to list %s", total, len(productIDs), listID)), nil
}

func (s *Server) removeFromListTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "remove_from_list",
		Description: "Remove an item from a shopping list by item id or by name",
		InputSchema: mcp.BuildInputSchema(
			map[string]interface{}{
				"list_id":   mcp.StringProperty("Shopping list UUID (default: configured list)"),
				"item_id":   mcp.StringProperty("List item UUID"),
				"item_name": mcp.StringProperty("Item name to match when item_id is not known"),
			},
			nil,
		),
		Handler: s.handleRemoveFromList,
	}
}

func (s *Server) handleRemoveFromList(ctx context.Context, params map[string]interface{}) (*mcp.ToolResult, error) {
	listID, err := s.resolveListID(params)
	if err != nil {
		return nil, err
	}

	itemID, err := mcp.GetStringParam(params, "item_id", false)
	if err != nil {
		return nil, common.WrapError(common.ErrValidation, err.Error())
	}
	itemName, err := mcp.GetStringParam(params, "item_name", false)
	if err != nil {
		return nil, common.WrapError(common.ErrValidation, err.Error())
	}

	switch {
	case itemID != "":
		itemID, err = common.ValidateUUID("item id", itemID)
		if err != nil {
			return nil, err
		}
	case itemName != "":
		itemID, err = s.findItemByName(ctx, listID, itemName)
		if err != nil {
			return nil, err
		}
	default:
		return nil, common.ValidationErrorf("either item_id or item_name is required")
	}

	if _, err := s.client.Execute(ctx, NewRemoveItemRequest(listID, itemID)); err != nil {
		return nil, err
	}

	return mcp.TextResult(fmt.Sprintf("Removed item %s from list %s", itemID, listID)), nil
}

// findItemByName resolves a list item id from a case-insensitive substring
// match over the list's items, first match wins.
func (s *Server) findItemByName(ctx context.Context, listID, name string) (string, error) {
	name, err := common.RequireString("item_name", name)
	if err != nil {
		return "", err
	}

	detail, err := s.fetchListDetail(ctx, listID)
	if err != nil {
		return "", err
	}

	needle := strings.ToLower(name)
	for _, item := range detail.Items {
		if strings.Contains(strings.ToLower(item.Name), needle) {
			return item.ID, nil
		}
	}
	return "", fmt.Errorf("%w: no item matching %q in list %s", common.ErrNotFound, name, listID)
}

func (s *Server) searchAndAddTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "search_and_add",
		Description: "Search for a product and add the best match to a shopping list",
		InputSchema: mcp.BuildInputSchema(
			map[string]interface{}{
				"query":    mcp.StringProperty("Search terms"),
				"list_id":  mcp.StringProperty("Shopping list UUID (default: configured list)"),
				"quantity": mcp.IntProperty("How many to add (default: 1)"),
			},
			[]string{"query"},
		),
		Handler: s.handleSearchAndAdd,
	}
}

// handleSearchAndAdd is the only composite operation: one search call, then
// one add call using the first normalized result. No parallelism.
func (s *Server) handleSearchAndAdd(ctx context.Context, params map[string]interface{}) (*mcp.ToolResult, error) {
	query, err := mcp.GetStringParam(params, "query", true)
	if err != nil {
		return nil, common.WrapError(common.ErrValidation, err.Error())
	}
	query, err = common.RequireString("query", query)
	if err != nil {
		return nil, err
	}

	quantity, err := mcp.GetIntParam(params, "quantity", false, 1)
	if err != nil {
		return nil, common.WrapError(common.ErrValidation, err.Error())
	}
	if err := common.RequirePositive("quantity", quantity); err != nil {
		return nil, err
	}

	listID, err := s.resolveListID(params)
	if err != nil {
		return nil, err
	}

	products, err := s.searchProducts(ctx, query, defaultSearchLimit)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, fmt.Errorf("%w: no products matched %q", common.ErrNotFound, query)
	}

	match := products[0]
	req := NewAddItemsRequest(listID, []string{match.ProductID}, []int{quantity})
	if _, err := s.client.Execute(ctx, req); err != nil {
		return nil, err
	}

	return mcp.TextResult(fmt.Sprintf("Added %d x %q (product %s) to list %s", quantity, match.Name, match.ProductID, listID)), nil
}

// resolveListID takes the list_id parameter, falling back to the configured
// default list when the caller omits it.
func (s *Server) resolveListID(params map[string]interface{}) (string, error) {
	listID, err := mcp.GetStringParam(params, "list_id", false)
	if err != nil {
		return "", common.WrapError(common.ErrValidation, err.Error())
	}
	if listID == "" {
		listID = s.config.DefaultListID
	}
	if listID == "" {
		return "", common.ValidationErrorf("list_id is required (no default list configured)")
	}
	return common.ValidateUUID("list id", listID)
}
