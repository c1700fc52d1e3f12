package recipes

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/local-mcps/grocery-mcps/internal/common"
	"github.com/local-mcps/grocery-mcps/pkg/mcp"
)

const defaultSearchLimit = 10

var numericIDRegex = regexp.MustCompile(`^\d+$`)

func (s *Server) searchRecipesTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "search_recipes",
		Description: "Search the recipe site and return lightweight results",
		InputSchema: mcp.BuildInputSchema(
			map[string]interface{}{
				"query": mcp.StringProperty("Search terms"),
				"limit": mcp.IntProperty("Maximum number of results (default: 10)"),
			},
			[]string{"query"},
		),
		Handler: s.handleSearchRecipes,
	}
}

func (s *Server) handleSearchRecipes(ctx context.Context, params map[string]interface{}) (*mcp.ToolResult, error) {
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

	searchURL := fmt.Sprintf("%s/search?q=%s", strings.TrimRight(s.config.BaseURL, "/"), url.QueryEscape(query))
	doc, err := s.fetcher.FetchDocument(ctx, searchURL)
	if err != nil {
		return nil, err
	}

	results := ExtractSearchResults(doc, s.config.BaseURL, limit)

	s.logger.WithFields(map[string]interface{}{
		"tool":  "search_recipes",
		"count": len(results),
	}).Info("search completed")

	return mcp.JSONResult(map[string]interface{}{
		"query":   query,
		"count":   len(results),
		"results": results,
	})
}

func (s *Server) getRecipeTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_recipe",
		Description: "Fetch a recipe page and extract its full details",
		InputSchema: mcp.BuildInputSchema(
			map[string]interface{}{
				"recipe": mcp.StringProperty("Recipe URL or numeric recipe id"),
			},
			[]string{"recipe"},
		),
		Handler: s.handleGetRecipe,
	}
}

func (s *Server) handleGetRecipe(ctx context.Context, params map[string]interface{}) (*mcp.ToolResult, error) {
	ref, err := mcp.GetStringParam(params, "recipe", true)
	if err != nil {
		return nil, common.WrapError(common.ErrValidation, err.Error())
	}
	ref, err = common.RequireString("recipe", ref)
	if err != nil {
		return nil, err
	}

	pageURL, id, err := s.resolveRecipeRef(ref)
	if err != nil {
		return nil, err
	}

	doc, err := s.fetcher.FetchDocument(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	recipe, ok := ExtractRecipeJSONLD(doc, s.config.BaseURL, id)
	if !ok {
		recipe = ExtractRecipeFallback(doc, s.config.BaseURL, id)
	}

	if recipe.Name == "" && len(recipe.Ingredients) == 0 {
		return nil, fmt.Errorf("%w: no recipe data found at %s", common.ErrNotFound, pageURL)
	}

	return mcp.JSONResult(recipe)
}

// resolveRecipeRef accepts a bare numeric id or a full recipe URL under the
// configured origin.
func (s *Server) resolveRecipeRef(ref string) (pageURL, id string, err error) {
	base := strings.TrimRight(s.config.BaseURL, "/")

	if numericIDRegex.MatchString(ref) {
		return fmt.Sprintf("%s/recipe/%s/", base, ref), ref, nil
	}

	parsed, err := url.Parse(ref)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", "", common.ValidationErrorf("recipe must be a numeric id or an absolute URL, got %q", ref)
	}

	baseHost := ""
	if baseURL, err := url.Parse(base); err == nil {
		baseHost = baseURL.Host
	}
	if baseHost != "" && parsed.Host != baseHost {
		return "", "", common.ValidationErrorf("recipe URL must be under %s, got host %s", baseHost, parsed.Host)
	}

	match := recipePathRegex.FindStringSubmatch(parsed.Path)
	if match == nil {
		return "", "", common.ValidationErrorf("URL does not point at a recipe page: %s", ref)
	}

	return ref, match[1], nil
}
