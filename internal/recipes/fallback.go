package recipes

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// Tier 2 extraction: when a page carries no Recipe structured data, scrape
// the rendered markup directly. This yields only title, ingredients and
// instructions; timing, rating and nutrition are unavailable at this tier.

const (
	ingredientItemClass  = "mntl-structured-ingredients__list-item"
	instructionItemClass = "mntl-sc-block-group--LI"

	// Instruction lines at or below this length are stray fragments, not
	// real steps.
	minInstructionLength = 10
)

func ExtractRecipeFallback(doc *html.Node, baseURL, id string) *Recipe {
	recipe := &Recipe{
		ID:           id,
		URL:          fmt.Sprintf("%s/recipe/%s/", strings.TrimRight(baseURL, "/"), id),
		Ingredients:  []string{},
		Instructions: []string{},
	}

	if h1 := findFirst(doc, func(n *html.Node) bool { return isElement(n, "h1") }); h1 != nil {
		recipe.Name = nodeText(h1)
	}

	walkNodes(doc, func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return true
		}
		switch {
		case isElement(n, "li") && hasClass(n, ingredientItemClass):
			if text := nodeText(n); text != "" {
				recipe.Ingredients = append(recipe.Ingredients, text)
			}
			return false
		case isElement(n, "li") && hasClass(n, instructionItemClass):
			if text := nodeText(n); len(text) > minInstructionLength {
				recipe.Instructions = append(recipe.Instructions, text)
			}
			return false
		}
		return true
	})

	return recipe
}
