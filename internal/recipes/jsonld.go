package recipes

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// Tier 1 extraction: recipe pages embed JSON-LD structured data, which is far
// more stable than the rendered markup. The page is scanned for the first
// block describing a Recipe; unparseable blocks are skipped and scanning
// continues.

func collectJSONLDBlocks(doc *html.Node) []string {
	var blocks []string
	walkNodes(doc, func(n *html.Node) bool {
		if isElement(n, "script") && attrValue(n, "type") == "application/ld+json" {
			var b strings.Builder
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if c.Type == html.TextNode {
					b.WriteString(c.Data)
				}
			}
			blocks = append(blocks, b.String())
		}
		return true
	})
	return blocks
}

// findTypedObject returns the first JSON-LD object whose @type equals, or
// whose @type array contains, the wanted type. Top-level arrays are searched
// element by element.
func findTypedObject(blocks []string, wantType string) map[string]interface{} {
	for _, block := range blocks {
		var parsed interface{}
		if err := json.Unmarshal([]byte(block), &parsed); err != nil {
			continue
		}

		switch v := parsed.(type) {
		case map[string]interface{}:
			if hasType(v, wantType) {
				return v
			}
		case []interface{}:
			for _, item := range v {
				if m, ok := item.(map[string]interface{}); ok && hasType(m, wantType) {
					return m
				}
			}
		}
	}
	return nil
}

func hasType(m map[string]interface{}, wantType string) bool {
	switch t := m["@type"].(type) {
	case string:
		return t == wantType
	case []interface{}:
		for _, entry := range t {
			if s, ok := entry.(string); ok && s == wantType {
				return true
			}
		}
	}
	return false
}

// ExtractRecipeJSONLD maps a page's embedded Recipe object into the Recipe
// shape. It reports false when no Recipe block exists so the caller can fall
// back to HTML extraction.
func ExtractRecipeJSONLD(doc *html.Node, baseURL, id string) (*Recipe, bool) {
	obj := findTypedObject(collectJSONLDBlocks(doc), "Recipe")
	if obj == nil {
		return nil, false
	}

	recipe := &Recipe{
		ID:           id,
		Name:         jsonString(obj["name"]),
		Description:  jsonString(obj["description"]),
		Author:       authorName(obj["author"]),
		PrepTime:     jsonString(obj["prepTime"]),
		CookTime:     jsonString(obj["cookTime"]),
		TotalTime:    jsonString(obj["totalTime"]),
		Servings:     yieldString(obj["recipeYield"]),
		ImageURL:     imageString(obj["image"]),
		Ingredients:  stringSlice(obj["recipeIngredient"]),
		Instructions: instructionSteps(obj["recipeInstructions"]),
	}

	recipe.URL = canonicalURL(obj, baseURL, id)
	recipe.Rating, recipe.ReviewCount = aggregateRating(obj["aggregateRating"])
	recipe.Nutrition = nutritionFacts(obj["nutrition"])

	return recipe, true
}

func canonicalURL(obj map[string]interface{}, baseURL, id string) string {
	if u := jsonString(obj["url"]); u != "" {
		return u
	}
	if m, ok := obj["mainEntityOfPage"].(map[string]interface{}); ok {
		if u := jsonString(m["@id"]); u != "" {
			return u
		}
	}
	return fmt.Sprintf("%s/recipe/%s/", strings.TrimRight(baseURL, "/"), id)
}

func jsonString(v interface{}) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

func stringSlice(v interface{}) []string {
	arr, _ := v.([]interface{})
	out := make([]string, 0, len(arr))
	for _, item := range arr {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// instructionSteps flattens instruction entries. Plain strings and objects
// with a text field both contribute; any other shape is skipped.
func instructionSteps(v interface{}) []string {
	arr, _ := v.([]interface{})
	out := make([]string, 0, len(arr))
	for _, entry := range arr {
		switch step := entry.(type) {
		case string:
			if s := strings.TrimSpace(step); s != "" {
				out = append(out, s)
			}
		case map[string]interface{}:
			if s := jsonString(step["text"]); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

func authorName(v interface{}) string {
	switch a := v.(type) {
	case string:
		return strings.TrimSpace(a)
	case map[string]interface{}:
		return jsonString(a["name"])
	case []interface{}:
		if len(a) > 0 {
			return authorName(a[0])
		}
	}
	return ""
}

// imageString takes the first entry when the image is declared as an array,
// otherwise the scalar value.
func imageString(v interface{}) string {
	switch img := v.(type) {
	case string:
		return img
	case []interface{}:
		if len(img) > 0 {
			return imageString(img[0])
		}
	case map[string]interface{}:
		return jsonString(img["url"])
	}
	return ""
}

// yieldString renders the declared yield as text; numeric yields keep their
// integer form.
func yieldString(v interface{}) string {
	switch y := v.(type) {
	case string:
		return strings.TrimSpace(y)
	case float64:
		return strconv.FormatFloat(y, 'f', -1, 64)
	case []interface{}:
		if len(y) > 0 {
			return yieldString(y[0])
		}
	}
	return ""
}

func aggregateRating(v interface{}) (*float64, *int) {
	m, ok := v.(map[string]interface{})
	if !ok {
		return nil, nil
	}

	var rating *float64
	if r, ok := jsonNumber(m["ratingValue"]); ok {
		rating = &r
	}

	var reviews *int
	if r, ok := jsonNumber(m["ratingCount"]); ok {
		n := int(r)
		reviews = &n
	} else if r, ok := jsonNumber(m["reviewCount"]); ok {
		n := int(r)
		reviews = &n
	}

	return rating, reviews
}

// jsonNumber accepts both JSON numbers and numeric strings, which structured
// data uses interchangeably.
func jsonNumber(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	}
	return 0, false
}

func nutritionFacts(v interface{}) *Nutrition {
	m, ok := v.(map[string]interface{})
	if !ok {
		return nil
	}

	n := &Nutrition{
		Calories:       jsonString(m["calories"]),
		Fat:            jsonString(m["fatContent"]),
		SaturatedFat:   jsonString(m["saturatedFatContent"]),
		UnsaturatedFat: jsonString(m["unsaturatedFatContent"]),
		Carbs:          jsonString(m["carbohydrateContent"]),
		Sugar:          jsonString(m["sugarContent"]),
		Fiber:          jsonString(m["fiberContent"]),
		Protein:        jsonString(m["proteinContent"]),
		Cholesterol:    jsonString(m["cholesterolContent"]),
		Sodium:         jsonString(m["sodiumContent"]),
	}
	if n.empty() {
		return nil
	}
	return n
}
