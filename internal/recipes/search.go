package recipes

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

const (
	cardClass            = "mntl-card-list-items"
	cardTitleClass       = "card__title"
	cardDescriptionClass = "card__content"
	cardRatingClass      = "mm-recipes-card-meta__rating-count-number"
	ratingAttr           = "data-rating"
)

// Recipe links carry a numeric identifier segment; category and article
// links do not and are skipped.
var recipePathRegex = regexp.MustCompile(`/recipe/(\d+)(?:/|$)`)

var digitsRegex = regexp.MustCompile(`\d+`)

// ExtractSearchResults walks result cards in document order, stopping at the
// caller's limit.
func ExtractSearchResults(doc *html.Node, baseURL string, limit int) []SearchResult {
	base, _ := url.Parse(baseURL)
	results := []SearchResult{}

	walkNodes(doc, func(n *html.Node) bool {
		if len(results) >= limit {
			return false
		}
		if !isElement(n, "a") || !hasClass(n, cardClass) {
			return true
		}

		href := attrValue(n, "href")
		match := recipePathRegex.FindStringSubmatch(href)
		if match == nil {
			return false
		}

		result := SearchResult{
			ID:    match[1],
			Title: extractCardTitle(n),
			URL:   resolveURL(base, href),
		}
		if result.Title == "" {
			return false
		}

		result.ImageURL = extractCardImage(n)
		result.Description = extractCardDescription(n)
		result.Rating = extractCardRating(n)
		result.ReviewCount = extractCardReviewCount(n)

		results = append(results, result)
		return false
	})

	return results
}

func extractCardTitle(card *html.Node) string {
	title := findFirst(card, func(n *html.Node) bool {
		return n.Type == html.ElementNode && hasClass(n, cardTitleClass)
	})
	if title == nil {
		return ""
	}
	return dedupeTitle(nodeText(title))
}

// dedupeTitle handles a markup quirk where the title text appears twice in a
// row inside the element. When the second half repeats the first half, only
// the first occurrence is kept.
func dedupeTitle(text string) string {
	text = strings.TrimSpace(text)
	n := len(text)
	if n >= 2 && n%2 == 0 {
		half := strings.TrimSpace(text[:n/2])
		if half != "" && half == strings.TrimSpace(text[n/2:]) {
			return half
		}
	}
	// Same check when a single space separates the two occurrences.
	if n >= 3 && n%2 == 1 && text[n/2] == ' ' {
		half := text[:n/2]
		if half == text[n/2+1:] {
			return half
		}
	}
	return text
}

func extractCardDescription(card *html.Node) string {
	node := findFirst(card, func(n *html.Node) bool {
		return n.Type == html.ElementNode && hasClass(n, cardDescriptionClass)
	})
	if node == nil {
		return ""
	}
	return nodeText(node)
}

// extractCardImage prefers the deferred-load attribute; images below the fold
// only carry the real URL there.
func extractCardImage(card *html.Node) string {
	img := findFirst(card, func(n *html.Node) bool { return isElement(n, "img") })
	if img == nil {
		return ""
	}
	if src := attrValue(img, "data-src"); src != "" {
		return src
	}
	return attrValue(img, "src")
}

func extractCardRating(card *html.Node) *float64 {
	node := findFirst(card, func(n *html.Node) bool {
		return n.Type == html.ElementNode && attrValue(n, ratingAttr) != ""
	})
	if node == nil {
		return nil
	}
	rating, err := strconv.ParseFloat(attrValue(node, ratingAttr), 64)
	if err != nil {
		return nil
	}
	return &rating
}

func extractCardReviewCount(card *html.Node) *int {
	node := findFirst(card, func(n *html.Node) bool {
		return n.Type == html.ElementNode && hasClass(n, cardRatingClass)
	})
	if node == nil {
		return nil
	}
	digits := digitsRegex.FindString(strings.ReplaceAll(nodeText(node), ",", ""))
	if digits == "" {
		return nil
	}
	count, err := strconv.Atoi(digits)
	if err != nil {
		return nil
	}
	return &count
}

func resolveURL(base *url.URL, href string) string {
	parsed, err := url.Parse(href)
	if err != nil {
		return href
	}
	if base == nil {
		return href
	}
	return base.ResolveReference(parsed).String()
}
