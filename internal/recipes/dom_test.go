package recipes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestWalkNodes(t *testing.T) {
	doc := parseDoc(t, `<html><body>
		<div class="first"><span class="inner">a</span></div>
		<div class="second">b</div>
		<div class="third">c</div>
	</body></html>`)

	collectClasses := func(visit func(*html.Node) bool) []string {
		var classes []string
		walkNodes(doc, func(n *html.Node) bool {
			if n.Type == html.ElementNode {
				if class := attrValue(n, "class"); class != "" {
					classes = append(classes, class)
				}
			}
			return visit(n)
		})
		return classes
	}

	t.Run("visits every node in document order", func(t *testing.T) {
		classes := collectClasses(func(*html.Node) bool { return true })
		assert.Equal(t, []string{"first", "inner", "second", "third"}, classes)
	})

	t.Run("false prunes the subtree but siblings are still visited", func(t *testing.T) {
		classes := collectClasses(func(n *html.Node) bool {
			return !(n.Type == html.ElementNode && hasClass(n, "first"))
		})
		assert.Equal(t, []string{"first", "second", "third"}, classes)
	})

	t.Run("pruning one branch does not hide a later match", func(t *testing.T) {
		var matched []string
		walkNodes(doc, func(n *html.Node) bool {
			if n.Type != html.ElementNode || attrValue(n, "class") == "" {
				return true
			}
			if hasClass(n, "inner") {
				t.Fatal("pruned node was visited")
			}
			matched = append(matched, attrValue(n, "class"))
			return false
		})
		assert.Equal(t, []string{"first", "second", "third"}, matched)
	})
}

func TestFindFirst(t *testing.T) {
	doc := parseDoc(t, `<html><body>
		<p class="note">skip</p>
		<div class="target">one</div>
		<div class="target">two</div>
	</body></html>`)

	t.Run("returns the first match in document order", func(t *testing.T) {
		node := findFirst(doc, func(n *html.Node) bool {
			return n.Type == html.ElementNode && hasClass(n, "target")
		})
		require.NotNil(t, node)
		assert.Equal(t, "one", nodeText(node))
	})

	t.Run("returns nil when nothing matches", func(t *testing.T) {
		node := findFirst(doc, func(n *html.Node) bool {
			return n.Type == html.ElementNode && hasClass(n, "missing")
		})
		assert.Nil(t, node)
	})
}
