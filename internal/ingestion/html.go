package ingestion

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// HTMLToText converts an HTML description fragment to plain text. Block
// elements end on a new line and list items get a "- " prefix.
func HTMLToText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("script, style, noscript, iframe").Remove()
	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find("li").PrependHtml("- ")
	doc.Find("p, div, li, ul, ol, h1, h2, h3, h4, h5, h6, tr, section").AppendHtml("\n")

	return CleanText(doc.Text()), nil
}
