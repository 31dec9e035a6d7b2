// Package htmltext extracts plain text and titles from HTML documents
// so they can be fed to the keyword extractors.
package htmltext

import (
	"strings"

	"golang.org/x/net/html"
)

// Page holds the extracted parts of an HTML document.
type Page struct {
	Title string
	Text  string
}

// Parse extracts the title and visible text from an HTML document.
func Parse(s string) (Page, error) {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return Page{}, err
	}

	var page Page
	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript":
				return
			case "title":
				if page.Title == "" && n.FirstChild != nil && n.FirstChild.Type == html.TextNode {
					page.Title = strings.TrimSpace(n.FirstChild.Data)
				}
				return
			}
		}
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
			buf.WriteString(" ")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	page.Text = strings.Join(strings.Fields(buf.String()), " ")
	return page, nil
}

// Strip returns the visible text of an HTML fragment, falling back to
// the input when parsing fails.
func Strip(s string) string {
	page, err := Parse(s)
	if err != nil {
		return s
	}
	return page.Text
}
