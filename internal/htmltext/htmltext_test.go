package htmltext

import (
	"strings"
	"testing"
)

func TestParseTitleAndText(t *testing.T) {
	doc := `<html><head><title>My Article</title></head>
<body><h1>Heading</h1><p>First paragraph.</p><p>Second paragraph.</p></body></html>`

	page, err := Parse(doc)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if page.Title != "My Article" {
		t.Errorf("expected title %q, got %q", "My Article", page.Title)
	}
	if !strings.Contains(page.Text, "First paragraph.") {
		t.Errorf("expected body text, got %q", page.Text)
	}
	if strings.Contains(page.Text, "My Article") {
		t.Errorf("title should not leak into body text: %q", page.Text)
	}
}

func TestParseSkipsScriptAndStyle(t *testing.T) {
	doc := `<html><body><script>var x = 1;</script><style>p { color: red; }</style><p>Visible.</p></body></html>`

	page, err := Parse(doc)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if strings.Contains(page.Text, "var x") || strings.Contains(page.Text, "color") {
		t.Errorf("script/style content leaked: %q", page.Text)
	}
	if page.Text != "Visible." {
		t.Errorf("expected %q, got %q", "Visible.", page.Text)
	}
}

func TestParseCollapsesWhitespace(t *testing.T) {
	doc := "<p>one</p>\n\n<p>two</p>"

	page, err := Parse(doc)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if page.Text != "one two" {
		t.Errorf("expected %q, got %q", "one two", page.Text)
	}
}

func TestStripFragment(t *testing.T) {
	if got := Strip("<b>bold</b> and plain"); got != "bold and plain" {
		t.Errorf("expected %q, got %q", "bold and plain", got)
	}
}
