package markup

import (
	"strings"
	"testing"
)

func TestConvert(t *testing.T) {
	conv := New()

	tests := []struct {
		name         string
		html         string
		wantContains []string
		wantMissing  []string
	}{
		{
			name:         "heading and emphasis",
			html:         "<h2>Title</h2><p>Hello <strong>world</strong></p>",
			wantContains: []string{"## Title", "Hello **world**"},
		},
		{
			name:         "link",
			html:         `<p><a href="/posts/other/">other post</a></p>`,
			wantContains: []string{"[other post](/posts/other/)"},
		},
		{
			name:         "list",
			html:         "<ul><li>one</li><li>two</li></ul>",
			wantContains: []string{"one", "two"},
		},
		{
			name:         "bookmark link survives",
			html:         "<p>before</p>\n\n[Example](/posts/posts/x)\n\n<p>after</p>",
			wantContains: []string{"[Example](/posts/posts/x)", "before", "after"},
		},
		{
			name:         "data image replaced by alt",
			html:         `<p><img src="data:image/png;base64,AAAA" alt="chart"></p>`,
			wantContains: []string{"[Image: chart]"},
			wantMissing:  []string{"data:image"},
		},
		{
			name:         "regular image kept",
			html:         `<p><img src="/images/a.png" alt="a"></p>`,
			wantContains: []string{"![a](/images/a.png)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := conv.Convert(tt.html)
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("Convert() missing %q\ngot: %s", want, got)
				}
			}
			for _, unwanted := range tt.wantMissing {
				if strings.Contains(got, unwanted) {
					t.Errorf("Convert() should not contain %q\ngot: %s", unwanted, got)
				}
			}
		})
	}
}

func TestConvert_Empty(t *testing.T) {
	conv := New()
	for _, in := range []string{"", "   ", "\n"} {
		if got := conv.Convert(in); got != "" {
			t.Errorf("Convert(%q) = %q, want empty", in, got)
		}
	}
}

func TestConvert_Trimmed(t *testing.T) {
	got := New().Convert("<p>x</p>")
	if got != strings.TrimSpace(got) {
		t.Errorf("Convert() = %q, want trimmed output", got)
	}
}
