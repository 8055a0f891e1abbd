package pipeline

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// CountTOCEntries returns the number of links in a TOC fragment.
// The count is informational; malformed markup is tokenized leniently.
func CountTOCEntries(toc []string) int {
	if len(toc) == 0 {
		return 0
	}

	z := html.NewTokenizer(strings.NewReader(strings.Join(toc, "\n")))
	count := 0
	for {
		switch z.Next() {
		case html.ErrorToken:
			return count
		case html.StartTagToken:
			name, _ := z.TagName()
			if atom.Lookup(name) == atom.A {
				count++
			}
		}
	}
}
