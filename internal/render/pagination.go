package render

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/campusnotes/notes-client/internal/models"
)

// Pagination renders the paging controls for a listing. href maps a page
// number to the link that re-invokes the loader which produced this render.
// Nothing is rendered for a single page. The numbered window spans two
// pages either side of the current one, clipped to [1, pages]; Previous is
// absent on the first page and Next on the last.
func Pagination(result models.PageResult, href func(page int) string) template.HTML {
	if result.Pages <= 1 {
		return template.HTML("")
	}

	var sb strings.Builder

	if result.CurrentPage > 1 {
		writePageLink(&sb, href(result.CurrentPage-1), "Previous", false)
	}

	first := result.CurrentPage - 2
	if first < 1 {
		first = 1
	}
	last := result.CurrentPage + 2
	if last > result.Pages {
		last = result.Pages
	}
	for page := first; page <= last; page++ {
		writePageLink(&sb, href(page), fmt.Sprintf("%d", page), page == result.CurrentPage)
	}

	if result.CurrentPage < result.Pages {
		writePageLink(&sb, href(result.CurrentPage+1), "Next", false)
	}

	return template.HTML(sb.String())
}

func writePageLink(sb *strings.Builder, href, label string, active bool) {
	class := ""
	if active {
		class = ` class="active"`
	}
	fmt.Fprintf(sb, `<a%s href="%s">%s</a>`, class, template.HTMLEscapeString(href), template.HTMLEscapeString(label))
}
