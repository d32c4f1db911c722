package render

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campusnotes/notes-client/internal/models"
)

func browseHref(page int) string {
	return fmt.Sprintf("/browse?page=%d", page)
}

func TestPaginationSinglePageRendersNothing(t *testing.T) {
	out := Pagination(models.PageResult{CurrentPage: 1, Pages: 1, Total: 5}, browseHref)
	assert.Empty(t, string(out))

	out = Pagination(models.PageResult{CurrentPage: 1, Pages: 0}, browseHref)
	assert.Empty(t, string(out))
}

func TestPaginationWindowCenteredOnCurrentPage(t *testing.T) {
	out := string(Pagination(models.PageResult{CurrentPage: 5, Pages: 10}, browseHref))

	for page := 3; page <= 7; page++ {
		assert.Contains(t, out, fmt.Sprintf(`href="/browse?page=%d"`, page))
	}
	assert.NotContains(t, out, `href="/browse?page=2"`)
	assert.NotContains(t, out, `href="/browse?page=8"`)

	assert.Contains(t, out, ">Previous<")
	assert.Contains(t, out, ">Next<")
	// Previous points one page back, Next one page forward
	assert.Contains(t, out, `href="/browse?page=4">Previous`)
	assert.Contains(t, out, `href="/browse?page=6">Next`)
	// the current page is marked active
	assert.Contains(t, out, `class="active" href="/browse?page=5"`)
}

func TestPaginationFirstPageHasNoPrevious(t *testing.T) {
	out := string(Pagination(models.PageResult{CurrentPage: 1, Pages: 4}, browseHref))
	assert.NotContains(t, out, "Previous")
	assert.Contains(t, out, ">Next<")
	// window clips at page 1
	assert.Contains(t, out, `href="/browse?page=1"`)
	assert.Contains(t, out, `href="/browse?page=3"`)
	assert.NotContains(t, out, `href="/browse?page=4">4`)
}

func TestPaginationLastPageHasNoNext(t *testing.T) {
	out := string(Pagination(models.PageResult{CurrentPage: 4, Pages: 4}, browseHref))
	assert.NotContains(t, out, "Next")
	assert.Contains(t, out, ">Previous<")
}
