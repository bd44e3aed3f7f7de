package results

// maxPageButtons bounds the rendered page-number window.
const maxPageButtons = 10

// maxPages is a hard cap on navigable pages regardless of the true total,
// bounding rendering cost.
const maxPages = 100

// TotalPages returns the navigable page count for a result total, clamped
// to the hard cap.
func TotalPages(total int64, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 1
	}
	pages := int((total + int64(perPage) - 1) / int64(perPage))
	if pages < 1 {
		pages = 1
	}
	if pages > maxPages {
		pages = maxPages
	}
	return pages
}

// PageWindow returns the page numbers to render: at most ten, centered on
// current and clamped to [1, TotalPages].
func PageWindow(current int, total int64, perPage int) []int {
	last := TotalPages(total, perPage)
	if current < 1 {
		current = 1
	}
	if current > last {
		current = last
	}

	start := current - maxPageButtons/2
	if start < 1 {
		start = 1
	}
	end := start + maxPageButtons - 1
	if end > last {
		end = last
		start = end - maxPageButtons + 1
		if start < 1 {
			start = 1
		}
	}

	window := make([]int, 0, end-start+1)
	for p := start; p <= end; p++ {
		window = append(window, p)
	}
	return window
}
