package usecase

// TotalPages is ceil(count/pageSize). An empty dataset has zero pages.
func TotalPages(count, pageSize int) int {
	if pageSize <= 0 || count <= 0 {
		return 0
	}
	return (count-1)/pageSize + 1
}

// PageSlice returns the half-open range [(page-1)*size, page*size) clamped to the
// slice bounds. Out-of-range pages yield an empty slice, never a panic.
// The page is checked against the page count before multiplying so huge
// page numbers cannot overflow the offset.
func PageSlice[T any](records []T, page, pageSize int) []T {
	if page < 1 || pageSize <= 0 || page > TotalPages(len(records), pageSize) {
		return records[:0:0]
	}
	start := (page - 1) * pageSize
	end := start + pageSize
	if end > len(records) {
		end = len(records)
	}
	return records[start:end:end]
}
