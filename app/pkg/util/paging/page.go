package pagingUtil

// TotalPages returns the number of pages needed to cover total rows with the
// given page size, rounding up.
func TotalPages(total int, size int) int {
	if size <= 0 {
		return 0
	}
	return (total + size - 1) / size
}
