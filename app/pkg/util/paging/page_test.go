package pagingUtil_test

import (
	"testing"

	pagingUtil "backend/school-platform/app/pkg/util/paging"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		size     int
		expected int
	}{
		{name: "exact multiple", total: 20, size: 10, expected: 2},
		{name: "rounds up", total: 21, size: 10, expected: 3},
		{name: "single partial page", total: 3, size: 10, expected: 1},
		{name: "empty table", total: 0, size: 10, expected: 0},
		{name: "size one", total: 5, size: 1, expected: 5},
		{name: "zero size", total: 5, size: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pagingUtil.TotalPages(tt.total, tt.size); got != tt.expected {
				t.Errorf("TotalPages(%d, %d) = %d, expected %d", tt.total, tt.size, got, tt.expected)
			}
		})
	}
}
