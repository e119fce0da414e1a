package pagination

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		name      string
		n         int
		page      int
		perPage   int
		wantItems []int
		wantPage  int
		wantPer   int
		wantPages int
	}{
		{name: "third page of 45", n: 45, page: 3, perPage: 20, wantItems: seq(45)[40:45], wantPage: 3, wantPer: 20, wantPages: 3},
		{name: "first page", n: 45, page: 1, perPage: 20, wantItems: seq(20), wantPage: 1, wantPer: 20, wantPages: 3},
		{name: "exact multiple", n: 40, page: 2, perPage: 20, wantItems: seq(40)[20:], wantPage: 2, wantPer: 20, wantPages: 2},
		{name: "beyond range", n: 45, page: 4, perPage: 20, wantItems: []int{}, wantPage: 4, wantPer: 20, wantPages: 3},
		{name: "empty input", n: 0, page: 1, perPage: 20, wantItems: []int{}, wantPage: 1, wantPer: 20, wantPages: 1},
		{name: "page below one", n: 5, page: 0, perPage: 2, wantItems: []int{0, 1}, wantPage: 1, wantPer: 2, wantPages: 3},
		{name: "per page below one", n: 3, page: 2, perPage: -4, wantItems: []int{1}, wantPage: 2, wantPer: 1, wantPages: 3},
		{name: "huge page", n: 3, page: math.MaxInt / 2, perPage: 100, wantItems: []int{}, wantPage: math.MaxInt / 2, wantPer: 100, wantPages: 1},
		{name: "max page", n: 3, page: math.MaxInt, perPage: math.MaxInt, wantItems: []int{}, wantPage: math.MaxInt, wantPer: math.MaxInt, wantPages: 1},
		{name: "huge per page", n: 3, page: 1, perPage: math.MaxInt, wantItems: []int{0, 1, 2}, wantPage: 1, wantPer: math.MaxInt, wantPages: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Paginate(seq(tt.n), tt.page, tt.perPage)
			assert.Equal(t, tt.wantItems, got.Items)
			assert.Equal(t, tt.wantPage, got.Page)
			assert.Equal(t, tt.wantPer, got.PerPage)
			assert.Equal(t, tt.n, got.TotalItems)
			assert.Equal(t, tt.wantPages, got.TotalPages)
		})
	}
}

func TestPaginate_NilInputGivesEmptyItems(t *testing.T) {
	got := Paginate[int](nil, 1, 10)
	assert.NotNil(t, got.Items)
	assert.Empty(t, got.Items)
}

func TestPaginate_PagesCoverAllItems(t *testing.T) {
	items := seq(47)
	first := Paginate(items, 1, 10)

	var collected []int
	for page := 1; page <= first.TotalPages; page++ {
		collected = append(collected, Paginate(items, page, 10).Items...)
	}
	assert.Equal(t, items, collected)
}

func TestPaginate_ItemsAreCapped(t *testing.T) {
	items := seq(10)
	p := Paginate(items, 1, 5)

	_ = append(p.Items, 99)
	assert.Equal(t, 5, items[5])
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name             string
		page, perPage    int
		wantPage, wantPP int
	}{
		{name: "valid", page: 2, perPage: 30, wantPage: 2, wantPP: 30},
		{name: "zero page", page: 0, perPage: 30, wantPage: 1, wantPP: 30},
		{name: "negative page", page: -5, perPage: 30, wantPage: 1, wantPP: 30},
		{name: "zero per page uses default", page: 1, perPage: 0, wantPage: 1, wantPP: 20},
		{name: "per page capped", page: 1, perPage: 500, wantPage: 1, wantPP: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, perPage := Clamp(tt.page, tt.perPage, 20, 100)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantPP, perPage)
		})
	}
}
