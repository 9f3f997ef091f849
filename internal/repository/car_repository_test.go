package repository

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderClauseWhitelist(t *testing.T) {
	cases := []struct {
		sortBy, order, want string
	}{
		{"price", "desc", "c.price DESC"},
		{"YEAR", "ASC", "c.year ASC"},
		{"", "", "c.id ASC"},
		{"price; DROP TABLE cars", "desc", "c.id DESC"},
		{"brand", "sideways", "c.brand ASC"},
	}
	for _, tc := range cases {
		f := CarFilter{SortBy: tc.sortBy, Order: tc.order}
		assert.Equal(t, tc.want, f.orderClause(), "sortBy=%q order=%q", tc.sortBy, tc.order)
	}
}

func TestParseImageData(t *testing.T) {
	packed := sql.NullString{
		String: "https://cdn.example.com/a.jpg|||front:::https://cdn.example.com/b.jpg|||",
		Valid:  true,
	}
	refs := parseImageData(packed)

	assert.Len(t, refs, 2)
	assert.Equal(t, ImageRef{ImageURL: "https://cdn.example.com/a.jpg", Description: "front"}, refs[0])
	assert.Equal(t, ImageRef{ImageURL: "https://cdn.example.com/b.jpg", Description: ""}, refs[1])

	assert.Empty(t, parseImageData(sql.NullString{}))
}
