package pagination

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromQuery(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    Params
		wantErr error
	}{
		{name: "defaults", query: "", want: Params{Page: 1}},
		{name: "page and size", query: "page=3&pageSize=10", want: Params{Page: 3, PageSize: 10}},
		{name: "zero page", query: "page=0", wantErr: ErrInvalidPage},
		{name: "not a number", query: "page=two", wantErr: ErrInvalidPage},
		{name: "negative size", query: "pageSize=-1", wantErr: ErrInvalidPageSize},
		{name: "size too large", query: "pageSize=101", wantErr: ErrInvalidPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			got, err := FromQuery(q)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSlice(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	got, meta := Slice(items, Params{Page: 1})
	assert.Equal(t, items, got)
	assert.Nil(t, meta)

	got, meta = Slice(items, Params{Page: 2, PageSize: 2})
	assert.Equal(t, []int{3, 4}, got)
	assert.Equal(t, &Meta{Page: 2, PageSize: 2, TotalItems: 5, TotalPages: 3}, meta)

	got, meta = Slice(items, Params{Page: 3, PageSize: 2})
	assert.Equal(t, []int{5}, got)
	assert.Equal(t, 3, meta.TotalPages)

	got, _ = Slice(items, Params{Page: 9, PageSize: 2})
	assert.Empty(t, got)

	got, meta = Slice([]int{}, Params{Page: 1, PageSize: 2})
	assert.Empty(t, got)
	assert.Equal(t, 0, meta.TotalPages)
}
