package scores

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGrid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []Row
	}{
		{
			name: "single green row",
			raw:  "🟩🟩🟩🟩🟩",
			want: []Row{{TileGreen, TileGreen, TileGreen, TileGreen, TileGreen}},
		},
		{
			name: "two rows with header noise",
			raw:  "Wordle 1234 2/6\n\n🟨⬛⬛⬛🟩\n🟩🟩🟩🟩🟩",
			want: []Row{
				{TileYellow, TileGray, TileGray, TileGray, TileGreen},
				{TileGreen, TileGreen, TileGreen, TileGreen, TileGreen},
			},
		},
		{
			name: "light mode squares are gray",
			raw:  "⬜⬜🟨⬜⬜",
			want: []Row{{TileGray, TileGray, TileYellow, TileGray, TileGray}},
		},
		{
			name: "trailing partial row discarded",
			raw:  "🟩🟩🟩🟩🟩🟨🟨",
			want: []Row{{TileGreen, TileGreen, TileGreen, TileGreen, TileGreen}},
		},
		{
			name: "no tiles at all",
			raw:  "Wordle 1234 3/6 but I forgot the grid",
			want: nil,
		},
		{
			name: "fewer than five tiles",
			raw:  "🟩🟩🟩",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseGrid(tt.raw)
			require.Len(t, got, len(tt.want))
			for i := range tt.want {
				assert.Equal(t, tt.want[i], got[i], "row %d", i)
			}
		})
	}
}

func TestRowPredicates(t *testing.T) {
	allGreen := Row{TileGreen, TileGreen, TileGreen, TileGreen, TileGreen}
	allGray := Row{TileGray, TileGray, TileGray, TileGray, TileGray}
	mixed := Row{TileGreen, TileGray, TileYellow, TileGray, TileGreen}

	assert.True(t, allGreen.AllGreen())
	assert.False(t, allGreen.AllGray())
	assert.True(t, allGray.AllGray())
	assert.False(t, allGray.AllGreen())
	assert.False(t, mixed.AllGreen())
	assert.False(t, mixed.AllGray())
}
