package scores

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	greenRow  = Row{TileGreen, TileGreen, TileGreen, TileGreen, TileGreen}
	grayRow   = Row{TileGray, TileGray, TileGray, TileGray, TileGray}
	yellowRow = Row{TileYellow, TileYellow, TileYellow, TileYellow, TileYellow}
)

func TestScoreBaseTable(t *testing.T) {
	// No grid: base only.
	assert.InDelta(t, 60, Score(1, nil, false), 1e-9)
	assert.InDelta(t, 50, Score(2, nil, false), 1e-9)
	assert.InDelta(t, 40, Score(3, nil, false), 1e-9)
	assert.InDelta(t, 30, Score(4, nil, false), 1e-9)
	assert.InDelta(t, 20, Score(5, nil, false), 1e-9)
	assert.InDelta(t, 10, Score(6, nil, false), 1e-9)
	assert.InDelta(t, 0, Score(AttemptsFail, nil, false), 1e-9)
}

func TestScoreSolvedInThreeWithGreenOpener(t *testing.T) {
	// base(3)=40 + row0 all-green bonus 10 + 5 greens at 2.5 = 62.5
	got := Score(3, []Row{greenRow}, false)
	assert.InDelta(t, 62.5, got, 1e-9)
}

func TestScoreAllGrayGrid(t *testing.T) {
	// base(6)=10, penalties -1 -1 -0.5 -0.5 0 0 = 7.0
	rows := []Row{grayRow, grayRow, grayRow, grayRow, grayRow, grayRow}
	got := Score(6, rows, false)
	assert.InDelta(t, 7.0, got, 1e-9)
}

func TestScoreFailShortCircuitsGrid(t *testing.T) {
	// A fail scores 0 flat no matter what the grid holds, doubled or not.
	rows := []Row{greenRow, yellowRow, grayRow}
	assert.InDelta(t, 0, Score(AttemptsFail, rows, false), 1e-9)
	assert.InDelta(t, 0, Score(AttemptsFail, rows, true), 1e-9)
}

func TestScoreDoublePoints(t *testing.T) {
	plain := Score(3, []Row{greenRow}, false)
	doubled := Score(3, []Row{greenRow}, true)
	assert.InDelta(t, 2*plain, doubled, 1e-9)
}

func TestScoreFirstRevealOnly(t *testing.T) {
	// One green at position 0 on row 0; repeating it later must add nothing.
	oneGreen := Row{TileGreen, TileGray, TileGray, TileGray, TileGray}

	base := Score(4, []Row{oneGreen, grayRow}, false)
	repeated := Score(4, []Row{oneGreen, oneGreen}, false)

	// The second grid swaps an all-gray row (penalty -1) for a repeat row
	// (no penalty, no new reveal), so it scores exactly the penalty back.
	assert.InDelta(t, base+1.0, repeated, 1e-9)

	// Appending a pure repeat of an already-revealed position changes nothing.
	appended := Score(4, []Row{oneGreen, grayRow, oneGreen}, false)
	assert.InDelta(t, base, appended, 1e-9)
}

func TestScoreYellowRepeatsDoNotStack(t *testing.T) {
	oneYellow := Row{TileYellow, TileGray, TileGray, TileGray, TileGray}
	single := Score(4, []Row{oneYellow}, false)
	repeated := Score(4, []Row{oneYellow, oneYellow}, false)
	assert.InDelta(t, single, repeated, 1e-9)
}

func TestScoreYellowToGreenTransition(t *testing.T) {
	yellowAt0 := Row{TileYellow, TileGray, TileGray, TileGray, TileGray}
	greenAt0 := Row{TileGreen, TileGray, TileGray, TileGray, TileGray}

	// Row 0 yellow: 1.2. Row 1 green upgrade: 2.2 + transition 1.2.
	got := Score(2, []Row{yellowAt0, greenAt0}, false)
	assert.InDelta(t, 50+1.2+2.2+1.2, got, 1e-9)

	// Green straight away never pays the transition.
	direct := Score(2, []Row{greenAt0, greenAt0}, false)
	assert.InDelta(t, 50+2.5, direct, 1e-9)
}

func TestScoreAllGreenBonusOnlyBeforeFinalRowIndex(t *testing.T) {
	// An all-green row at index 5 earns no full-row bonus: in a six-guess
	// game the last guess is always all green.
	rows := []Row{grayRow, grayRow, grayRow, grayRow, grayRow, greenRow}
	// base(6)=10, penalties -1-1-0.5-0.5+0 = -3, greens 5×1.0 = 5
	got := Score(6, rows, false)
	assert.InDelta(t, 10-3+5, got, 1e-9)
}

func TestScoreRowsBeyondTableReuseLastRule(t *testing.T) {
	// Seven all-gray rows: the seventh uses row 5's zero penalty.
	rows := []Row{grayRow, grayRow, grayRow, grayRow, grayRow, grayRow, grayRow}
	got := Score(6, rows, false)
	assert.InDelta(t, 7.0, got, 1e-9)
}

func TestScoreDeterministic(t *testing.T) {
	rows := []Row{yellowRow, {TileGreen, TileYellow, TileGray, TileGreen, TileYellow}, greenRow}
	first := Score(2, rows, true)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Score(2, rows, true))
	}
}
