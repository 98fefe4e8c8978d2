// scoring.go turns an attempt count and a tile grid into a decimal score.
package scores

// baseScoreByAttempts is the fixed base score table. Index is the number
// of attempts (1–6); a fail earns nothing.
var baseScoreByAttempts = map[Attempts]float64{
	1: 60,
	2: 50,
	3: 40,
	4: 30,
	5: 20,
	6: 10,
}

// rowRule holds the per-row tile values. Earlier rows are worth more:
// information revealed on guess one is better play than the same tiles
// on guess six.
type rowRule struct {
	green         float64 // first green reveal at a position
	yellow        float64 // first yellow reveal at a position
	yellowToGreen float64 // upgrading a previously yellow position to green
	allGreenBonus float64 // whole row green (not awarded on the final guess)
	allGrayPenalty float64 // whole row gray
}

// rowRules is indexed by 0-based row position. Rows beyond the table
// reuse the last entry.
var rowRules = []rowRule{
	{green: 2.5, yellow: 1.2, yellowToGreen: 1.5, allGreenBonus: 10, allGrayPenalty: -1},
	{green: 2.2, yellow: 1.0, yellowToGreen: 1.2, allGreenBonus: 8, allGrayPenalty: -1},
	{green: 1.8, yellow: 0.8, yellowToGreen: 1.0, allGreenBonus: 6, allGrayPenalty: -0.5},
	{green: 1.5, yellow: 0.6, yellowToGreen: 0.8, allGreenBonus: 4, allGrayPenalty: -0.5},
	{green: 1.2, yellow: 0.4, yellowToGreen: 0.5, allGreenBonus: 2, allGrayPenalty: 0},
	{green: 1.0, yellow: 0.2, yellowToGreen: 0.3, allGreenBonus: 0, allGrayPenalty: 0},
}

// ruleForRow returns the value table for a 0-based row index.
func ruleForRow(i int) rowRule {
	if i >= len(rowRules) {
		return rowRules[len(rowRules)-1]
	}
	return rowRules[i]
}

// Score computes the submission score.
//
// A fail short-circuits: the grid is not scored at all and the result is
// exactly 0, doubled or not.
//
// Grid scoring keeps two position-indexed seen sets across rows. A column
// only scores the FIRST reveal of yellow or green — repeating known
// information earns nothing — while upgrading a yellow column to green is
// rewarded once via the transition bonus. Gray tiles never score and
// never unmark earlier reveals.
//
// The all-green row bonus applies only to rows before index 5: in the
// standard six-guess game the final guess is always all green, so it
// never earns the extra.
//
// The double-points multiplier applies to the full total (base + grid).
// The result is an unrounded decimal; round once at format time.
func Score(attempts Attempts, rows []Row, doublePoints bool) float64 {
	if attempts == AttemptsFail {
		return 0
	}

	total := baseScoreByAttempts[attempts]

	var seenGreen, seenYellow [GridWidth]bool
	for i, row := range rows {
		rule := ruleForRow(i)

		for pos, tile := range row {
			switch tile {
			case TileGreen:
				if !seenGreen[pos] {
					total += rule.green
					if seenYellow[pos] {
						total += rule.yellowToGreen
					}
					seenGreen[pos] = true
				}
			case TileYellow:
				if !seenGreen[pos] && !seenYellow[pos] {
					total += rule.yellow
					seenYellow[pos] = true
				}
			}
		}

		if row.AllGreen() && i < 5 {
			total += rule.allGreenBonus
		}
		if row.AllGray() {
			total += rule.allGrayPenalty
		}
	}

	if doublePoints {
		total *= 2
	}
	return total
}
