// export.go renders the full score history as an .xlsx workbook.
// The group's scorekeeping started life in a shared spreadsheet; the
// admin /export command keeps that artifact available for offline
// fiddling without giving anyone database access.
package scores

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

var exportHeader = []interface{}{
	"Date", "Player", "Score", "Wordle #", "Attempts", "Current Streak", "Max Streak",
}

// ExportXLSX writes every parseable row to a single-sheet workbook and
// returns the file bytes plus a timestamped filename.
func (s *Service) ExportXLSX(ctx context.Context) ([]byte, string, error) {
	history, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Scores"
	f.SetSheetName(f.GetSheetName(0), sheet)

	if err := f.SetSheetRow(sheet, "A1", &exportHeader); err != nil {
		return nil, "", fmt.Errorf("failed to write export header: %w", err)
	}

	for i, rec := range history {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, "", fmt.Errorf("failed to address export row: %w", err)
		}
		row := []interface{}{
			rec.Day.String(), rec.Player, rec.Score, rec.PuzzleNumber,
			rec.Attempts.String(), rec.CurrentStreak, rec.MaxStreak,
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, "", fmt.Errorf("failed to write export row %d: %w", i+2, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to serialize export workbook: %w", err)
	}

	name := fmt.Sprintf("wordle-scores-%s.xlsx", time.Now().In(s.loc).Format("2006-01-02"))
	return buf.Bytes(), name, nil
}
