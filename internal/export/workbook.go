// Package export writes the generated catalog to an Excel workbook:
// one sheet for the library, one per fetched external catalog.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"gamekeeper/internal/games"
	"gamekeeper/internal/pipeline"
)

const (
	gamesSheet        = "Games"
	subscriptionSheet = "Subscription"
	accessSheet       = "Access"
)

var gamesHeader = []string{"Title", "Platform", "Release", "Status", "Length", "Playtime"}

// WriteWorkbook writes the run result to an xlsx file at path. Catalog
// sheets for sources that were not fetched are omitted.
func WriteWorkbook(path string, result *pipeline.Result) error {
	if result == nil {
		return fmt.Errorf("nil result")
	}

	file := excelize.NewFile()
	defer file.Close()

	if err := writeGamesSheet(file, result.Catalog); err != nil {
		return err
	}
	if len(result.Subscription) > 0 {
		if err := writeCatalogSheet(file, subscriptionSheet, result.Subscription); err != nil {
			return err
		}
	}
	if len(result.Access) > 0 {
		if err := writeCatalogSheet(file, accessSheet, result.Access); err != nil {
			return err
		}
	}

	if err := file.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func writeGamesSheet(file *excelize.File, catalog []games.LogicalGame) error {
	// The default sheet becomes the library sheet.
	if err := file.SetSheetName("Sheet1", gamesSheet); err != nil {
		return fmt.Errorf("rename games sheet: %w", err)
	}

	rows := make([][]string, 0, len(catalog)+1)
	rows = append(rows, gamesHeader)
	for _, game := range catalog {
		rows = append(rows, []string{
			game.Title,
			game.PlatformList(),
			game.ReleaseLabel(),
			string(game.Status),
			string(game.Length),
			game.PlaytimeLabel(),
		})
	}
	return writeRows(file, gamesSheet, rows)
}

func writeCatalogSheet(file *excelize.File, sheet string, entries []games.CatalogEntry) error {
	if _, err := file.NewSheet(sheet); err != nil {
		return fmt.Errorf("create sheet %s: %w", sheet, err)
	}

	rows := make([][]string, 0, len(entries)+1)
	rows = append(rows, []string{"Title", "Status"})
	for _, entry := range entries {
		rows = append(rows, []string{entry.Title, entry.Status})
	}
	return writeRows(file, sheet, rows)
}

// writeRows fills a sheet from string rows and sizes every column to
// its widest cell plus one character of slack.
func writeRows(file *excelize.File, sheet string, rows [][]string) error {
	widths := make([]int, len(rows[0]))
	for rowIdx, row := range rows {
		for colIdx, value := range row {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return fmt.Errorf("resolve cell: %w", err)
			}
			if err := file.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("write cell %s!%s: %w", sheet, cell, err)
			}
			if colIdx < len(widths) && len(value) > widths[colIdx] {
				widths[colIdx] = len(value)
			}
		}
	}

	for colIdx, width := range widths {
		name, err := excelize.ColumnNumberToName(colIdx + 1)
		if err != nil {
			return fmt.Errorf("resolve column name: %w", err)
		}
		if err := file.SetColWidth(sheet, name, name, float64(width+1)); err != nil {
			return fmt.Errorf("size column %s!%s: %w", sheet, name, err)
		}
	}
	return nil
}
