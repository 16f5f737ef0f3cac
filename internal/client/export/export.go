// Package export writes recipe lists to spreadsheet files.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/recipeshare/internal/client/models"
	"github.com/dmitrijs2005/recipeshare/internal/filex"
	"github.com/xuri/excelize/v2"
)

const SheetName = "Recipes"

var ErrUnsupportedFormat = errors.New("unsupported export format, use .xlsx or .csv")

var header = []string{"ID", "Title", "Description", "Ingredients", "Instructions", "Creator", "Likes", "Image"}

// Write stores recipes at path. The format follows the extension.
func Write(path string, recipes []models.Recipe, baseURL string) error {
	var write func(string, []models.Recipe, string) error
	switch {
	case filex.HasExt(path, ".xlsx"):
		write = writeXLSX
	case filex.HasExt(path, ".csv"):
		write = writeCSV
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}

	if _, err := filex.EnsureParentDir(path); err != nil {
		return err
	}
	return write(path, recipes, baseURL)
}

func row(r models.Recipe, baseURL string) []string {
	return []string{
		strconv.FormatInt(r.ID, 10),
		r.Title,
		r.Description,
		strings.Join(r.Ingredients, ", "),
		r.Instructions,
		r.CreatorEmail,
		strconv.Itoa(r.Likes),
		r.ImageURL(baseURL),
	}
}

func writeCSV(path string, recipes []models.Recipe, baseURL string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	for _, r := range recipes {
		if err := w.Write(row(r, baseURL)); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}

func writeXLSX(path string, recipes []models.Recipe, baseURL string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return err
	}
	sw, err := f.NewStreamWriter(SheetName)
	if err != nil {
		return err
	}

	if err := sw.SetRow("A1", cells(header)); err != nil {
		return err
	}
	for i, r := range recipes {
		values := cells(row(r, baseURL))
		// numeric columns stay numeric in the sheet
		values[0] = r.ID
		values[6] = r.Likes

		addr, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(addr, values); err != nil {
			return err
		}
	}
	if err := sw.Flush(); err != nil {
		return err
	}
	return f.SaveAs(path)
}

func cells(in []string) []any {
	out := make([]any, len(in))
	for i, s := range in {
		out[i] = s
	}
	return out
}
