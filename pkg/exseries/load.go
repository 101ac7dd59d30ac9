package exseries

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ukaji3/exseries-go/pkg/exseries/models"
	"github.com/ukaji3/exseries-go/pkg/exseries/parser"
	"github.com/xuri/excelize/v2"
)

// Load reads the configured sheet of an Excel file into a Table.
func Load(path string, opts Options) (*models.Table, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFormat, path, err)
	}
	defer f.Close()

	table, err := parser.ReadTable(f, filepath.Base(path), opts.loadOptions())
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return table, nil
}
