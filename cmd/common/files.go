package common

import (
	"fmt"
	"path/filepath"
	"time"

	"ssshep/expensepro/internal/fileutils"
	"ssshep/expensepro/internal/models"
)

// MaxBillSize bounds bill files read from disk.
const MaxBillSize = 20 << 20

// ReadBill loads a bill image or document from path.
func ReadBill(path string) (models.Bill, error) {
	data, err := fileutils.ReadFile(path)
	if err != nil {
		return models.Bill{}, err
	}
	if len(data) == 0 {
		return models.Bill{}, fmt.Errorf("bill file %s is empty", path)
	}
	if len(data) > MaxBillSize {
		return models.Bill{}, fmt.Errorf("bill file %s exceeds %d MB", path, MaxBillSize>>20)
	}
	name := filepath.Base(path)
	return models.NewBill(name, fileutils.DetectMediaType(name, data), data, time.Now()), nil
}
