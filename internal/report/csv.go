package report

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/pkg/errors"

	"github.com/memtrack/memtrack/internal/model"
)

// WriteCSV exports one memory value (KB) per line in sample order, with no
// header. The elapsed-time column is deliberately absent: that is the export
// format existing consumers already parse. A write failure is a hard error
// for the run.
func WriteCSV(samples []model.Sample, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create csv file %s", path)
	}

	w := csv.NewWriter(f)
	for _, s := range samples {
		if err := w.Write([]string{strconv.FormatUint(s.MemoryKB, 10)}); err != nil {
			f.Close()
			return errors.Wrapf(err, "write csv file %s", path)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return errors.Wrapf(err, "flush csv file %s", path)
	}

	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "close csv file %s", path)
	}
	return nil
}
