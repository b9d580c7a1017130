package csvout

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/Veraticus/ecomforge/internal/common"
	"github.com/Veraticus/ecomforge/internal/model"
)

// Options controls chunking and progress reporting for a write.
type Options struct {
	// OnRows, if set, is called after each chunk with the total rows
	// written so far.
	OnRows func(written int)
	// ChunkSize is the number of rows between flushes and progress
	// callbacks. Chunking never changes the output bytes.
	ChunkSize int
}

// Write serializes the dataset to path: one header line, then one line per
// row in transaction_id order. The file appears atomically — rows go to a
// temporary file in the target directory which is renamed onto path only
// after a successful flush, so no partial file is ever visible.
func Write(path string, cols *model.Columns, opts Options) (int64, error) {
	if cols.TotalCents == nil {
		return 0, fmt.Errorf("%w: totals not derived before write", common.ErrWriteFailed)
	}
	chunk := opts.ChunkSize
	if chunk <= 0 {
		chunk = 100_000
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return 0, fmt.Errorf("%w: creating temporary file in %s: %v", common.ErrWriteFailed, dir, err)
	}
	tmpName := tmp.Name()
	renamed := false
	defer func() {
		if !renamed {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	bw := bufio.NewWriterSize(tmp, 1<<20)
	w := csv.NewWriter(bw)

	if err := w.Write(model.FieldNames); err != nil {
		return 0, fmt.Errorf("%w: writing header: %v", common.ErrWriteFailed, err)
	}

	// Only a handful of distinct dates exist; format each offset once.
	dates := dateTable(cols)

	record := make([]string, len(model.FieldNames))
	var money []byte
	n := cols.Len()
	for i := 0; i < n; i++ {
		record[0] = strconv.FormatInt(cols.TransactionID[i], 10)
		record[1] = strconv.FormatInt(cols.CustomerID[i], 10)
		record[2] = cols.Category[i]
		money = AppendCents(money[:0], cols.PriceCents[i])
		record[3] = string(money)
		record[4] = strconv.FormatInt(cols.Quantity[i], 10)
		record[5] = dates[cols.DayOffset[i]]
		record[6] = cols.PaymentMethod[i]
		record[7] = cols.Country[i]
		money = AppendCents(money[:0], cols.TotalCents[i])
		record[8] = string(money)

		if err := w.Write(record); err != nil {
			return 0, fmt.Errorf("%w: writing row %d: %v", common.ErrWriteFailed, i+1, err)
		}

		if (i+1)%chunk == 0 {
			w.Flush()
			if err := w.Error(); err != nil {
				return 0, fmt.Errorf("%w: flushing rows: %v", common.ErrWriteFailed, err)
			}
			if opts.OnRows != nil {
				opts.OnRows(i + 1)
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return 0, fmt.Errorf("%w: flushing rows: %v", common.ErrWriteFailed, err)
	}
	if err := bw.Flush(); err != nil {
		return 0, fmt.Errorf("%w: flushing buffer: %v", common.ErrWriteFailed, err)
	}
	if err := tmp.Close(); err != nil {
		return 0, fmt.Errorf("%w: closing temporary file: %v", common.ErrWriteFailed, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return 0, fmt.Errorf("%w: renaming onto %s: %v", common.ErrWriteFailed, path, err)
	}
	renamed = true

	if opts.OnRows != nil {
		opts.OnRows(n)
	}

	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("%w: stat %s: %v", common.ErrWriteFailed, path, err)
	}
	return info.Size(), nil
}

func dateTable(cols *model.Columns) []string {
	var maxOff int32
	for _, off := range cols.DayOffset {
		if off > maxOff {
			maxOff = off
		}
	}
	table := make([]string, maxOff+1)
	for off := range table {
		table[off] = cols.Start.Add(time.Duration(off) * 24 * time.Hour).Format("2006-01-02")
	}
	return table
}
