package csvout

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Veraticus/ecomforge/internal/common"
	"github.com/Veraticus/ecomforge/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCents(t *testing.T) {
	tests := []struct {
		want  string
		cents int64
	}{
		{want: "0.00", cents: 0},
		{want: "0.05", cents: 5},
		{want: "0.50", cents: 50},
		{want: "5.00", cents: 500},
		{want: "12.34", cents: 1234},
		{want: "499.99", cents: 49999},
		{want: "4499.91", cents: 449991},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCents(tt.cents))
		})
	}
}

func testColumns() *model.Columns {
	start := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
	cols := model.NewColumns(2, start)
	cols.TransactionID = []int64{1, 2}
	cols.CustomerID = []int64{1500, 49000}
	cols.Category = []string{"Books", "Home"}
	cols.PriceCents = []int64{999, 50000}
	cols.Quantity = []int64{3, 1}
	cols.DayOffset = []int32{0, 729}
	cols.PaymentMethod = []string{"Cash", "PayPal"}
	cols.Country = []string{"Germany", "Austria"}
	cols.TotalCents = []int64{2997, 50000}
	return cols
}

func TestWriteProducesExpectedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	size, err := Write(path, testColumns(), Options{})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, size, int64(len(data)))

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, strings.Join(model.FieldNames, ","), lines[0])
	assert.Equal(t, "1,1500,Books,9.99,3,2022-01-01,Cash,Germany,29.97", lines[1])
	assert.Equal(t, "2,49000,Home,500.00,1,2023-12-31,PayPal,Austria,500.00", lines[2])
}

func TestWriteOverwritesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o600))

	_, err := Write(path, testColumns(), Options{})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "stale")
}

func TestWriteMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "out.csv")

	_, err := Write(path, testColumns(), Options{})

	assert.ErrorIs(t, err, common.ErrWriteFailed)
	assert.NoFileExists(t, path)
}

func TestWriteLeavesNoTemporaryFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.csv")

	_, err := Write(path, testColumns(), Options{})
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "out.csv", entries[0].Name())
}

func TestWriteRequiresDerivedTotals(t *testing.T) {
	cols := testColumns()
	cols.TotalCents = nil
	path := filepath.Join(t.TempDir(), "out.csv")

	_, err := Write(path, cols, Options{})

	assert.ErrorIs(t, err, common.ErrWriteFailed)
	assert.NoFileExists(t, path)
}

func TestWriteProgressCallback(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	var reported []int
	_, err := Write(path, testColumns(), Options{
		ChunkSize: 1,
		OnRows:    func(written int) { reported = append(reported, written) },
	})
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 2}, reported)
}
