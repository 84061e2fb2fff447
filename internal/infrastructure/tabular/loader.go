package tabular

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	domain "github.com/mohammadpnp/ticket-user-upload/internal/domain/upload"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

var (
	zipMagic   = []byte{0x50, 0x4B, 0x03, 0x04}
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

type Loader struct{}

func NewLoader() *Loader {
	return &Loader{}
}

// Parse decodes attachment bytes into a table. XLSX workbooks are
// recognized by their zip signature; everything else is treated as
// delimited text. The first row is the header, subsequent rows map
// positionally into it. Unrecognized input fails with
// upload.ErrUnparsableFormat.
func (l *Loader) Parse(data []byte) (domain.Table, error) {
	if len(data) == 0 {
		return domain.Table{}, fmt.Errorf("%w: empty attachment", domain.ErrUnparsableFormat)
	}
	if bytes.HasPrefix(data, zipMagic) {
		return parseXLSX(data)
	}
	return parseCSV(data)
}

func parseCSV(data []byte) (domain.Table, error) {
	decoded, err := decodeToUTF8(data)
	if err != nil {
		return domain.Table{}, fmt.Errorf("%w: %v", domain.ErrUnparsableFormat, err)
	}
	if bytes.ContainsRune(decoded, 0) {
		return domain.Table{}, fmt.Errorf("%w: binary content", domain.ErrUnparsableFormat)
	}

	reader := csv.NewReader(bytes.NewReader(decoded))
	// Mismatched column counts are handled by padding/truncating against
	// the header, and lazy quotes tolerate real-world exports.
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return domain.Table{}, fmt.Errorf("%w: no header row", domain.ErrUnparsableFormat)
	}

	columns := make([]string, len(header))
	for i, name := range header {
		columns[i] = strings.TrimSpace(name)
	}

	table := domain.Table{Columns: columns}
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return domain.Table{}, fmt.Errorf("%w: %v", domain.ErrUnparsableFormat, err)
		}
		table.Rows = append(table.Rows, recordFromRow(columns, row))
	}

	return table, nil
}

func parseXLSX(data []byte) (domain.Table, error) {
	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return domain.Table{}, fmt.Errorf("%w: %v", domain.ErrUnparsableFormat, err)
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return domain.Table{}, fmt.Errorf("%w: workbook has no sheets", domain.ErrUnparsableFormat)
	}

	rows, err := file.GetRows(sheets[0])
	if err != nil {
		return domain.Table{}, fmt.Errorf("%w: %v", domain.ErrUnparsableFormat, err)
	}
	if len(rows) == 0 {
		return domain.Table{}, fmt.Errorf("%w: sheet has no header row", domain.ErrUnparsableFormat)
	}

	columns := make([]string, len(rows[0]))
	for i, name := range rows[0] {
		columns[i] = strings.TrimSpace(name)
	}

	table := domain.Table{Columns: columns}
	for _, row := range rows[1:] {
		table.Rows = append(table.Rows, recordFromRow(columns, row))
	}

	return table, nil
}

// recordFromRow maps a row positionally into the header, padding short
// rows with empty values and dropping extra columns.
func recordFromRow(columns, row []string) domain.Record {
	record := make(domain.Record, len(columns))
	for i, name := range columns {
		value := ""
		if i < len(row) {
			value = row[i]
		}
		record[name] = value
	}
	return record
}

// decodeToUTF8 sniffs a BOM, falls back to Latin-1 for non-UTF-8 bytes,
// and returns UTF-8 text.
func decodeToUTF8(data []byte) ([]byte, error) {
	switch {
	case bytes.HasPrefix(data, bomUTF8):
		return data[3:], nil
	case bytes.HasPrefix(data, bomUTF16LE):
		return unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder().Bytes(data)
	case bytes.HasPrefix(data, bomUTF16BE):
		return unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewDecoder().Bytes(data)
	case utf8.Valid(data):
		return data, nil
	default:
		return charmap.ISO8859_1.NewDecoder().Bytes(data)
	}
}
