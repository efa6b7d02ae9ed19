package importer

import (
	"Recipe-Radar-Backend/domain"
	"bytes"
	"encoding/csv"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"
)

// ImportRow is one data row of an upload, addressed by its 1-based position in
// the file (header excluded).
type ImportRow struct {
	RowNum      int
	SourceRef   string
	Title       string
	Ingredients string
}

var requiredColumns = []string{"id", "title", "ingredients"}

// ReadRows decodes and parses an uploaded recipe file. UTF-8 is expected;
// files that fail validation get one EUC-KR decode attempt before being
// rejected. Quoted fields are honored, so commas inside a quoted ingredient
// cell survive intact.
func ReadRows(r io.Reader) ([]ImportRow, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})

	if !utf8.Valid(data) {
		// The decoder substitutes U+FFFD for bytes it cannot map, so its
		// presence means the file was not EUC-KR either.
		decoded, _, decErr := transform.Bytes(korean.EUCKR.NewDecoder(), data)
		if decErr != nil || bytes.ContainsRune(decoded, utf8.RuneError) {
			return nil, domain.ErrUnreadableEncoding
		}
		data = decoded
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, domain.ErrMalformedImportFile
	}
	if len(records) == 0 {
		return nil, domain.ErrEmptyImportFile
	}

	columns, err := headerIndex(records[0])
	if err != nil {
		return nil, err
	}

	var rows []ImportRow
	for i, record := range records[1:] {
		if isBlank(record) {
			continue
		}
		rows = append(rows, ImportRow{
			RowNum:      i + 1,
			SourceRef:   field(record, columns["id"]),
			Title:       field(record, columns["title"]),
			Ingredients: field(record, columns["ingredients"]),
		})
	}

	if len(rows) == 0 {
		return nil, domain.ErrEmptyImportFile
	}

	return rows, nil
}

func headerIndex(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range requiredColumns {
		if _, ok := columns[required]; !ok {
			return nil, domain.ErrMissingRequiredColumn
		}
	}
	return columns, nil
}

func field(record []string, index int) string {
	if index >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[index])
}

func isBlank(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
