package importer

import (
	"Recipe-Radar-Backend/domain"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"
)

func TestReadRowsParsesUTF8(t *testing.T) {
	file := strings.NewReader(
		"id,title,ingredients\n" +
			"101,김치찌개,[재료] 김치 300g | 돼지고기 200g [양념] 고춧가루 1큰술\n" +
			"102,계란말이,계란 3개 | 대파 1대\n")

	rows, err := ReadRows(file)

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 1, rows[0].RowNum)
	assert.Equal(t, "101", rows[0].SourceRef)
	assert.Equal(t, "김치찌개", rows[0].Title)
	assert.Contains(t, rows[0].Ingredients, "[양념]")
}

func TestReadRowsRespectsQuotedCommas(t *testing.T) {
	file := strings.NewReader(
		"id,title,ingredients\n" +
			`103,잡채,"당면 200g, 시금치 한줌"` + "\n")

	rows, err := ReadRows(file)

	require.NoError(t, err)
	require.Len(t, rows, 1)
	// The quoted cell arrives whole; splitting on commas happens later.
	assert.Equal(t, "당면 200g, 시금치 한줌", rows[0].Ingredients)
}

func TestReadRowsColumnOrderIndependent(t *testing.T) {
	file := strings.NewReader(
		"Title,Ingredients,ID\n" +
			"된장찌개,두부 반모,7\n")

	rows, err := ReadRows(file)

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "7", rows[0].SourceRef)
	assert.Equal(t, "된장찌개", rows[0].Title)
}

func TestReadRowsEUCKRFallback(t *testing.T) {
	utf8CSV := "id,title,ingredients\n1,김치찌개,김치 300g\n"
	encoded, _, err := transform.Bytes(korean.EUCKR.NewEncoder(), []byte(utf8CSV))
	require.NoError(t, err)

	rows, err := ReadRows(bytes.NewReader(encoded))

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "김치찌개", rows[0].Title)
}

func TestReadRowsStripsBOM(t *testing.T) {
	file := bytes.NewReader(append([]byte{0xEF, 0xBB, 0xBF},
		[]byte("id,title,ingredients\n1,국수,소면 100g\n")...))

	rows, err := ReadRows(file)

	require.NoError(t, err)
	require.Len(t, rows, 1)
}

func TestReadRowsMissingColumn(t *testing.T) {
	file := strings.NewReader("id,name\n1,김치찌개\n")

	_, err := ReadRows(file)

	assert.ErrorIs(t, err, domain.ErrMissingRequiredColumn)
}

func TestReadRowsEmptyFile(t *testing.T) {
	_, err := ReadRows(strings.NewReader(""))
	assert.ErrorIs(t, err, domain.ErrEmptyImportFile)

	_, err = ReadRows(strings.NewReader("id,title,ingredients\n"))
	assert.ErrorIs(t, err, domain.ErrEmptyImportFile)
}

func TestReadRowsSkipsBlankRows(t *testing.T) {
	file := strings.NewReader(
		"id,title,ingredients\n" +
			"1,김치찌개,김치 300g\n" +
			",,\n" +
			"2,된장찌개,두부 반모\n")

	rows, err := ReadRows(file)

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2", rows[1].SourceRef)
}

func TestReadRowsMalformedCSV(t *testing.T) {
	// An unclosed quote is a structural problem, not an encoding one.
	file := strings.NewReader(
		"id,title,ingredients\n" +
			`1,"김치찌개,김치 300g` + "\n" +
			"2,된장찌개,두부 반모\n")

	_, err := ReadRows(file)

	assert.ErrorIs(t, err, domain.ErrMalformedImportFile)
}

func TestReadRowsRejectsUndecodableBytes(t *testing.T) {
	// Valid in neither UTF-8 nor EUC-KR.
	garbage := []byte{0xff, 0xff, 0x80, 0x81, 0xfe, 0xff}

	_, err := ReadRows(bytes.NewReader(garbage))

	assert.ErrorIs(t, err, domain.ErrUnreadableEncoding)
}
