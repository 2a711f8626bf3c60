// Package csvfeed reads event lists from spreadsheet exports. Every row holds
// four unnamed columns: location, event name, start and end.
package csvfeed

import (
	"encoding/csv"
	"errors"
	"fmt"
	"hash/adler32"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"infopage/internal/domains/event/model/dto"
	"infopage/shared/constant"
	"infopage/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

const (
	columns = 4

	extXLSX = ".xlsx"
)

// Namespace derives event ids from event names, so that re-reading a file
// yields the same ids.
var Namespace = uuid.MustParse("6ba7b810-9dad-11d1-80b4-cccccccccccc")

var errShortRow = errors.New("expected location, event, start and end columns")

// Read parses the file at path. Files ending in .xlsx are read from their
// first sheet, anything else as comma separated text.
func Read(path string) ([]dto.ImportEvent, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	if strings.EqualFold(filepath.Ext(path), extXLSX) {
		return ParseXLSX(file)
	}

	return Parse(file)
}

// Parse reads comma separated rows without a header.
func Parse(r io.Reader) ([]dto.ImportEvent, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	var events []dto.ImportEvent

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("failed to read csv: %w", err)
		}

		line, _ := reader.FieldPos(0)

		event, ok, err := parseRow(record, parseTime)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		if ok {
			events = append(events, event)
		}
	}

	return events, nil
}

// ParseXLSX reads the rows of the first sheet of a workbook. Date cells may be
// text in the csv layout or spreadsheet dates.
func ParseXLSX(r io.Reader) ([]dto.ImportEvent, error) {
	book, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse workbook: %w", err)
	}
	defer book.Close()

	rows, err := book.GetRows(book.GetSheetName(0), excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet: %w", err)
	}

	var events []dto.ImportEvent

	for i, row := range rows {
		event, ok, err := parseRow(row, parseCellTime)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}

		if ok {
			events = append(events, event)
		}
	}

	return events, nil
}

// parseRow converts one record, reading the dates with parse. Rows without a
// location or an event name are skipped.
func parseRow(record []string, parse func(string) (time.Time, error)) (dto.ImportEvent, bool, error) {
	field := func(i int) string {
		if i < len(record) {
			return record[i]
		}

		return ""
	}

	location, name := field(0), field(1)
	if location == "" || name == "" {
		return dto.ImportEvent{}, false, nil
	}

	if len(record) < columns {
		return dto.ImportEvent{}, false, errShortRow
	}

	start, err := parse(record[2])
	if err != nil {
		return dto.ImportEvent{}, false, fmt.Errorf("invalid start: %w", err)
	}

	end, err := parse(record[3])
	if err != nil {
		return dto.ImportEvent{}, false, fmt.Errorf("invalid end: %w", err)
	}

	event := dto.ImportEvent{
		ID:      uuid.NewSHA1(Namespace, []byte(name)),
		Name:    name,
		VenueID: int64(adler32.Checksum([]byte(location))),
		Venue:   location,
		Active:  true,
		Start:   start,
		End:     end,
	}

	log.Debug().Str("id", event.ID.String()).Str("venue", location).Str("name", name).Time("start", start).Msg("read event")

	return event, true, nil
}

func parseTime(value string) (time.Time, error) {
	return timezone.Parse(constant.DateFormat, value) //nolint:wrapcheck
}

// parseCellTime also accepts spreadsheet dates, which arrive as serial day
// numbers.
func parseCellTime(value string) (time.Time, error) {
	parsed, err := parseTime(value)
	if err == nil {
		return parsed, nil
	}

	if serial, serialErr := strconv.ParseFloat(value, 64); serialErr == nil {
		wall, convErr := excelize.ExcelDateToTime(serial, false)
		if convErr == nil {
			return timezone.FromWall(wall.Round(time.Minute)), nil
		}
	}

	return time.Time{}, err
}
