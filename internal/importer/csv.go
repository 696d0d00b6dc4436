package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"gorm.io/datatypes"

	"leadtrack/internal/models"
)

// ErrEmptyFile means the upload carried no parsable content at all.
var ErrEmptyFile = errors.New("empty file")

const dateLayout = "2006-01-02"

// Parse reads delimited text with a header row and turns each data row
// into a candidate lead owned by userID.
//
// Policy: best-effort filtering. Rows missing any of name, email or
// phoneNumber are dropped rather than failing the batch; a blank or
// unknown status defaults to New. dateOfCall, lastCallDate (YYYY-MM-DD)
// and notes columns are optional.
func Parse(r io.Reader, userID uint) ([]models.Lead, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // tolerate ragged rows, the column map guards access
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyFile
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\uFEFF")
		}
		cols[strings.TrimSpace(name)] = i
	}

	field := func(row []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var leads []models.Lead
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		name := field(row, "name")
		email := field(row, "email")
		phone := field(row, "phoneNumber")
		if name == "" || email == "" || phone == "" {
			continue
		}

		status := models.LeadStatus(field(row, "status"))
		if !status.Valid() {
			status = models.StatusNew
		}

		leads = append(leads, models.Lead{
			Name:         name,
			Email:        email,
			PhoneNumber:  phone,
			Status:       status,
			DateOfCall:   parseDate(field(row, "dateOfCall")),
			LastCallDate: parseDate(field(row, "lastCallDate")),
			Notes:        field(row, "notes"),
			UserID:       userID,
		})
	}
	return leads, nil
}

func parseDate(s string) *datatypes.Date {
	if s == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil
	}
	d := datatypes.Date(t)
	return &d
}
