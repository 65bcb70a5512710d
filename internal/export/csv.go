// Package export renders user records to downloadable formats.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/chybatronik/goAdminPanel/internal/models"
)

// csvHeader is the column order for exported files.
var csvHeader = []string{"id", "name", "email", "role", "status", "dateJoined"}

// WriteCSV writes the records as CSV with a header row.
func WriteCSV(w io.Writer, users []models.User) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, u := range users {
		record := []string{
			strconv.Itoa(u.ID),
			u.Name,
			u.Email,
			string(u.Role),
			string(u.Status),
			u.DateJoined.UTC().Format(time.RFC3339),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row for user %d: %w", u.ID, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// SaveCSV writes the records to a CSV file at path.
func SaveCSV(path string, users []models.User) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}

	if err := WriteCSV(f, users); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
