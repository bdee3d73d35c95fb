package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// WriteTSV renders rows as tab separated values with a header line.
func WriteTSV(w io.Writer, rows []Row, sel FieldSelection) error {
	if _, err := fmt.Fprintln(w, strings.Join(Headers(sel.Fields), "\t")); err != nil {
		return err
	}
	for _, row := range rows {
		values := RowValues(row, sel.Fields)
		for i := range values {
			values[i] = sanitizeTSV(values[i])
		}
		if _, err := fmt.Fprintln(w, strings.Join(values, "\t")); err != nil {
			return err
		}
	}
	return nil
}

func sanitizeTSV(s string) string {
	return strings.NewReplacer("\t", " ", "\r", " ", "\n", " ").Replace(s)
}

// WriteCSV renders rows as RFC 4180 compliant CSV (including CRLF endings).
func WriteCSV(w io.Writer, rows []Row, sel FieldSelection) error {
	writer := csv.NewWriter(w)
	writer.UseCRLF = true
	if err := writer.Write(Headers(sel.Fields)); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writer.Write(RowValues(row, sel.Fields)); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteMarkdownTable renders rows as a GitHub Flavored Markdown table.
func WriteMarkdownTable(w io.Writer, rows []Row, sel FieldSelection) error {
	headers := Headers(sel.Fields)
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(headers, " | ")); err != nil {
		return err
	}
	sep := make([]string, len(headers))
	for i := range sep {
		sep[i] = "---"
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}
	for _, row := range rows {
		values := RowValues(row, sel.Fields)
		for i := range values {
			values[i] = escapeMarkdownCell(values[i])
		}
		if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(values, " | ")); err != nil {
			return err
		}
	}
	return nil
}

func escapeMarkdownCell(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.ReplaceAll(s, "\n", "<br>")
	s = strings.ReplaceAll(s, "|", "\\|")
	return s
}
