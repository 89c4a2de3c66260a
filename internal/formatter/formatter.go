// package formatter renders a listing page as a terminal table, JSON, CSV, Markdown or plain text
package formatter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/desertthunder/wgx/internal/catalog"
	"github.com/desertthunder/wgx/internal/models"
	"github.com/desertthunder/wgx/internal/shared"
)

// Format names an output format of the packages command.
type Format string

const (
	FormatTable    Format = "table"
	FormatJSON     Format = "json"
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "md"
	FormatText     Format = "text"
)

// Formats lists the accepted formats.
var Formats = []Format{FormatTable, FormatJSON, FormatCSV, FormatMarkdown, FormatText}

// ParseFormat validates s. "markdown" is accepted as an alias of "md".
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if f == "markdown" {
		return FormatMarkdown, nil
	}
	for _, v := range Formats {
		if f == v {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: unknown format %q", shared.ErrInvalidFlag, s)
}

var headers = []string{"#", "Name", "Publisher", "ID", "Version"}

func rows(page *catalog.Page) [][]string {
	out := make([][]string, len(page.Packages))
	for i, p := range page.Packages {
		out[i] = []string{
			strconv.Itoa(page.RowNumber(i)),
			p.DisplayName(),
			p.DisplayPublisher(),
			p.DisplayID(),
			p.DisplayVersion(),
		}
	}
	return out
}

// Export renders page in format f.
func Export(page *catalog.Page, f Format) ([]byte, error) {
	switch f {
	case FormatTable:
		return ExportToTable(page)
	case FormatJSON:
		return ExportToJSON(page)
	case FormatCSV:
		return ExportToCSV(page)
	case FormatMarkdown:
		return ExportToMarkdown(page)
	case FormatText:
		return ExportToText(page)
	default:
		return nil, fmt.Errorf("%w: unknown format %q", shared.ErrInvalidFlag, f)
	}
}

// WriteExport renders page in format f into the file at path.
func WriteExport(page *catalog.Page, f Format, path string) error {
	data, err := Export(page, f)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
)

// ExportToTable draws a bordered terminal table followed by the status line.
//
// A failed page renders its diagnostic instead of a table.
func ExportToTable(page *catalog.Page) ([]byte, error) {
	var buf bytes.Buffer
	writeRefresh(&buf, page)

	if page.Failed() {
		buf.WriteString("Error: " + page.Error + "\n")
		return buf.Bytes(), nil
	}
	if page.Empty() {
		buf.WriteString(page.EmptyNotice() + "\n")
		return buf.Bytes(), nil
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(mutedStyle).
		Headers(headers...).
		Rows(rows(page)...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	buf.WriteString(t.String() + "\n")
	if summary := page.FilterSummary(); summary != "" {
		buf.WriteString(mutedStyle.Render(summary) + "\n")
	}
	buf.WriteString(page.Status() + "\n")
	return buf.Bytes(), nil
}

// pageJSON is the JSON shape of a rendered page.
type pageJSON struct {
	RequestURL  string                 `json:"request_url,omitempty"`
	Packages    []models.Package       `json:"packages"`
	Total       int                    `json:"total"`
	TotalPages  int                    `json:"total_pages"`
	CurrentPage int                    `json:"current_page"`
	Error       string                 `json:"error,omitempty"`
	Refresh     *models.RefreshOutcome `json:"refresh,omitempty"`
}

// ExportToJSON converts a page to indented JSON. Packages is always an array.
func ExportToJSON(page *catalog.Page) ([]byte, error) {
	packages := page.Packages
	if packages == nil {
		packages = []models.Package{}
	}

	data, err := json.MarshalIndent(pageJSON{
		RequestURL:  page.RequestURL,
		Packages:    packages,
		Total:       page.Total,
		TotalPages:  page.TotalPages,
		CurrentPage: page.CurrentPage,
		Error:       page.Error,
		Refresh:     page.Refresh,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return append(data, '\n'), nil
}

// ExportToCSV converts a page to CSV with columns: #, Name, Publisher, ID, Version
func ExportToCSV(page *catalog.Page) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, record := range rows(page) {
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

func escapeMarkdown(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// ExportToMarkdown converts a page to a Markdown table with a heading and status line
func ExportToMarkdown(page *catalog.Page) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString("# Packages\n\n")
	if summary := page.FilterSummary(); summary != "" {
		buf.WriteString(fmt.Sprintf("%s\n\n", summary))
	}
	if page.Refresh != nil {
		buf.WriteString(fmt.Sprintf("> %s\n\n", page.Refresh.Message))
	}

	switch {
	case page.Failed():
		buf.WriteString(fmt.Sprintf("**Error**: %s\n", page.Error))
		return buf.Bytes(), nil
	case page.Empty():
		buf.WriteString(page.EmptyNotice() + "\n")
		return buf.Bytes(), nil
	}

	buf.WriteString("| " + strings.Join(headers, " | ") + " |\n")
	buf.WriteString("|" + strings.Repeat(" --- |", len(headers)) + "\n")
	for _, record := range rows(page) {
		for i := range record {
			record[i] = escapeMarkdown(record[i])
		}
		buf.WriteString("| " + strings.Join(record, " | ") + " |\n")
	}

	buf.WriteString(fmt.Sprintf("\n%s\n", page.Status()))
	return buf.Bytes(), nil
}

// ExportToText converts a page to plain text, one package per line
func ExportToText(page *catalog.Page) ([]byte, error) {
	var buf bytes.Buffer
	writeRefresh(&buf, page)

	if page.Failed() {
		buf.WriteString(fmt.Sprintf("Error: %s\n", page.Error))
		return buf.Bytes(), nil
	}

	buf.WriteString(page.Status() + "\n\n")
	for i, p := range page.Packages {
		buf.WriteString(fmt.Sprintf("%d. %s (%s) %s by %s\n", page.RowNumber(i), p.DisplayName(), p.DisplayID(), p.DisplayVersion(), p.DisplayPublisher()))
	}
	if page.Empty() {
		buf.WriteString(page.EmptyNotice() + "\n")
	}

	return buf.Bytes(), nil
}

func writeRefresh(buf *bytes.Buffer, page *catalog.Page) {
	if page.Refresh == nil {
		return
	}
	mark := "✓"
	if !page.Refresh.Success {
		mark = "✗"
	}
	buf.WriteString(fmt.Sprintf("%s %s\n", mark, page.Refresh.Message))
}
