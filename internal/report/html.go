// Package report writes check results as an HTML page or as JSON.
package report

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/JonMunkholm/culturize/internal/core"
	"github.com/a-h/templ"
)

// Column headings of the report table, in cell order.
var headings = []string{"Row", "Enabled", "Document type", "PID", "URL", "Affected cells", "Check"}

const pageStyle = `body{font-family:sans-serif;margin:2em}
table{border-collapse:collapse}
td,th{border:1px solid #ccc;padding:4px 8px;text-align:left}
tr.invalid{background:#fff4f4}
td.error{color:#b00020;font-weight:bold}
td.check{text-align:center}
.summary span{margin-right:1.5em}`

// Write renders result in format, which is "html" or "json" in any case.
func Write(ctx context.Context, w io.Writer, format, title string, result *core.RunResult) error {
	switch strings.ToLower(format) {
	case "html":
		return WriteHTML(ctx, w, title, result)
	case "json":
		return WriteJSON(w, result)
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}

// WriteHTML renders result as a standalone HTML page.
func WriteHTML(ctx context.Context, w io.Writer, title string, result *core.RunResult) error {
	return Page(title, result).Render(ctx, w)
}

// Page renders the whole report document.
func Page(title string, result *core.RunResult) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			"<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n<meta charset=\"utf-8\">\n<title>%s</title>\n<style>%s</style>\n</head>\n<body>\n<h1>%s</h1>\n",
			templ.EscapeString(title), pageStyle, templ.EscapeString(title),
		); err != nil {
			return err
		}

		if err := Summary(result).Render(ctx, w); err != nil {
			return err
		}

		if _, err := io.WriteString(w, "<table>\n<thead><tr>"); err != nil {
			return err
		}
		for _, h := range headings {
			if _, err := io.WriteString(w, "<th>"+templ.EscapeString(h)+"</th>"); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "</tr></thead>\n<tbody>\n"); err != nil {
			return err
		}

		for _, entry := range result.Entries() {
			if err := TableRow(entry).Render(ctx, w); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, "</tbody>\n</table>\n</body>\n</html>\n")
		return err
	})
}

// Summary renders the run counters above the table.
func Summary(result *core.RunResult) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		s := result.Summary
		items := []struct {
			label string
			value int
		}{
			{"Rows", s.Total},
			{"Clean", s.Clean},
			{"Flagged", s.Flagged},
			{"Duplicates", s.Duplicates},
			{"Skipped", s.Skipped},
			{"Probed", s.Probed},
			{"Unreachable", s.Unreachable},
			{"Convertible", s.Convertible},
		}

		if _, err := fmt.Fprintf(w, "<p class=\"source\">%s <small>run %s</small></p>\n<p class=\"summary\">",
			templ.EscapeString(result.Source), templ.EscapeString(result.RunID)); err != nil {
			return err
		}
		for _, it := range items {
			if _, err := fmt.Fprintf(w, "<span>%s: %d</span>", it.label, it.value); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</p>\n")
		return err
	})
}

// TableRow renders one report entry as a table row.
func TableRow(e core.ReportEntry) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<tr class="`+e.Class+`"><td>`+strconv.Itoa(e.Index)+`</td>`); err != nil {
			return err
		}
		for _, c := range []core.Cell{e.Enabled, e.DocType, e.PID, e.URL, e.Affected} {
			if _, err := io.WriteString(w, cell(c, "")); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, cell(e.Check, "check")); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</tr>\n")
		return err
	})
}

func cell(c core.Cell, class string) string {
	if c.IsError() {
		if class != "" {
			class += " "
		}
		class += "error"
	}

	out := "<td"
	if class != "" {
		out += ` class="` + class + `"`
	}
	if c.Title != "" {
		out += ` title="` + templ.EscapeString(c.Title) + `"`
	}
	return out + ">" + templ.EscapeString(c.Text) + "</td>"
}
