// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collate

import (
	"io"

	"github.com/google/safehtml/template"
)

var htmlTemplate = template.Must(template.New("").Parse(`
<table class='hjreport'>
<thead>
<tr><th>test_name{{range .Algorithms}}<th>{{.}}{{end}}<th>results
</thead>
<tbody>
{{range .Rows -}}
{{if .Mismatch}}<tr class='mismatch'>{{else}}<tr>{{end}}<td>{{.Name}}{{range .Cells}}<td>{{.}}{{end}}<td>{{.Result}}
{{end -}}
</tbody>
{{- with .Summary}}
<tfoot>
<tr><td>{{.Name}}{{range .Cells}}<td>{{.}}{{end}}<td>
</tfoot>
{{- end}}
</table>
`))

type htmlRow struct {
	Name     string
	Cells    []string
	Result   string
	Mismatch bool
}

// ToHTML writes t as an HTML table. The output is a fragment; the
// caller supplies the surrounding document.
func (t *Table) ToHTML(w io.Writer) error {
	data := struct {
		Algorithms []string
		Rows       []htmlRow
		Summary    *htmlRow
	}{Algorithms: t.Algorithms}
	for _, row := range t.Rows {
		data.Rows = append(data.Rows, htmlRow{row.Name, t.cells(row), row.Result, row.Mismatch})
	}
	if t.Summary != nil {
		data.Summary = &htmlRow{Name: t.SummaryLabel, Cells: t.cells(t.Summary)}
	}
	return htmlTemplate.Execute(w, data)
}
