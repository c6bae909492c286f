package admin

import (
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/diljithmon170/GK-Group/types"
)

// Row is a record the renderer can read columns from.
type Row interface {
	FieldValue(field string) (interface{}, bool)
}

// Listing is the JSON projection of one page of a table.
type Listing struct {
	Table      string                   `json:"table"`
	Title      string                   `json:"title"`
	Columns    []Column                 `json:"columns"`
	Items      []map[string]interface{} `json:"items"`
	Pagination *types.PageInfo          `json:"pagination"`
}

// Project builds the JSON projection of rows. Every item carries its id plus
// the table's columns.
func Project[R Row](t *Table, rows []R, page *types.PageInfo) Listing {
	items := make([]map[string]interface{}, 0, len(rows))
	for _, r := range rows {
		item := make(map[string]interface{}, len(t.Columns)+1)
		if id, ok := r.FieldValue("id"); ok {
			item["id"] = id
		}
		for _, c := range t.Columns {
			if v, ok := r.FieldValue(c.Field); ok {
				item[c.Field] = v
			}
		}
		items = append(items, item)
	}
	return Listing{
		Table:      t.Name,
		Title:      t.Title,
		Columns:    t.Columns,
		Items:      items,
		Pagination: page,
	}
}

// FormatCell renders a single value the way the HTML listing shows it.
func FormatCell(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case bool:
		if val {
			return "Yes"
		}
		return "No"
	case time.Time:
		if val.IsZero() {
			return ""
		}
		return val.UTC().Format("2006-01-02 15:04")
	case types.InterestArea:
		return val.Label()
	case string:
		return val
	default:
		return fmt.Sprint(val)
	}
}

type htmlRow struct {
	ID    string
	Cells []string
}

type htmlPage struct {
	Table      *Table
	Rows       []htmlRow
	Query      Query
	Pagination *types.PageInfo
	PrevLink   string
	NextLink   string
}

// RenderHTML writes a self contained HTML page listing rows for the table.
func RenderHTML[R Row](w io.Writer, t *Table, rows []R, q Query, page *types.PageInfo) error {
	data := htmlPage{Table: t, Query: q, Pagination: page}
	for _, r := range rows {
		hr := htmlRow{}
		if id, ok := r.FieldValue("id"); ok {
			hr.ID = fmt.Sprint(id)
		}
		for _, c := range t.Columns {
			v, _ := r.FieldValue(c.Field)
			hr.Cells = append(hr.Cells, FormatCell(v))
		}
		data.Rows = append(data.Rows, hr)
	}
	if page != nil {
		if page.Page > 1 {
			data.PrevLink = "?format=html&" + q.Encode(page.Page-1)
		}
		if page.HasMore {
			data.NextLink = "?format=html&" + q.Encode(page.Page+1)
		}
	}

	if err := listTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render admin table %s: %w", t.Name, err)
	}
	return nil
}

var listTemplate = template.Must(template.New("admin_list").Parse(listTemplateText))

const listTemplateText = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>{{.Table.Title}} | GK Group admin</title>
    <style>
        body { font-family: sans-serif; margin: 20px; color: #333333; }
        table { border-collapse: collapse; width: 100%; }
        th, td { border-bottom: 1px solid #dddddd; padding: 6px 8px; text-align: left; }
        .filters { margin-bottom: 16px; }
        .filters span { margin-right: 16px; }
    </style>
</head>
<body>
    <h1>{{.Table.Title}}</h1>
    <form class="filters" method="get">
        <input type="hidden" name="format" value="html">
        {{- range .Table.Filters}}
        <span>
            <label>{{.Label}}
                <select name="{{.Field}}">
                    <option value="">All</option>
                    {{- $field := .Field}}
                    {{- range .Options}}
                    <option value="{{.}}"{{if eq (index $.Query.Filters $field) .}} selected{{end}}>{{.}}</option>
                    {{- end}}
                </select>
            </label>
        </span>
        {{- end}}
        {{- if .Table.SearchFields}}
        <input type="search" name="search" value="{{.Query.Search}}" placeholder="Search">
        {{- end}}
        <button type="submit">Filter</button>
    </form>
    <table>
        <thead>
            <tr>
                {{- if .Table.Actions}}<th></th>{{end}}
                {{- range .Table.Columns}}
                <th>{{.Label}}</th>
                {{- end}}
            </tr>
        </thead>
        <tbody>
            {{- range .Rows}}
            <tr>
                {{- if $.Table.Actions}}<td><input type="checkbox" name="ids" value="{{.ID}}"></td>{{end}}
                {{- range .Cells}}
                <td>{{.}}</td>
                {{- end}}
            </tr>
            {{- else}}
            <tr><td colspan="{{len .Table.Columns}}">Nothing to show.</td></tr>
            {{- end}}
        </tbody>
    </table>
    {{- if .Table.Actions}}
    <p>Actions:
        {{- range .Table.Actions}}
        <code title="{{.Label}}">{{.Name}}</code>
        {{- end}}
    </p>
    {{- end}}
    {{- with .Pagination}}
    <p>Page {{.Page}} of {{.TotalPages}} ({{.Total}} total)</p>
    {{- end}}
    {{- if .PrevLink}}<a href="{{.PrevLink}}">Previous</a>{{end}}
    {{- if .NextLink}} <a href="{{.NextLink}}">Next</a>{{end}}
</body>
</html>`
