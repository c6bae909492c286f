// Package admin holds the data driven definitions of the admin review tables
// and a generic renderer that turns stored records into JSON or HTML listings.
package admin

import (
	_ "embed"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/diljithmon170/GK-Group/errors"
	"gopkg.in/yaml.v3"
)

//go:embed tables.yaml
var defaultTables []byte

// FilterType selects how a filter value is parsed.
type FilterType string

const (
	FilterBoolean FilterType = "boolean"
	FilterChoice  FilterType = "choice"
	FilterDate    FilterType = "date"
)

// Date filter presets, relative to the time of the request.
const (
	DateToday     = "today"
	DatePast7Days = "past_7_days"
	DateThisMonth = "this_month"
	DateThisYear  = "this_year"
)

var datePresets = []string{DateToday, DatePast7Days, DateThisMonth, DateThisYear}

// Column is one displayed column of a table.
type Column struct {
	Field string `yaml:"field" json:"field"`
	Label string `yaml:"label" json:"label"`
}

// Filter is one filter offered for a table.
type Filter struct {
	Field   string     `yaml:"field" json:"field"`
	Label   string     `yaml:"label" json:"label"`
	Type    FilterType `yaml:"type" json:"type"`
	Choices []string   `yaml:"choices,omitempty" json:"choices,omitempty"`
}

// Options returns the values an operator may pick for the filter.
func (f Filter) Options() []string {
	switch f.Type {
	case FilterBoolean:
		return []string{"true", "false"}
	case FilterDate:
		return datePresets
	default:
		return f.Choices
	}
}

// Action is a bulk action available on a table.
type Action struct {
	Name  string `yaml:"name" json:"name"`
	Label string `yaml:"label" json:"label"`
}

// Table describes one admin listing.
type Table struct {
	Name         string   `yaml:"name" json:"name"`
	Title        string   `yaml:"title" json:"title"`
	PageSize     int      `yaml:"page_size" json:"page_size"`
	Columns      []Column `yaml:"columns" json:"columns"`
	Filters      []Filter `yaml:"filters" json:"filters"`
	SearchFields []string `yaml:"search_fields" json:"search_fields"`
	Actions      []Action `yaml:"actions,omitempty" json:"actions,omitempty"`
}

// HasAction reports whether name is an allowed bulk action for the table.
func (t *Table) HasAction(name string) bool {
	for _, a := range t.Actions {
		if a.Name == name {
			return true
		}
	}
	return false
}

// Registry is the set of table definitions known to the admin surface.
type Registry struct {
	tables []*Table
	byName map[string]*Table
}

type document struct {
	Tables []*Table `yaml:"tables"`
}

// LoadRegistry parses the table definitions compiled into the binary.
func LoadRegistry() (*Registry, error) {
	return ParseRegistry(defaultTables)
}

// ParseRegistry parses and checks a YAML document of table definitions.
func ParseRegistry(data []byte) (*Registry, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse admin tables: %w", err)
	}
	if len(doc.Tables) == 0 {
		return nil, fmt.Errorf("no admin tables defined")
	}

	reg := &Registry{byName: make(map[string]*Table, len(doc.Tables))}
	for _, t := range doc.Tables {
		if err := checkTable(t); err != nil {
			return nil, err
		}
		if _, dup := reg.byName[t.Name]; dup {
			return nil, fmt.Errorf("admin table %q defined twice", t.Name)
		}
		reg.byName[t.Name] = t
		reg.tables = append(reg.tables, t)
	}
	return reg, nil
}

func checkTable(t *Table) error {
	if t.Name == "" {
		return fmt.Errorf("admin table without a name")
	}
	if t.PageSize <= 0 {
		return fmt.Errorf("admin table %q: page_size must be positive", t.Name)
	}
	if len(t.Columns) == 0 {
		return fmt.Errorf("admin table %q: at least one column is required", t.Name)
	}
	for _, f := range t.Filters {
		switch f.Type {
		case FilterBoolean, FilterDate:
		case FilterChoice:
			if len(f.Choices) == 0 {
				return fmt.Errorf("admin table %q: choice filter %q has no choices", t.Name, f.Field)
			}
		default:
			return fmt.Errorf("admin table %q: filter %q has unknown type %q", t.Name, f.Field, f.Type)
		}
	}
	return nil
}

// Table returns the definition named name.
func (r *Registry) Table(name string) (*Table, bool) {
	t, ok := r.byName[name]
	return t, ok
}

// Tables returns every definition in document order.
func (r *Registry) Tables() []*Table {
	return r.tables
}

// Query is a parsed listing request for one table.
type Query struct {
	Filters map[string]string
	Search  string
	Page    int
}

// ParseQuery reads filters, search and page from URL query values. Filters
// not defined for the table are ignored; defined filters with unusable
// values are reported per field.
func (t *Table) ParseQuery(values url.Values) (Query, error) {
	q := Query{Filters: map[string]string{}, Page: 1}
	fieldErrs := apperrors.FieldErrors{}

	for _, f := range t.Filters {
		raw := strings.TrimSpace(values.Get(f.Field))
		if raw == "" {
			continue
		}
		if !contains(f.Options(), strings.ToLower(raw)) {
			fieldErrs.Add(f.Field, "invalid choice")
			continue
		}
		q.Filters[f.Field] = strings.ToLower(raw)
	}

	if len(t.SearchFields) > 0 {
		q.Search = strings.TrimSpace(values.Get("search"))
	}

	if raw := values.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			fieldErrs.Add("page", "must be a positive integer")
		} else {
			q.Page = page
		}
	}

	if len(fieldErrs) > 0 {
		return Query{}, apperrors.FieldValidationFailed("Invalid listing parameters", fieldErrs)
	}
	return q, nil
}

// Bool returns the value of a boolean filter, or nil when it is unset.
func (q Query) Bool(field string) *bool {
	raw, ok := q.Filters[field]
	if !ok {
		return nil
	}
	v := raw == "true"
	return &v
}

// String returns the raw value of a filter.
func (q Query) String(field string) string {
	return q.Filters[field]
}

// Since resolves a date filter to the start of its window, or the zero time
// when the filter is unset.
func (q Query) Since(field string, now time.Time) time.Time {
	switch q.Filters[field] {
	case DateToday:
		return startOfDay(now)
	case DatePast7Days:
		return startOfDay(now).AddDate(0, 0, -7)
	case DateThisMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	case DateThisYear:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	}
	return time.Time{}
}

// Encode renders the query back into URL values, for pagination links.
func (q Query) Encode(page int) string {
	v := url.Values{}
	for k, val := range q.Filters {
		v.Set(k, val)
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	v.Set("page", strconv.Itoa(page))
	return v.Encode()
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
