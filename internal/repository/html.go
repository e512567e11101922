package repository

import (
	"bytes"
	"errors"
	"strings"

	"github.com/PuerkitoBio/goquery"
	log "github.com/sirupsen/logrus"

	"triz/standards/internal/domain"
)

var errNoStandardsTable = errors.New("no table with a Code column")

type htmlParser struct {
	schema domain.RecordSchema
}

func newHTMLParser(schema domain.RecordSchema) *htmlParser {
	return &htmlParser{schema: schema}
}

type htmlColumns struct {
	class, group, code, name, description int
}

// Parse reads the first table that has a Code column. Rows become
// class -> group -> code -> record.
func (p *htmlParser) Parse(data []byte) (*domain.Node, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	var (
		table  *goquery.Selection
		header *goquery.Selection
		cols   htmlColumns
	)
	doc.Find("table").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if h, c, ok := p.extractColumns(s); ok {
			table, header, cols = s, h, c
			return false
		}
		return true
	})
	if table == nil {
		return nil, errNoStandardsTable
	}

	root := domain.NewObjectNode()
	rows := 0
	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() == 0 || row.IsSelection(header) {
			return
		}

		code := cellText(cells, cols.code)
		if code == "" {
			log.Debugf("Skipping standards row without code: %q", strings.TrimSpace(row.Text()))
			return
		}

		class := cellText(cells, cols.class)
		if class == "" {
			class = "Class " + codePrefix(code, 1)
		}
		group := cellText(cells, cols.group)
		if group == "" {
			group = "Group " + codePrefix(code, 2)
		}

		record := domain.NewObjectNode()
		if name := cellText(cells, cols.name); name != "" && p.schema.NameField != "" {
			record.Set(p.schema.NameField, domain.NewScalarNode(name))
		}
		if desc := cellText(cells, cols.description); desc != "" && len(p.schema.DescriptionFields) > 0 {
			record.Set(p.schema.DescriptionFields[0], domain.NewScalarNode(desc))
		}

		childOf(childOf(root, class), group).Set(code, record)
		rows++
	})

	log.Debugf("Parsed %d standards from HTML table", rows)
	return root, nil
}

func (p *htmlParser) extractColumns(table *goquery.Selection) (*goquery.Selection, htmlColumns, bool) {
	cols := htmlColumns{class: -1, group: -1, code: -1, name: -1, description: -1}

	header := table.Find("thead tr").First()
	if header.Length() == 0 {
		header = table.Find("tr").First()
	}

	nameField := strings.ToLower(p.schema.NameField)
	header.Find("th, td").Each(func(i int, cell *goquery.Selection) {
		title := strings.ToLower(strings.TrimSpace(cell.Text()))
		if title == "" {
			return
		}
		if title == nameField {
			cols.name = i
			return
		}
		switch title {
		case "class":
			cols.class = i
		case "group":
			cols.group = i
		case "code", "standard":
			cols.code = i
		case "name", "standard name":
			cols.name = i
		case "description", "text":
			cols.description = i
		}
	})

	return header, cols, cols.code >= 0
}

func cellText(cells *goquery.Selection, index int) string {
	if index < 0 || index >= cells.Length() {
		return ""
	}
	return strings.TrimSpace(cells.Eq(index).Text())
}

func childOf(parent *domain.Node, key string) *domain.Node {
	if child, ok := parent.Child(key); ok && child.IsObject() {
		return child
	}
	child := domain.NewObjectNode()
	parent.Set(key, child)
	return child
}

// codePrefix returns the first n dot-separated segments of code.
func codePrefix(code string, n int) string {
	parts := strings.Split(code, ".")
	if len(parts) > n {
		parts = parts[:n]
	}
	return strings.Join(parts, ".")
}
