package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/decantlabs/decant"
)

var cellSpaceRe = regexp.MustCompile(`\s+`)

// DetectTables locates every <table> in the HTML content and extracts it as
// a structured decant.Table. Tables that end up with zero data rows are
// discarded. Unparsable input yields no tables rather than an error.
func DetectTables(content string) []decant.Table {
	if content == "" {
		return nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil
	}

	var tables []decant.Table
	doc.Find("table").Each(func(_ int, sel *goquery.Selection) {
		if table, ok := parseTable(sel); ok {
			tables = append(tables, table)
		}
	})
	return tables
}

func parseTable(sel *goquery.Selection) (decant.Table, bool) {
	caption := cleanCell(sel.Find("caption").First().Text())
	headers := resolveHeaders(sel)

	hasThead := sel.Find("thead").Length() > 0
	bodyRows := sel.Find("tbody tr")
	allRows := bodyRows
	if bodyRows.Length() == 0 {
		allRows = sel.Find("tr")
	}

	var rows [][]string
	allRows.Each(func(i int, tr *goquery.Selection) {
		// The first row is data unless it was already claimed as headers
		// and no explicit header grouping exists.
		if i == 0 && len(headers) > 0 && !hasThead {
			return
		}

		var cells []string
		blank := true
		tr.Find("td, th").Each(func(_ int, cell *goquery.Selection) {
			text := cleanCell(cell.Text())
			if text != "" {
				blank = false
			}
			cells = append(cells, text)
		})
		if len(cells) > 0 && !blank {
			rows = append(rows, cells)
		}
	})

	if len(rows) == 0 {
		return decant.Table{}, false
	}

	// Pad every row to a uniform column count before rendering.
	colCount := len(headers)
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	for i, row := range rows {
		for len(row) < colCount {
			row = append(row, "")
		}
		rows[i] = row
	}

	return decant.Table{
		Caption:  caption,
		Headers:  headers,
		Rows:     rows,
		Markdown: decant.MarkdownTable(headers, rows),
	}, true
}

// resolveHeaders prefers explicit <th> cells in the first header row. With
// none present and more than one row in the table, the first row is treated
// as headers only if every cell is bold or uppercase text longer than one
// character; the all-or-nothing rule guards against claiming a genuine data
// row.
func resolveHeaders(sel *goquery.Selection) []string {
	headerRow := sel.Find("thead tr").First()
	if headerRow.Length() == 0 {
		headerRow = sel.Find("tr").First()
	}
	if headerRow.Length() == 0 {
		return nil
	}

	var headers []string
	ths := headerRow.Find("th")
	if ths.Length() > 0 {
		ths.Each(func(_ int, th *goquery.Selection) {
			headers = append(headers, cleanCell(th.Text()))
		})
		return headers
	}

	if sel.Find("tr").Length() <= 1 {
		return nil
	}

	tds := headerRow.Find("td")
	if tds.Length() == 0 {
		return nil
	}

	looksLikeHeaders := true
	tds.Each(func(_ int, td *goquery.Selection) {
		if !looksLikeHeaders {
			return
		}
		if td.Find("strong, b").Length() > 0 {
			return
		}
		text := td.Text()
		if len(strings.TrimSpace(text)) > 1 && text == strings.ToUpper(text) {
			return
		}
		looksLikeHeaders = false
	})
	if !looksLikeHeaders {
		return nil
	}

	tds.Each(func(_ int, td *goquery.Selection) {
		headers = append(headers, cleanCell(td.Text()))
	})
	return headers
}

func cleanCell(text string) string {
	return strings.TrimSpace(cellSpaceRe.ReplaceAllString(text, " "))
}
