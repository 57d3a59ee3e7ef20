package ocean

import (
	"io"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/goodnatureofminers/poolscope-backend/internal/pool/model"
	"golang.org/x/net/html"
)

const minBlockCells = 6

var (
	tooltipPattern   = regexp.MustCompile(`User:\s*(\S+).*?Worker:\s*(\S+)`)
	statsLinkPattern = regexp.MustCompile(`/stats/(.+)`)
)

// ParseBlockTable extracts block records from the rows of a block table page.
// Rows with fewer than six cells are skipped.
func ParseBlockTable(r io.Reader) ([]model.BlockRecord, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	var records []model.BlockRecord
	doc.Find("tr.table-row").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td.table-cell")
		if cells.Length() < minBlockCells {
			return
		}

		address, worker := parseAddressWorker(cells.Eq(3))
		records = append(records, model.BlockRecord{
			DateTime:   strippedText(cells.Eq(0)),
			Shares:     strippedText(cells.Eq(1)),
			Difficulty: strippedText(cells.Eq(2)),
			Address:    address,
			Worker:     worker,
			Height:     strippedText(cells.Eq(4)),
			BlockHash:  strippedText(cells.Eq(5).Find("a").First()),
		})
	})
	return records, nil
}

// parseAddressWorker reads the miner cell. A worker tooltip wins over a stats link;
// when neither yields a match both values are empty.
func parseAddressWorker(cell *goquery.Selection) (address, worker string) {
	if tooltip := cell.Find("span.tooltiptext-worker").First(); tooltip.Length() > 0 {
		if m := tooltipPattern.FindStringSubmatch(strippedText(tooltip)); m != nil {
			return m[1], m[2]
		}
		return "", ""
	}

	link := cell.Find("a[href]").FilterFunction(func(_ int, a *goquery.Selection) bool {
		href, _ := a.Attr("href")
		return strings.Contains(href, "/stats/")
	}).First()
	if link.Length() == 0 {
		return "", ""
	}
	href, _ := link.Attr("href")
	if m := statsLinkPattern.FindStringSubmatch(href); m != nil {
		return strings.TrimSpace(m[1]), ""
	}
	return "", ""
}

// strippedText joins every descendant text node after trimming each one.
func strippedText(sel *goquery.Selection) string {
	var b strings.Builder
	for _, n := range sel.Nodes {
		writeStrippedText(&b, n)
	}
	return b.String()
}

func writeStrippedText(b *strings.Builder, n *html.Node) {
	if n.Type == html.TextNode {
		b.WriteString(strings.TrimSpace(n.Data))
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeStrippedText(b, c)
	}
}
