package scraper

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"

	"github.com/toyamabay/hotaruika-surge/models"
)

// The board renders each post as a table.layer block: a float-left div with
// the submission timestamp and a 15px td holding the body in a span.
var postedAtPattern = regexp.MustCompile(`投稿日: (\d{4}年\d{2}月\d{2}日 \d{2}:\d{2})`)

// BoardMeta is the page-level metadata stored on the run record.
type BoardMeta struct {
	Title    string
	SiteName string
}

// extractComments pulls every resolvable post from a board page. Posts
// without a parseable timestamp or with an empty body are skipped.
func extractComments(doc *goquery.Document, sourceURL string, pageIndex int) []models.Comment {
	var comments []models.Comment

	doc.Find("table.layer").Each(func(i int, post *goquery.Selection) {
		var postedAt string
		dateDiv := post.Find("div[style*='float:left']").First()
		if m := postedAtPattern.FindStringSubmatch(dateDiv.Text()); m != nil {
			postedAt = m[1]
		}

		text := strings.TrimSpace(post.Find("td[style*='font-size:15px'] span").First().Text())

		if postedAt == "" || text == "" {
			return
		}
		comments = append(comments, models.Comment{
			Text:      text,
			PostedAt:  postedAt,
			SourceURL: sourceURL,
			PageIndex: pageIndex,
		})
	})

	return comments
}

// discoverPageURLs reads the pagination block on the first page and resolves
// every numeric page link against the base URL. The base URL itself is
// always first; duplicates are dropped.
func discoverPageURLs(doc *goquery.Document, baseURL string) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL %s: %w", baseURL, err)
	}

	urls := []string{baseURL}
	seen := map[string]bool{baseURL: true}

	doc.Find("div[style*='font-size:13px'] a.n").Each(func(i int, link *goquery.Selection) {
		label := strings.TrimSpace(link.Text())
		if !isDigits(label) {
			return
		}
		href, ok := link.Attr("href")
		if !ok {
			return
		}
		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		absolute := base.ResolveReference(ref).String()
		if !seen[absolute] {
			seen[absolute] = true
			urls = append(urls, absolute)
		}
	})

	return urls, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// boardMeta runs a readability pass over the first page to pick up the
// board title and site name for the run record. Failures are not fatal.
func boardMeta(html []byte, pageURL string) (BoardMeta, error) {
	parsedURL, err := url.Parse(pageURL)
	if err != nil {
		return BoardMeta{}, fmt.Errorf("failed to parse page URL %s: %w", pageURL, err)
	}

	parser := readability.NewParser()
	article, err := parser.Parse(strings.NewReader(string(html)), parsedURL)
	if err != nil {
		return BoardMeta{}, fmt.Errorf("readability pass failed: %w", err)
	}

	return BoardMeta{Title: article.Title, SiteName: article.SiteName}, nil
}
