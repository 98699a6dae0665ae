package scraper

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/toyamabay/hotaruika-surge/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func post(date, body string) string {
	return fmt.Sprintf(`<table class="layer">
<tr><td><div style="float:left;">投稿日: %s</div></td></tr>
<tr><td style="font-size:15px;color:#333;"><span>%s</span></td></tr>
</table>`, date, body)
}

func boardPage(pagination string, posts ...string) string {
	page := `<!DOCTYPE html><html><head><title>ホタルイカ掲示板</title></head><body>` + pagination
	for _, p := range posts {
		page += p
	}
	return page + `</body></html>`
}

func newBoardServer(t *testing.T) *httptest.Server {
	t.Helper()

	pagination := `<div style="font-size:13px;margin-bottom:4px;">
<a class="n" href="?page=2">2</a>
<a class="n" href="?page=3">3</a>
</div>`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("page") {
		case "2":
			fmt.Fprint(w, boardPage(pagination,
				post("2025年04月11日 23:10", "308杯でした"),
				// Repeated from page 1, must be deduplicated.
				post("2025年04月12日 01:30", "10分で50匹ぐらいのペースですね"),
				post("2025年04月11日 22:00", "Check out the best cheap hotel deals for your stay, click here now")))
		case "3":
			// HEAD validation may probe this page, but the max-pages cap
			// must keep it from being scraped.
			if r.Method != http.MethodHead {
				t.Error("page 3 fetched, want it dropped by the max-pages cap")
			}
		default:
			fmt.Fprint(w, boardPage(pagination,
				post("2025年04月12日 01:30", "10分で50匹ぐらいのペースですね"),
				post("2025年04月12日 02:15", "イカの気配なし今日は諦めます")))
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testConfig(srvURL string) *models.Config {
	cfg := models.DefaultConfig()
	cfg.BaseURL = srvURL + "/"
	cfg.MaxPages = 2
	cfg.PageDelay = models.Duration(time.Millisecond)
	cfg.SkipForeign = true
	return cfg
}

func TestScraperRun(t *testing.T) {
	srv := newBoardServer(t)
	s := New(testConfig(srv.URL), testLogger())

	result, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result.PagesFetched != 2 {
		t.Errorf("PagesFetched = %d, want 2", result.PagesFetched)
	}
	if result.Duplicates != 1 {
		t.Errorf("Duplicates = %d, want 1", result.Duplicates)
	}
	if result.Foreign != 1 {
		t.Errorf("Foreign = %d, want 1", result.Foreign)
	}

	want := []string{
		"10分で50匹ぐらいのペースですね",
		"イカの気配なし今日は諦めます",
		"308杯でした",
	}
	if len(result.Comments) != len(want) {
		t.Fatalf("len(Comments) = %d, want %d", len(result.Comments), len(want))
	}
	for i, text := range want {
		if result.Comments[i].Text != text {
			t.Errorf("Comments[%d].Text = %q, want %q", i, result.Comments[i].Text, text)
		}
	}
	if result.Comments[2].PageIndex != 2 {
		t.Errorf("Comments[2].PageIndex = %d, want 2", result.Comments[2].PageIndex)
	}
}

func TestScraperRunKeepsForeignWhenConfigured(t *testing.T) {
	srv := newBoardServer(t)
	cfg := testConfig(srv.URL)
	cfg.SkipForeign = false
	s := New(cfg, testLogger())

	result, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if result.Foreign != 1 {
		t.Errorf("Foreign = %d, want 1 (flagged but kept)", result.Foreign)
	}
	if len(result.Comments) != 4 {
		t.Errorf("len(Comments) = %d, want 4", len(result.Comments))
	}
}

func TestScraperRunFirstPageFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)

	s := New(testConfig(srv.URL), testLogger())
	if _, err := s.Run(context.Background()); err == nil {
		t.Fatal("Run() error = nil, want failure when the first page is unreachable")
	}
}

func TestScraperRunRespectsCancellation(t *testing.T) {
	srv := newBoardServer(t)
	cfg := testConfig(srv.URL)
	cfg.PageDelay = models.Duration(time.Minute)
	s := New(cfg, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := s.Run(ctx)
		done <- err
	}()
	cancel()

	select {
	case err := <-done:
		if err == nil {
			t.Error("Run() error = nil, want context cancellation")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run() did not return after cancellation")
	}
}
