package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

const samplePage = `
<html>
	<head><title>Weekender</title><style>.x { color: red; }</style></head>
	<body>
		<div>
			<h2>Jazz Night by The Blue Notes</h2>
			<p>Date: Saturday | 20:00<br>Address: 1 Fumin Road</p>
			<script>var tracking = "Date: Monday";</script>
			<p>   lots   of   space  </p>
			<span>inline</span> <span>text</span>
		</div>
	</body>
</html>`

var sampleLines = []string{
	"Jazz Night by The Blue Notes",
	"Date: Saturday | 20:00",
	"Address: 1 Fumin Road",
	"lots of space",
	"inline text",
}

func equalLines(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d lines %q, want %d lines %q", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFetchLines(t *testing.T) {
	tests := []struct {
		name        string
		htmlContent string
		contentType string
		statusCode  int
		wantError   bool
		wantLines   []string
	}{
		{
			name:        "successful fetch",
			htmlContent: samplePage,
			contentType: "text/html; charset=utf-8",
			statusCode:  http.StatusOK,
			wantLines:   sampleLines,
		},
		{
			name:        "declared charset",
			htmlContent: "<html><body><p>Caf\xe9 Space</p></body></html>",
			contentType: "text/html; charset=iso-8859-1",
			statusCode:  http.StatusOK,
			wantLines:   []string{"Café Space"},
		},
		{
			name:       "HTTP error",
			statusCode: http.StatusNotFound,
			wantError:  true,
		},
		{
			name:        "empty page",
			htmlContent: "<html><body><p>  </p></body></html>",
			statusCode:  http.StatusOK,
			wantLines:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if userAgent := r.Header.Get("User-Agent"); !strings.Contains(userAgent, "weekender-events") {
					t.Errorf("User-Agent = %q, should contain 'weekender-events'", userAgent)
				}
				if tt.contentType != "" {
					w.Header().Set("Content-Type", tt.contentType)
				}
				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.htmlContent))
			}))
			defer server.Close()

			s := NewWithConfig(Config{Retries: 0})
			lines, err := s.FetchLines(context.Background(), server.URL)

			if tt.wantError {
				if err == nil {
					t.Error("FetchLines() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("FetchLines() unexpected error: %v", err)
			}
			equalLines(t, lines, tt.wantLines)
		})
	}
}

func TestFetchLines_ContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(samplePage))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewWithConfig(Config{Retries: 0}).FetchLines(ctx, server.URL); err == nil {
		t.Error("FetchLines() with canceled context expected error, got nil")
	}
}

func TestParseLines(t *testing.T) {
	lines, err := ParseLines(strings.NewReader(samplePage))
	if err != nil {
		t.Fatalf("ParseLines() error: %v", err)
	}
	equalLines(t, lines, sampleLines)
}

func TestParseLines_HTMLEntities(t *testing.T) {
	lines, err := ParseLines(strings.NewReader(`<p>Rock &amp; Roll Club</p>`))
	if err != nil {
		t.Fatalf("ParseLines() error: %v", err)
	}
	equalLines(t, lines, []string{"Rock & Roll Club"})
}

func TestReadLines(t *testing.T) {
	input := "  Jazz Night by The Blue Notes  \r\n\n\t\nDate: Saturday | 20:00\n   \nAddress: 1 Fumin Road"

	lines, err := ReadLines(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadLines() error: %v", err)
	}
	equalLines(t, lines, []string{
		"Jazz Night by The Blue Notes",
		"Date: Saturday | 20:00",
		"Address: 1 Fumin Road",
	})
}

func TestReadLines_MatchesParseLines(t *testing.T) {
	text := "Date:\u00a0Monday\u00a0|  10:00-18:00\n\u00a0Address:\u00a0\u00a01 Fumin Road \u3000\n"
	html := "<html><body><p>Date:&nbsp;Monday&nbsp;|  10:00-18:00</p><p>&nbsp;Address:&nbsp;&nbsp;1 Fumin Road \u3000</p></body></html>"
	want := []string{
		"Date: Monday | 10:00-18:00",
		"Address: 1 Fumin Road",
	}

	fromText, err := ReadLines(strings.NewReader(text))
	if err != nil {
		t.Fatalf("ReadLines() error: %v", err)
	}
	equalLines(t, fromText, want)

	fromHTML, err := ParseLines(strings.NewReader(html))
	if err != nil {
		t.Fatalf("ParseLines() error: %v", err)
	}
	equalLines(t, fromHTML, want)
}

func TestDetectCharset(t *testing.T) {
	text := []byte("上海大剧院本周末上演天鹅湖，票价从一百元起，欢迎全家一起来观看演出。")
	if got := DetectCharset(text); got != "utf-8" {
		t.Errorf("DetectCharset() = %q, want utf-8", got)
	}
}

func TestNewWithConfig(t *testing.T) {
	s := NewWithConfig(Config{})

	if s.client == nil {
		t.Fatal("scraper client is nil")
	}
	if s.userAgent != UserAgent {
		t.Errorf("userAgent = %q, want %q", s.userAgent, UserAgent)
	}
	if s.client.HTTPClient.Timeout != Timeout {
		t.Errorf("timeout = %v, want %v", s.client.HTTPClient.Timeout, Timeout)
	}

	s = NewWithConfig(Config{UserAgent: "custom", Timeout: time.Second, Retries: 5})
	if s.userAgent != "custom" || s.client.RetryMax != 5 || s.client.HTTPClient.Timeout != time.Second {
		t.Errorf("config not applied: ua=%q retries=%d timeout=%v", s.userAgent, s.client.RetryMax, s.client.HTTPClient.Timeout)
	}
}
