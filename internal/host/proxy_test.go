package host

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"pake/internal/shell"
)

type upstream struct {
	mu       sync.Mutex
	agents   []string
	encoding []string
	server   *httptest.Server
}

func newUpstream(t *testing.T) *upstream {
	t.Helper()
	u := &upstream{}
	mux := http.NewServeMux()
	mux.HandleFunc("/app/", func(w http.ResponseWriter, r *http.Request) {
		u.mu.Lock()
		u.agents = append(u.agents, r.Header.Get("User-Agent"))
		u.encoding = append(u.encoding, r.Header.Get("Accept-Encoding"))
		u.mu.Unlock()
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = io.WriteString(w, "<html><head><title>app</title></head><body></body></html>")
	})
	mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, u.server.URL+"/app/home", http.StatusFound)
	})
	mux.HandleFunc("/session", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Set-Cookie", "sid=1; Domain=example.com; Path=/; Secure")
		w.Header().Add("Set-Cookie", "theme=dark; Path=/")
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("/elsewhere", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "https://accounts.example.org/auth", http.StatusFound)
	})
	u.server = httptest.NewServer(mux)
	t.Cleanup(u.server.Close)
	return u
}

func webSpec(location, ua string) shell.WindowSpec {
	return shell.WindowSpec{
		Label:     shell.PrimaryWindowLabel,
		Target:    shell.Target{Kind: shell.TargetExternal, Location: location},
		UserAgent: ua,
	}
}

func noFollow(req *http.Request, via []*http.Request) error {
	return http.ErrUseLastResponse
}

func TestContentHandler_ExternalTarget(t *testing.T) {
	up := newUpstream(t)
	scripts := NewScriptInjector("boot();", UserAgentScript("CustomUA/1.0"))

	h, err := ContentHandler(webSpec(up.server.URL+"/app/", "CustomUA/1.0"), nil, scripts)
	if err != nil {
		t.Fatalf("ContentHandler() error = %v", err)
	}
	front := httptest.NewServer(h)
	defer front.Close()

	resp, err := http.Get(front.URL + "/")
	if err != nil {
		t.Fatalf("GET / error = %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if resp.Request.URL.Path != "/app/" {
		t.Errorf("entry should redirect to the target path, ended at %q", resp.Request.URL.Path)
	}
	if !strings.HasPrefix(string(body), "<html><head><script data-pake-init>boot();</script><script data-pake-init>") {
		t.Errorf("body = %q", body)
	}
	if !strings.Contains(string(body), `"CustomUA/1.0"`) {
		t.Errorf("user agent override missing: %q", body)
	}

	up.mu.Lock()
	defer up.mu.Unlock()
	if len(up.agents) != 1 || up.agents[0] != "CustomUA/1.0" {
		t.Errorf("upstream user agents = %v", up.agents)
	}
	if up.encoding[0] != "gzip" && up.encoding[0] != "" {
		t.Errorf("upstream Accept-Encoding = %q", up.encoding[0])
	}
}

func TestWebProxy_RewritesSameOriginRedirects(t *testing.T) {
	up := newUpstream(t)
	target, _ := url.Parse(up.server.URL)

	front := httptest.NewServer(NewWebProxy(target, "UA"))
	defer front.Close()
	client := &http.Client{CheckRedirect: noFollow}

	resp, err := client.Get(front.URL + "/login")
	if err != nil {
		t.Fatalf("GET /login error = %v", err)
	}
	resp.Body.Close()
	if loc := resp.Header.Get("Location"); loc != "/app/home" {
		t.Errorf("same-origin Location = %q, want /app/home", loc)
	}

	resp, err = client.Get(front.URL + "/elsewhere")
	if err != nil {
		t.Fatalf("GET /elsewhere error = %v", err)
	}
	resp.Body.Close()
	if loc := resp.Header.Get("Location"); loc != "https://accounts.example.org/auth" {
		t.Errorf("cross-origin Location = %q", loc)
	}
}

func TestEntryRedirect(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "next:"+r.URL.Path)
	})

	rec := httptest.NewRecorder()
	entryRedirect("/app/?tab=1", next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/app/?tab=1" {
		t.Errorf("redirect = %d %q", rec.Code, rec.Header().Get("Location"))
	}

	rec = httptest.NewRecorder()
	entryRedirect("/", next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Body.String() != "next:/" {
		t.Errorf("root entry should pass through, got %q", rec.Body.String())
	}

	rec = httptest.NewRecorder()
	entryRedirect("/app/", next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/a.js", nil))
	if rec.Body.String() != "next:/static/a.js" {
		t.Errorf("non-root paths should pass through, got %q", rec.Body.String())
	}
}

func TestWebProxy_CookiesBecomeHostOnly(t *testing.T) {
	up := newUpstream(t)
	target, _ := url.Parse(up.server.URL)

	front := httptest.NewServer(NewWebProxy(target, "UA"))
	defer front.Close()

	resp, err := http.Get(front.URL + "/session")
	if err != nil {
		t.Fatalf("GET /session error = %v", err)
	}
	resp.Body.Close()

	lines := resp.Header.Values("Set-Cookie")
	if len(lines) != 2 {
		t.Fatalf("Set-Cookie = %v", lines)
	}
	for _, line := range lines {
		if strings.Contains(strings.ToLower(line), "domain=") {
			t.Errorf("cookie still carries a domain: %q", line)
		}
	}
	if !strings.HasPrefix(lines[0], "sid=1") || !strings.Contains(lines[0], "Secure") || !strings.Contains(lines[0], "Path=/") {
		t.Errorf("rewritten cookie lost attributes: %q", lines[0])
	}
	if lines[1] != "theme=dark; Path=/" {
		t.Errorf("host-only cookie changed: %q", lines[1])
	}

	cookies := resp.Cookies()
	if len(cookies) != 2 || cookies[0].Name != "sid" || cookies[0].Value != "1" {
		t.Errorf("cookies = %v", cookies)
	}
}

func TestRewriteCookies_Unparseable(t *testing.T) {
	h := http.Header{}
	h.Add("Set-Cookie", "=novalue; Domain=example.com")

	rewriteCookies(h)

	if got := h.Get("Set-Cookie"); got != "=novalue; Domain=example.com" {
		t.Errorf("unparseable line changed: %q", got)
	}
}
