package host

import (
	"bytes"
	"encoding/json"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"sync"
)

// initScriptAttr marks script tags added by the injector
const initScriptAttr = "data-pake-init"

var (
	headOpen = regexp.MustCompile(`(?i)<head(\s[^>]*)?>`)
	htmlOpen = regexp.MustCompile(`(?i)<html(\s[^>]*)?>`)
)

// ScriptInjector places init scripts at the top of every HTML document served
// to the content surface, ahead of any page script.
type ScriptInjector struct {
	mu      sync.RWMutex
	scripts []string
}

// NewScriptInjector creates an injector for the non-empty scripts, in order
func NewScriptInjector(scripts ...string) *ScriptInjector {
	s := &ScriptInjector{}
	for _, src := range scripts {
		if strings.TrimSpace(src) != "" {
			s.scripts = append(s.scripts, src)
		}
	}
	return s
}

// Clear stops all further injection
func (s *ScriptInjector) Clear() {
	s.mu.Lock()
	s.scripts = nil
	s.mu.Unlock()
}

// Tags renders the script elements to insert, or "" when there is nothing to add
func (s *ScriptInjector) Tags() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var sb strings.Builder
	for _, src := range s.scripts {
		sb.WriteString("<script ")
		sb.WriteString(initScriptAttr)
		sb.WriteString(">")
		// a literal </script> inside the source would end the element early
		sb.WriteString(strings.ReplaceAll(src, "</script", `<\/script`))
		sb.WriteString("</script>")
	}
	return sb.String()
}

// Middleware wraps next so successful, uncompressed text/html responses carry
// the init scripts. Everything else streams through untouched.
func (s *ScriptInjector) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tags := s.Tags()
		if tags == "" || r.Method == http.MethodHead {
			next.ServeHTTP(w, r)
			return
		}
		iw := &injectWriter{ResponseWriter: w, tags: tags}
		next.ServeHTTP(iw, r)
		iw.finish()
	})
}

// InjectHTML inserts tags right after <head>, else after <html>, else at the start
func InjectHTML(doc []byte, tags string) []byte {
	if loc := headOpen.FindIndex(doc); loc != nil {
		return splice(doc, loc[1], tags)
	}
	if loc := htmlOpen.FindIndex(doc); loc != nil {
		return splice(doc, loc[1], tags)
	}
	return splice(doc, 0, tags)
}

func splice(doc []byte, at int, tags string) []byte {
	out := make([]byte, 0, len(doc)+len(tags))
	out = append(out, doc[:at]...)
	out = append(out, tags...)
	return append(out, doc[at:]...)
}

type injectWriter struct {
	http.ResponseWriter
	tags      string
	status    int
	decided   bool
	buffering bool
	buf       bytes.Buffer
}

func (w *injectWriter) WriteHeader(code int) {
	if w.decided {
		return
	}
	w.decided = true
	w.status = code

	h := w.Header()
	if code == http.StatusOK && isHTML(h.Get("Content-Type")) && h.Get("Content-Encoding") == "" {
		w.buffering = true
		return
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *injectWriter) Write(p []byte) (int, error) {
	if !w.decided {
		if w.Header().Get("Content-Type") == "" {
			w.Header().Set("Content-Type", http.DetectContentType(p))
		}
		w.WriteHeader(http.StatusOK)
	}
	if w.buffering {
		return w.buf.Write(p)
	}
	return w.ResponseWriter.Write(p)
}

// Flush is a no-op while buffering an HTML document
func (w *injectWriter) Flush() {
	if w.buffering {
		return
	}
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (w *injectWriter) finish() {
	if !w.buffering {
		return
	}
	out := InjectHTML(w.buf.Bytes(), w.tags)
	w.Header().Set("Content-Length", strconv.Itoa(len(out)))
	w.ResponseWriter.WriteHeader(w.status)
	_, _ = w.ResponseWriter.Write(out)
}

func isHTML(contentType string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(contentType)), "text/html")
}

// UserAgentScript overrides navigator.userAgent inside the page. The HTTP
// header is set separately by the proxy.
func UserAgentScript(ua string) string {
	if ua == "" {
		return ""
	}
	quoted, err := json.Marshal(ua)
	if err != nil {
		return ""
	}
	return `Object.defineProperty(navigator, "userAgent", { get: function () { return ` + string(quoted) + `; } });`
}
