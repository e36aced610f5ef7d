package host

import (
	"net/http"
	"net/http/httputil"
	"net/url"
)

// NewWebProxy serves an external site through the asset server. Every
// upstream request carries userAgent, and same-origin redirects are rewritten
// to stay inside the content surface.
func NewWebProxy(target *url.URL, userAgent string) *httputil.ReverseProxy {
	origin := &url.URL{Scheme: target.Scheme, Host: target.Host}

	return &httputil.ReverseProxy{
		Rewrite: func(r *httputil.ProxyRequest) {
			r.SetURL(origin)
			r.Out.Host = origin.Host
			if userAgent != "" {
				r.Out.Header.Set("User-Agent", userAgent)
			}
			// let the transport negotiate gzip and hand back plain bodies
			r.Out.Header.Del("Accept-Encoding")
		},
		ModifyResponse: func(resp *http.Response) error {
			rewriteCookies(resp.Header)
			loc := resp.Header.Get("Location")
			if loc == "" {
				return nil
			}
			u, err := url.Parse(loc)
			if err != nil {
				return nil
			}
			if u.IsAbs() && u.Host == origin.Host {
				resp.Header.Set("Location", u.RequestURI())
			}
			return nil
		},
	}
}

// rewriteCookies drops the Domain attribute of every Set-Cookie so the
// content surface stores cookies as host-only for its own origin. Lines that
// do not parse are passed on unchanged.
func rewriteCookies(h http.Header) {
	lines := h.Values("Set-Cookie")
	if len(lines) == 0 {
		return
	}
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		c, err := http.ParseSetCookie(line)
		if err != nil || c.Domain == "" {
			out = append(out, line)
			continue
		}
		c.Domain = ""
		out = append(out, c.String())
	}
	h["Set-Cookie"] = out
}

// entryRedirect sends the first load of "/" to the configured page
func entryRedirect(entry string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" && entry != "" && entry != "/" {
			http.Redirect(w, r, entry, http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}
