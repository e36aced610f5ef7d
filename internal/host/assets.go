package host

import (
	"fmt"
	"io/fs"
	"net/http"
	"net/url"
	"path"
	"strings"

	"pake/internal/config"
	"pake/internal/shell"

	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
)

// ContentHandler serves what the window shows: bundled pages for local
// targets, the proxied site for external ones. HTML passes through scripts.
func ContentHandler(spec shell.WindowSpec, assets fs.FS, scripts *ScriptInjector) (http.Handler, error) {
	var h http.Handler
	switch spec.Target.Kind {
	case shell.TargetLocal:
		if assets == nil {
			return nil, fmt.Errorf("no bundled assets for local target %q", spec.Target.Location)
		}
		h = localHandler(assets, spec.Target.Location)
	case shell.TargetExternal:
		u, err := config.ParseWebURL(spec.Target.Location)
		if err != nil {
			return nil, err
		}
		h = entryRedirect(u.RequestURI(), NewWebProxy(u, spec.UserAgent))
	default:
		return nil, fmt.Errorf("unknown target kind %q", spec.Target.Kind)
	}

	if scripts != nil {
		h = scripts.Middleware(h)
	}
	return h, nil
}

// AssetServerOptions wraps the content handler for the Wails asset server
func AssetServerOptions(spec shell.WindowSpec, assets fs.FS, scripts *ScriptInjector) (*assetserver.Options, error) {
	h, err := ContentHandler(spec, assets, scripts)
	if err != nil {
		return nil, err
	}
	return &assetserver.Options{Handler: h}, nil
}

// localHandler serves assets with "/" resolving to entry
func localHandler(assets fs.FS, entry string) http.Handler {
	files := http.FileServerFS(assets)
	name := localEntry(entry)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" && name != "" {
			http.ServeFileFS(w, r, assets, name)
			return
		}
		files.ServeHTTP(w, r)
	})
}

// localEntry turns a configured relative location into an fs path. Query and
// fragment are dropped; an empty location leaves "/" to the file server.
func localEntry(location string) string {
	if u, err := url.Parse(location); err == nil && u.Path != "" {
		location = u.Path
	}
	name := strings.TrimPrefix(path.Clean("/"+location), "/")
	if name == "" || name == "." {
		return ""
	}
	return name
}
