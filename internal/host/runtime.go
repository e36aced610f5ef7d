package host

import (
	"context"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// runtimeAPI is the slice of the Wails runtime the host drives. It exists so
// window handles can be exercised without a running event loop.
type runtimeAPI interface {
	WindowHide(ctx context.Context)
	WindowShow(ctx context.Context)
	WindowMinimise(ctx context.Context)
	WindowFullscreen(ctx context.Context)
	WindowUnfullscreen(ctx context.Context)
	WindowIsFullscreen(ctx context.Context) bool
	WindowExecJS(ctx context.Context, js string)
	WindowSetBackgroundColour(ctx context.Context, r, g, b, a uint8)
	Quit(ctx context.Context)
}

type wailsRuntime struct{}

func (wailsRuntime) WindowHide(ctx context.Context)         { runtime.WindowHide(ctx) }
func (wailsRuntime) WindowShow(ctx context.Context)         { runtime.WindowShow(ctx) }
func (wailsRuntime) WindowMinimise(ctx context.Context)     { runtime.WindowMinimise(ctx) }
func (wailsRuntime) WindowFullscreen(ctx context.Context)   { runtime.WindowFullscreen(ctx) }
func (wailsRuntime) WindowUnfullscreen(ctx context.Context) { runtime.WindowUnfullscreen(ctx) }
func (wailsRuntime) Quit(ctx context.Context)               { runtime.Quit(ctx) }

func (wailsRuntime) WindowIsFullscreen(ctx context.Context) bool {
	return runtime.WindowIsFullscreen(ctx)
}

func (wailsRuntime) WindowExecJS(ctx context.Context, js string) {
	runtime.WindowExecJS(ctx, js)
}

func (wailsRuntime) WindowSetBackgroundColour(ctx context.Context, r, g, b, a uint8) {
	runtime.WindowSetBackgroundColour(ctx, r, g, b, a)
}
