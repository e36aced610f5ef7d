package shell

import (
	"fmt"

	"pake/internal/config"
	shellerrors "pake/internal/infrastructure/errors"
	"pake/internal/platform"
)

// TargetKind says where a window navigates
type TargetKind string

const (
	// TargetExternal is an absolute URI outside the application
	TargetExternal TargetKind = "external"
	// TargetLocal is a path relative to the bundled resources
	TargetLocal TargetKind = "local"
)

// Target is the initial navigation target of a window
type Target struct {
	Kind     TargetKind `json:"kind"`
	Location string     `json:"location"`
}

// WindowSpec is everything the host needs to build a window
type WindowSpec struct {
	Label       string  `json:"label"`
	Title       string  `json:"title"`
	Target      Target  `json:"target"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	Resizable   bool    `json:"resizable"`
	Fullscreen  bool    `json:"fullscreen"`
	Transparent bool    `json:"transparent"`
	DataDir     string  `json:"data_dir,omitempty"`
	UserAgent   string  `json:"user_agent,omitempty"`
	// InitScript runs in the content surface before any page script
	InitScript string `json:"init_script,omitempty"`
}

// WindowFactory builds the primary window spec from configuration
type WindowFactory struct {
	adapter   platform.Adapter
	bootstrap string
}

// NewWindowFactory creates a factory that injects bootstrap into every primary window
func NewWindowFactory(adapter platform.Adapter, bootstrap string) *WindowFactory {
	return &WindowFactory{adapter: adapter, bootstrap: bootstrap}
}

// ResolveTarget turns a window config into a navigation target
func ResolveTarget(w config.WindowConfig) (Target, error) {
	switch w.URLType {
	case config.URLTypeWeb:
		u, err := config.ParseWebURL(w.URL)
		if err != nil {
			return Target{}, err
		}
		return Target{Kind: TargetExternal, Location: u.String()}, nil
	case config.URLTypeLocal:
		return Target{Kind: TargetLocal, Location: w.URL}, nil
	default:
		return Target{}, shellerrors.HandleConfigParse("resolve_target", config.PakeDocument,
			fmt.Errorf("url_type %q must be web or local", w.URLType))
	}
}

// PrimarySpec builds the spec of the primary window from the first configured
// window. dataDir is empty on platforms without an explicit data directory.
func (f *WindowFactory) PrimarySpec(cfg config.PakeConfig, dataDir string) (WindowSpec, error) {
	if len(cfg.Windows) == 0 {
		return WindowSpec{}, shellerrors.HandleConfigParse("primary_spec", config.PakeDocument,
			fmt.Errorf("no windows configured"))
	}
	w := cfg.PrimaryWindow()

	target, err := ResolveTarget(w)
	if err != nil {
		return WindowSpec{}, err
	}

	spec := WindowSpec{
		Label:       PrimaryWindowLabel,
		Title:       "",
		Target:      target,
		Width:       w.Width,
		Height:      w.Height,
		Resizable:   w.Resizable,
		Fullscreen:  w.Fullscreen,
		Transparent: w.Transparent,
		DataDir:     dataDir,
		UserAgent:   f.adapter.UserAgent(cfg.UserAgent),
		InitScript:  f.bootstrap,
	}
	return spec, nil
}
