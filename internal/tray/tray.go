package tray

import (
	"sync"

	"pake/internal/infrastructure/logging"
	"pake/internal/shell"

	"github.com/energye/systray"
)

// Handler receives the id of the clicked tray item
type Handler func(id string)

// backend is the part of the system tray API the icon uses
type backend interface {
	SetIcon(icon []byte)
	SetTitle(title string)
	SetTooltip(tooltip string)
	AddItem(label string, onClick func())
	ShowMenuOnClick()
}

type systrayBackend struct{}

func (systrayBackend) SetIcon(icon []byte)       { systray.SetIcon(icon) }
func (systrayBackend) SetTitle(title string)     { systray.SetTitle(title) }
func (systrayBackend) SetTooltip(tooltip string) { systray.SetTooltip(tooltip) }

func (systrayBackend) AddItem(label string, onClick func()) {
	systray.AddMenuItem(label, label).Click(onClick)
}

func (systrayBackend) ShowMenuOnClick() {
	systray.SetOnClick(func(menu systray.IMenu) {
		_ = menu.ShowMenu()
	})
}

// Icon is the system tray icon of the application. It runs next to the
// Wails loop, so clicks arrive on the tray goroutine.
type Icon struct {
	mu      sync.Mutex
	menu    shell.TrayMenu
	title   string
	icon    []byte
	handler Handler
	logger  logging.Logger
	backend backend
	run     func(onReady, onExit func()) (start, end func())
	end     func()
}

// New creates a tray icon for menu. Nothing is shown until Start.
func New(menu shell.TrayMenu, title string, icon []byte, handler Handler, logger logging.Logger) *Icon {
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}
	return &Icon{
		menu:    menu,
		title:   title,
		icon:    icon,
		handler: handler,
		logger:  logger,
		backend: systrayBackend{},
		run:     systray.RunWithExternalLoop,
	}
}

// Start shows the icon. Calling it twice is a no-op.
func (t *Icon) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.end != nil {
		return
	}
	start, end := t.run(t.ready, t.exit)
	t.end = end
	start()
}

// Stop removes the icon
func (t *Icon) Stop() {
	t.mu.Lock()
	end := t.end
	t.end = nil
	t.mu.Unlock()

	if end != nil {
		end()
	}
}

func (t *Icon) ready() {
	if len(t.icon) > 0 {
		t.backend.SetIcon(t.icon)
	}
	t.backend.SetTitle(t.title)
	t.backend.SetTooltip(t.title)

	for _, item := range t.menu.Items {
		id := item.ID
		t.backend.AddItem(item.Label, func() { t.click(id) })
	}
	t.backend.ShowMenuOnClick()

	t.logger.Debug("Tray ready", "items", len(t.menu.Items))
}

func (t *Icon) exit() {
	t.logger.Debug("Tray stopped")
}

func (t *Icon) click(id string) {
	t.logger.Debug("Tray item clicked", "id", id)
	if t.handler != nil {
		t.handler(id)
	}
}
