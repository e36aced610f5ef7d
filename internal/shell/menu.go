package shell

import "pake/internal/platform"

// Application menu item ids. These strings are the contract with the host
// event system.
const (
	MenuHide    = "hide"
	MenuClose   = "close"
	MenuQuit    = "quit"
	MenuZoomIn  = "zoom_in"
	MenuZoomOut = "zoom_out"
	MenuReset   = "reset"
)

// MenuItemKind distinguishes OS-provided entries from shell ones
type MenuItemKind int

const (
	ItemCustom MenuItemKind = iota
	ItemNative
)

// MenuItem is one entry of a submenu
type MenuItem struct {
	Kind   MenuItemKind
	ID     string
	Label  string
	Native platform.NativeItem
}

// IsSeparator reports whether the item only draws a divider
func (m MenuItem) IsSeparator() bool {
	return m.Kind == ItemNative && m.Native == platform.NativeSeparator
}

// Submenu is a titled group of items
type Submenu struct {
	Label string
	Items []MenuItem
}

// MenuTree is the whole application menu
type MenuTree struct {
	Submenus []Submenu
}

func custom(id, label string) MenuItem {
	return MenuItem{Kind: ItemCustom, ID: id, Label: label}
}

// BuildApplicationMenu builds the "File" and "Hot Key" submenus. The File
// menu starts with the platform's native items, if any.
func BuildApplicationMenu(adapter platform.Adapter) MenuTree {
	var file []MenuItem
	for _, n := range adapter.NativeFileItems() {
		file = append(file, MenuItem{Kind: ItemNative, Native: n, Label: n.Label()})
	}
	file = append(file,
		custom(MenuHide, "Hide"),
		custom(MenuClose, "Close"),
		custom(MenuQuit, "Quit"),
	)

	hotKey := []MenuItem{
		custom(MenuZoomIn, "Zoom In (75%)"),
		custom(MenuZoomOut, "Zoom Out (125%)"),
		custom(MenuReset, "Zoom Reset"),
	}

	return MenuTree{Submenus: []Submenu{
		{Label: "File", Items: file},
		{Label: "Hot Key", Items: hotKey},
	}}
}
