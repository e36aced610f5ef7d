package host

import (
	"pake/internal/platform"
	"pake/internal/shell"

	"github.com/wailsapp/wails/v2/pkg/menu"
	"github.com/wailsapp/wails/v2/pkg/menu/keys"
)

// Only window actions carry accelerators. Editing shortcuts stay with the
// webview's responder chain: scripted execCommand cannot paste without a user
// gesture, so binding Cmd+V here would swallow it.
var nativeAccelerators = map[platform.NativeItem]*keys.Accelerator{
	platform.NativeEnterFullScreen: keys.Combo("f", keys.CmdOrCtrlKey, keys.ControlKey),
	platform.NativeMinimize:        keys.CmdOrCtrl("m"),
}

// BuildMenu translates the shell menu tree into a Wails menu. Custom items
// report their id, native items report which OS action they stand for.
func BuildMenu(tree shell.MenuTree, onCustom func(id string), onNative func(item platform.NativeItem)) *menu.Menu {
	root := menu.NewMenu()
	for _, sub := range tree.Submenus {
		m := root.AddSubmenu(sub.Label)
		for _, item := range sub.Items {
			switch {
			case item.IsSeparator():
				m.AddSeparator()
			case item.Kind == shell.ItemNative:
				native := item.Native
				m.AddText(item.Label, nativeAccelerators[native], func(*menu.CallbackData) {
					if onNative != nil {
						onNative(native)
					}
				})
			default:
				id := item.ID
				m.AddText(item.Label, nil, func(*menu.CallbackData) {
					if onCustom != nil {
						onCustom(id)
					}
				})
			}
		}
	}
	return root
}

// AppendEditRole adds the OS edit menu, whose items dispatch the standard
// copy/paste selectors with their key equivalents
func AppendEditRole(m *menu.Menu) *menu.Menu {
	m.Append(menu.EditMenu())
	return m
}

var editCommands = map[platform.NativeItem]string{
	platform.NativeCopy:      "copy",
	platform.NativeCut:       "cut",
	platform.NativePaste:     "paste",
	platform.NativeUndo:      "undo",
	platform.NativeRedo:      "redo",
	platform.NativeSelectAll: "selectAll",
}
