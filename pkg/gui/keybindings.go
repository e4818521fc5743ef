package gui

import "github.com/jesseduffield/gocui"

func (g *Gui) setKeybindings() error {
	km := g.newKeybindingManager()

	km.RegisterAll(g.globalBindings())
	km.RegisterAll(g.navigationBindings())
	km.RegisterAll(g.selectionBindings(km))
	km.RegisterAll(g.settingsBindings(km))
	// Filter chars go last so they skip every rune bound above
	km.RegisterAll(g.filterBindings(km))
	km.RegisterAll(g.mouseBindings())

	return km.Apply()
}

// globalBindings - always available (quit, escape, help)
func (g *Gui) globalBindings() []*Binding {
	return []*Binding{
		{
			Key:         gocui.KeyCtrlC,
			Handler:     g.doQuit,
			Description: "Force quit",
		},
		{
			Key:         'q',
			Handler:     g.doQuit,
			Description: "Quit",
			Contexts: map[Context]func() error{
				ContextFilter: g.filterInsert('q'),
				ContextHelp:   g.blockAction,
				ContextModal:  g.blockAction,
			},
		},
		{
			Key:         gocui.KeyEsc,
			Handler:     g.doEscape,
			Description: "Close/Cancel",
		},
		{
			Key:         '?',
			Handler:     g.doToggleHelp,
			Description: "Show help",
			Contexts: map[Context]func() error{
				ContextFilter: g.filterInsert('?'),
			},
		},
		{
			Key:         '@',
			Handler:     g.doToggleModal,
			Description: "Command log",
			Contexts: map[Context]func() error{
				ContextFilter: g.filterInsert('@'),
			},
		},
	}
}

// navigationBindings - panel and list navigation
func (g *Gui) navigationBindings() []*Binding {
	return []*Binding{
		{
			Key:         gocui.KeyArrowUp,
			Handler:     g.doCursorUp,
			Description: "Move up",
			Contexts: map[Context]func() error{
				ContextHelp:  g.helpMoveUp,
				ContextModal: g.blockAction,
			},
		},
		{
			Key:         gocui.KeyArrowDown,
			Handler:     g.doCursorDown,
			Description: "Move down",
			Contexts: map[Context]func() error{
				ContextHelp:  g.helpMoveDown,
				ContextModal: g.blockAction,
			},
		},
		{
			Key:         gocui.KeyArrowLeft,
			Handler:     g.doColumnLeft,
			Description: "Move left",
			Contexts: map[Context]func() error{
				ContextFilter: g.filterCursorLeft,
				ContextHelp:   g.blockAction,
				ContextModal:  g.blockAction,
				ContextMove:   g.blockAction,
			},
		},
		{
			Key:         gocui.KeyArrowRight,
			Handler:     g.doColumnRight,
			Description: "Move right",
			Contexts: map[Context]func() error{
				ContextFilter: g.filterCursorRight,
				ContextHelp:   g.blockAction,
				ContextModal:  g.blockAction,
				ContextMove:   g.blockAction,
			},
		},
		// Vim keys - context aware
		{
			Key:         'j',
			Handler:     g.doCursorDown,
			Description: "Move down",
			Contexts: map[Context]func() error{
				ContextFilter: g.filterInsert('j'),
				ContextHelp:   g.helpMoveDown,
				ContextModal:  g.blockAction,
			},
		},
		{
			Key:         'k',
			Handler:     g.doCursorUp,
			Description: "Move up",
			Contexts: map[Context]func() error{
				ContextFilter: g.filterInsert('k'),
				ContextHelp:   g.helpMoveUp,
				ContextModal:  g.blockAction,
			},
		},
		{
			Key:         'h',
			Handler:     g.doColumnLeft,
			Description: "Move left",
			Contexts: map[Context]func() error{
				ContextFilter: g.filterInsert('h'),
				ContextHelp:   g.blockAction,
				ContextModal:  g.blockAction,
				ContextMove:   g.blockAction,
			},
		},
		{
			Key:         'l',
			Handler:     g.doColumnRight,
			Description: "Move right",
			Contexts: map[Context]func() error{
				ContextFilter: g.filterInsert('l'),
				ContextHelp:   g.blockAction,
				ContextModal:  g.blockAction,
				ContextMove:   g.blockAction,
			},
		},
		{
			Key:         gocui.KeyTab,
			Handler:     g.doNextColumn,
			Description: "Next panel",
			Contexts: map[Context]func() error{
				ContextFilter: g.blockAction,
				ContextHelp:   g.blockAction,
				ContextModal:  g.blockAction,
				ContextMove:   g.blockAction,
			},
		},
		{
			Key:         gocui.KeySpace,
			Handler:     g.doSpace,
			Description: "Toggle",
			Contexts: map[Context]func() error{
				ContextFilter: g.filterInsert(' '),
				ContextHelp:   g.blockAction,
				ContextModal:  g.blockAction,
			},
		},
		{
			Key:         gocui.KeyEnter,
			Handler:     g.doSpace,
			Description: "Toggle",
			Contexts: map[Context]func() error{
				ContextFilter: g.filterCommit,
				ContextHelp:   g.helpClose,
				ContextModal:  g.blockAction,
			},
		},
	}
}

// selectionBindings - reorder, remove and copy
func (g *Gui) selectionBindings(km *KeybindingManager) []*Binding {
	blocked := func(ch rune) map[Context]func() error {
		return map[Context]func() error{
			ContextFilter: g.filterInsert(ch),
			ContextHelp:   g.blockAction,
			ContextModal:  g.blockAction,
		}
	}

	return []*Binding{
		{
			Key:               'm',
			Handler:           g.doGrab,
			Description:       "Move icon",
			GetDisabledReason: km.disabled.NoSelection,
			Contexts: map[Context]func() error{
				ContextFilter: g.filterInsert('m'),
				ContextHelp:   g.blockAction,
				ContextModal:  g.blockAction,
				ContextMove:   g.doDrop,
			},
		},
		{
			Key:               'J',
			Handler:           g.doShiftDown,
			Description:       "Shift icon down",
			GetDisabledReason: require(km.disabled.NoSelection, km.disabled.Moving),
			Contexts:          blocked('J'),
		},
		{
			Key:               'K',
			Handler:           g.doShiftUp,
			Description:       "Shift icon up",
			GetDisabledReason: require(km.disabled.NoSelection, km.disabled.Moving),
			Contexts:          blocked('K'),
		},
		{
			Key:               'd',
			Handler:           g.doRemove,
			Description:       "Remove icon",
			GetDisabledReason: km.disabled.NoSelection,
			Contexts:          blocked('d'),
		},
		{
			Key:               'x',
			Handler:           g.doRemove,
			Description:       "Remove icon",
			GetDisabledReason: km.disabled.NoSelection,
			Contexts:          blocked('x'),
		},
		{
			Key:               'D',
			Handler:           g.doClearSelection,
			Description:       "Clear selection",
			GetDisabledReason: km.disabled.NoSelection,
			Contexts:          blocked('D'),
		},
		{
			Key:               'c',
			Handler:           g.doCopyMarkdown,
			Description:       "Copy markdown",
			GetDisabledReason: km.disabled.NoSelection,
			Contexts:          blocked('c'),
		},
		{
			Key:               'e',
			Handler:           g.doCopyHTML,
			Description:       "Copy HTML",
			GetDisabledReason: km.disabled.NoSelection,
			Contexts:          blocked('e'),
		},
		{
			Key:               'u',
			Handler:           g.doCopyURL,
			Description:       "Copy URL",
			GetDisabledReason: km.disabled.NoSelection,
			Contexts:          blocked('u'),
		},
	}
}

// settingsBindings - output settings, available from every panel
func (g *Gui) settingsBindings(km *KeybindingManager) []*Binding {
	bindings := []*Binding{
		{Key: 't', Handler: km.guards.NoPopup(g.doToggleTheme), Description: "Toggle theme"},
		{Key: 'a', Handler: km.guards.NoPopup(g.doToggleAlignment), Description: "Toggle alignment"},
		{Key: '+', Handler: km.guards.NoPopup(g.adjustPerLine(1)), Description: "More icons per line"},
		{Key: '=', Handler: km.guards.NoPopup(g.adjustPerLine(1)), Description: "More icons per line"},
		{Key: '-', Handler: km.guards.NoPopup(g.adjustPerLine(-1)), Description: "Fewer icons per line"},
	}
	for _, b := range bindings {
		b.Contexts = map[Context]func() error{
			ContextFilter: g.filterInsert(b.Key.(rune)),
		}
	}
	return bindings
}

// filterBindings - catalog search input
func (g *Gui) filterBindings(km *KeybindingManager) []*Binding {
	bindings := []*Binding{
		{
			Key:         '/',
			Handler:     km.guards.NoPopupOrFilter(g.doStartFilter),
			Description: "Search catalog",
			Contexts: map[Context]func() error{
				ContextFilter: g.filterInsert('/'),
				ContextMove:   g.blockAction,
			},
		},
		{
			Key:     gocui.KeyBackspace,
			Handler: g.doFilterBackspace,
		},
		{
			Key:     gocui.KeyBackspace2,
			Handler: g.doFilterBackspace,
		},
	}

	filterChars := "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	filterChars += "_.#"
	for _, ch := range filterChars {
		if km.isBound(ch) {
			continue
		}
		bindings = append(bindings, &Binding{
			Key:     ch,
			Handler: g.makeFilterCharAction(ch),
		})
	}

	return bindings
}

// mouseBindings - click handlers
func (g *Gui) mouseBindings() []*Binding {
	return []*Binding{
		{Key: gocui.MouseLeft, ViewName: g.views.helpModal, Handler: g.doHelpClick},
		{Key: gocui.MouseLeft, ViewName: g.views.settings, Handler: g.doSettingsClick},
		{Key: gocui.MouseLeft, ViewName: g.views.selected, Handler: g.doSelectedClick},
		{Key: gocui.MouseLeft, ViewName: g.views.catalog, Handler: g.doCatalogClick},
		{Key: gocui.MouseLeft, ViewName: g.views.output, Handler: g.doOutputClick},
		{Key: gocui.MouseLeft, ViewName: g.views.commands, Handler: g.doOutsideClick},
		{Key: gocui.MouseLeft, ViewName: g.views.help, Handler: g.doOutsideClick},
		{Key: gocui.MouseLeft, ViewName: g.views.background, Handler: g.doOutsideClick},
	}
}
