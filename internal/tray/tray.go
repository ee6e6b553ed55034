package tray

import (
	"fyne.io/systray"
	"github.com/rs/zerolog"
)

// Tray owns the system tray icon and menu.
type Tray struct {
	view
	icon      []byte
	slotCount int
}

func New(name string, icon []byte, slotCount int, logger zerolog.Logger) *Tray {
	return &Tray{
		view: view{
			logger:     logger,
			name:       name,
			setTooltip: systray.SetTooltip,
		},
		icon:      icon,
		slotCount: slotCount,
	}
}

// Run builds the menu and blocks until Quit. It must be called from the main
// goroutine. onReady runs once the menu exists; onExit runs as the tray closes.
func (t *Tray) Run(ctrl Controller, onReady, onExit func()) {
	systray.Run(func() {
		t.build(ctrl)
		onReady()
	}, onExit)
}

func (t *Tray) Quit() {
	systray.Quit()
}

func (t *Tray) build(ctrl Controller) {
	systray.SetIcon(t.icon)
	systray.SetTooltip(t.name)

	for i := 0; i < t.slotCount; i++ {
		item := systray.AddMenuItemCheckbox("", "", false)
		item.Hide()
		t.slots = append(t.slots, item)

		i := i
		go t.forwardClicks(ctrl, item.ClickedCh, func() { t.activate(i) })
	}

	overflow := systray.AddMenuItem("", "")
	overflow.Disable()
	overflow.Hide()
	t.overflow = overflow

	systray.AddSeparator()

	for _, action := range ctrl.Actions() {
		item := systray.AddMenuItem(action.Label, action.Tooltip)
		go t.forwardClicks(ctrl, item.ClickedCh, action.Activate)
	}
}

// forwardClicks moves clicks from the toolkit's goroutine onto the UI loop.
func (t *Tray) forwardClicks(ctrl Controller, clicked <-chan struct{}, fn func()) {
	for range clicked {
		if err := ctrl.Post(fn); err != nil {
			t.logger.Debug().Err(err).Msg("Dropping click, UI loop closed")
			return
		}
	}
}
