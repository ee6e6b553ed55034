// Package tray renders the menu model into the system tray.
//
// The tray toolkit can only append items, so container rows are
// pre-allocated slots placed before the separator. Each render writes the
// ordered container entries into the slots front to back and hides the rest.
package tray

import (
	"fmt"

	"github.com/auto-dns/docker-indicator/internal/menu"
	"github.com/auto-dns/docker-indicator/internal/util"
	"github.com/rs/zerolog"
)

// slot is the subset of *systray.MenuItem the view drives.
type slot interface {
	SetTitle(title string)
	SetTooltip(tooltip string)
	Check()
	Uncheck()
	Show()
	Hide()
}

// Controller is the engine side of the tray: the UI loop and the static actions.
type Controller interface {
	Post(fn func()) error
	Actions() []menu.Item
}

type view struct {
	logger     zerolog.Logger
	name       string
	slots      []slot
	overflow   slot
	setTooltip func(string)

	// current is only touched on the UI loop.
	current []menu.Item
}

// Render writes the container entries into the slots. It runs on the UI loop.
func (v *view) Render(items []menu.Item) {
	v.current = items

	for i, s := range v.slots {
		if i >= len(items) {
			s.Hide()
			continue
		}
		it := items[i]
		s.SetTitle(it.Label)
		s.SetTooltip(it.Tooltip)
		if it.Checked {
			s.Check()
		} else {
			s.Uncheck()
		}
		s.Show()
	}

	if hidden := len(items) - len(v.slots); hidden > 0 {
		v.overflow.SetTitle(fmt.Sprintf("… and %d more", hidden))
		v.overflow.Show()
	} else {
		v.overflow.Hide()
	}

	running := util.Count(items, func(it menu.Item) bool { return it.Checked })
	v.setTooltip(fmt.Sprintf("%s: %d of %d running", v.name, running, len(items)))
}

// activate runs the handler of whatever entry currently occupies slot i.
func (v *view) activate(i int) {
	if i >= len(v.current) {
		v.logger.Debug().Int("slot", i).Msg("Click on empty slot")
		return
	}
	v.current[i].Activate()
}
