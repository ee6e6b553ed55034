// Package menu holds the ordered model behind the tray menu.
//
// The sequence is laid out as
//
//	[leading static items] [container entries] [separator] [trailing actions]
//
// Container entries are kept in case-sensitive lexical order of their labels.
// Only the container section is ever rebuilt; the static items and the
// separator are fixed at construction.
package menu

import (
	"slices"

	"github.com/auto-dns/docker-indicator/internal/domain"
)

type Kind int

const (
	KindAction Kind = iota
	KindContainer
	KindSeparator
)

// Handler is the typed callback attached to an item. It runs on the UI loop.
type Handler func()

type Item struct {
	Kind      Kind
	Label     string
	Tooltip   string
	Checked   bool
	Container domain.ContainerRef
	Handler   Handler
}

// Activate invokes the item's handler, if any.
func (i Item) Activate() {
	if i.Handler != nil {
		i.Handler()
	}
}

type Menu struct {
	items      []Item
	leading    int
	containers int
}

func New(leading, trailing []Item) *Menu {
	items := make([]Item, 0, len(leading)+1+len(trailing))
	items = append(items, leading...)
	items = append(items, Item{Kind: KindSeparator})
	items = append(items, trailing...)
	return &Menu{
		items:   items,
		leading: len(leading),
	}
}

// SeparatorIndex is the current position of the separator marker.
func (m *Menu) SeparatorIndex() int {
	return m.leading + m.containers
}

// RemoveContainers drops every container entry, identified by position.
func (m *Menu) RemoveContainers() {
	if m.containers == 0 {
		return
	}
	from, to := m.leading, m.SeparatorIndex()
	m.items = slices.Delete(m.items, from, to)
	m.containers = 0
}

// InsertOrdered places item among the container entries so they stay sorted,
// scanning from the first slot after the leading block and stopping at the
// first entry whose label is greater. Equal labels therefore land after the
// existing run. It returns the index the item was inserted at.
func (m *Menu) InsertOrdered(item Item) int {
	item.Kind = KindContainer

	i, end := m.leading, m.SeparatorIndex()
	for i < end && item.Label >= m.items[i].Label {
		i++
	}

	m.items = append(m.items, Item{})
	copy(m.items[i+1:], m.items[i:])
	m.items[i] = item
	m.containers++
	return i
}

// Items returns a copy of the whole sequence, separator included.
func (m *Menu) Items() []Item {
	return append([]Item(nil), m.items...)
}

// Containers returns a copy of the container entries in display order.
func (m *Menu) Containers() []Item {
	return append([]Item(nil), m.items[m.leading:m.SeparatorIndex()]...)
}

func (m *Menu) Leading() []Item {
	return append([]Item(nil), m.items[:m.leading]...)
}

func (m *Menu) Trailing() []Item {
	return append([]Item(nil), m.items[m.SeparatorIndex()+1:]...)
}

// Len is the number of container entries.
func (m *Menu) Len() int {
	return m.containers
}

// IsSorted reports whether items are in non-decreasing label order.
func IsSorted(items []Item) bool {
	for i := 1; i < len(items); i++ {
		if items[i].Label < items[i-1].Label {
			return false
		}
	}
	return true
}
