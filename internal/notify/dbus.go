package notify

import (
	"fmt"
	"sync"

	"github.com/esiqveland/notify"
	"github.com/godbus/dbus/v5"
)

type sendFunc func(notify.Notification) (uint32, error)

// DBusBackend talks to org.freedesktop.Notifications and reuses the id of the
// last notification so the server replaces it in place.
type DBusBackend struct {
	appName string
	conn    *dbus.Conn
	send    sendFunc

	mu sync.Mutex
	id uint32
}

func NewDBusBackend(appName string) (*DBusBackend, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, fmt.Errorf("connect session bus: %w", err)
	}
	return &DBusBackend{
		appName: appName,
		conn:    conn,
		send: func(n notify.Notification) (uint32, error) {
			return notify.SendNotification(conn, n)
		},
	}, nil
}

func (b *DBusBackend) Show(title, body, icon string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	id, err := b.send(notify.Notification{
		AppName:       b.appName,
		ReplacesID:    b.id,
		AppIcon:       icon,
		Summary:       title,
		Body:          body,
		ExpireTimeout: notify.ExpireTimeoutSetByNotificationServer,
	})
	if err != nil {
		return fmt.Errorf("dbus notify: %w", err)
	}
	b.id = id
	return nil
}

func (b *DBusBackend) Close() error {
	if b.conn == nil {
		return nil
	}
	return b.conn.Close()
}
