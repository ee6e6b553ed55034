package core

import (
	"strings"

	"github.com/auto-dns/docker-indicator/internal/domain"
	"github.com/docker/docker/api/types/container"
)

const shortIDLen = 12

// shortID truncates a container ID the way the docker CLI displays it.
func shortID(id string) string {
	if len(id) > shortIDLen {
		return id[:shortIDLen]
	}
	return id
}

func fromContainerSummary(c container.Summary) domain.ContainerSummary {
	name := ""
	if len(c.Names) > 0 {
		name = strings.TrimPrefix(c.Names[0], "/")
	}
	return domain.ContainerSummary{
		ID:        c.ID,
		Name:      name,
		IsRunning: c.State == "running",
	}
}
