package domain

// ContainerRef identifies a container across reconciliations.
type ContainerRef struct {
	ID   string
	Name string
}

// ContainerSummary is a point-in-time snapshot from a container list query.
type ContainerSummary struct {
	ID        string
	Name      string
	IsRunning bool
}

func (c ContainerSummary) Ref() ContainerRef {
	return ContainerRef{ID: c.ID, Name: c.Name}
}
