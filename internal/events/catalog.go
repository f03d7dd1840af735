// Package events holds the catalog of visitable sites and events that back
// ticket purchases. The catalog ships with built-in entries and can be
// replaced wholesale from a YAML file.
package events

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Event is a visitable site or exhibition tickets can be reserved for.
// Price is in TND; a zero price means free entry.
type Event struct {
	ID       string  `yaml:"id" json:"id"`
	Title    string  `yaml:"title" json:"title"`
	Location string  `yaml:"location" json:"location"`
	Price    float64 `yaml:"price" json:"price"`
	ImageURL string  `yaml:"image_url,omitempty" json:"image_url,omitempty"`
}

// Free reports whether the event has no entry fee.
func (e Event) Free() bool { return e.Price == 0 }

// defaults seed the catalog when no file is supplied.
var defaults = []Event{
	{ID: "carthage", Title: "Archaeological Site of Carthage", Location: "Carthage, Tunis Governorate", Price: 12},
	{ID: "el-jem", Title: "El Jem Amphitheatre", Location: "El Jem, Mahdia Governorate", Price: 12},
	{ID: "bardo", Title: "Bardo National Museum", Location: "Tunis", Price: 13},
	{ID: "dougga", Title: "Dougga Archaeological Site", Location: "Téboursouk, Béja Governorate", Price: 8},
	{ID: "kairouan-medina", Title: "Medina of Kairouan Walking Tour", Location: "Kairouan", Price: 0},
}

// Catalog is an immutable lookup of events by id.
type Catalog struct {
	byID  map[string]Event
	order []string
}

func newCatalog(events []Event) (*Catalog, error) {
	c := &Catalog{byID: make(map[string]Event, len(events))}
	for _, e := range events {
		if e.ID == "" || e.Title == "" {
			return nil, fmt.Errorf("event needs both an id and a title: %+v", e)
		}
		if _, dup := c.byID[e.ID]; dup {
			return nil, fmt.Errorf("duplicate event id %q", e.ID)
		}
		c.byID[e.ID] = e
		c.order = append(c.order, e.ID)
	}
	return c, nil
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := newCatalog(defaults)
	if err != nil {
		// The built-in table is validated by tests; this cannot happen at runtime.
		panic(err)
	}
	return c
}

// LoadCatalog reads events from a YAML file. An empty path falls back to
// the built-in catalog.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read events file: %w", err)
	}

	var file struct {
		Events []Event `yaml:"events"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse events file: %w", err)
	}
	if len(file.Events) == 0 {
		return nil, fmt.Errorf("events file %s contains no events", path)
	}

	return newCatalog(file.Events)
}

// Get looks an event up by id.
func (c *Catalog) Get(id string) (Event, bool) {
	e, ok := c.byID[id]
	return e, ok
}

// All returns the events in catalog order.
func (c *Catalog) All() []Event {
	out := make([]Event, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}

// IDs returns the event ids in catalog order.
func (c *Catalog) IDs() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}
