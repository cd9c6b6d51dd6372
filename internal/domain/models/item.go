package models

import "fmt"

// Item is a marketplace catalog listing
type Item struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Available   bool   `json:"available"`
}

// DisplayName returns a human-friendly label for the item
func (i *Item) DisplayName() string {
	if i.Name != "" {
		return fmt.Sprintf("%s (%s)", i.Name, i.ID)
	}
	return i.ID
}
