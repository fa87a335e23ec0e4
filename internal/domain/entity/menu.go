// Package entity contains the core business objects of the project.
package entity

import "encoding/json"

// MenuSection is one category of the public menu with its products in display order.
type MenuSection struct {
	Category *Category  `json:"category"`
	Products []*Product `json:"products"`
}

// PublicMenu is the customer-facing menu, ordered by category name then product name.
type PublicMenu struct {
	Sections []MenuSection
}

// ByCategory maps each category name to its ordered products.
func (m *PublicMenu) ByCategory() map[string][]*Product {
	byCategory := make(map[string][]*Product, len(m.Sections))
	for _, section := range m.Sections {
		byCategory[section.Category.Name] = section.Products
	}

	return byCategory
}

type publicMenuJSON struct {
	Sections   []MenuSection         `json:"sections"`
	ByCategory map[string][]*Product `json:"byCategory,omitempty"`
}

// MarshalJSON emits both the ordered sections and the name-keyed map.
func (m PublicMenu) MarshalJSON() ([]byte, error) {
	sections := m.Sections
	if sections == nil {
		sections = []MenuSection{}
	}

	return json.Marshal(publicMenuJSON{
		Sections:   sections,
		ByCategory: m.ByCategory(),
	})
}

// UnmarshalJSON restores the menu from its ordered sections.
func (m *PublicMenu) UnmarshalJSON(data []byte) error {
	var raw publicMenuJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	m.Sections = raw.Sections

	return nil
}
