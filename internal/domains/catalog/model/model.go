package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	gModel "seatpos/shared/model"
	"seatpos/shared/money"
)

const (
	EntityName = "catalog"

	CacheKeyCategories        = "catalog:categories"
	CacheKeyCategory          = "catalog:category"
	CacheKeyGroups            = "catalog:groups"
	CacheKeyProductsByGroup   = "catalog:products-by-group"
	CacheKeyProductByCategory = "catalog:products-by-category"
	CacheKeyProduct           = "catalog:product"
	CacheKeySearch            = "catalog:search"
)

type Category struct {
	ID          gModel.ID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Images      []string  `json:"images,omitempty"`
}

type ProductGroup struct {
	ID          gModel.ID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Images      []string  `json:"images,omitempty"`
	CategoryID  gModel.ID `json:"categoryId,omitempty"`
}

// Option is an add-on a product can be ordered with. The remote service lists options either
// as bare names or as objects with a price.
type Option struct {
	ID    gModel.ID   `json:"id"`
	Name  string      `json:"name"`
	Price money.Money `json:"price"`
}

func (o *Option) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if len(data) > 0 && data[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return fmt.Errorf("option: %w", err)
		}

		*o = Option{ID: gModel.ID(name), Name: name}

		return nil
	}

	type plain Option

	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("option: %w", err)
	}

	*o = Option(p)

	return nil
}

// Product is a menu item or, when Rental is set, a device rented by the minute.
type Product struct {
	ID          gModel.ID   `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Price       money.Money `json:"price"`
	Images      []string    `json:"images,omitempty"`
	Options     []Option    `json:"options,omitempty"`
	Rental      bool        `json:"rental"`
	Active      bool        `json:"active"`
	GroupID     gModel.ID   `json:"groupId,omitempty"`
	CategoryID  gModel.ID   `json:"categoryId,omitempty"`
}

// Option returns the option with the given id.
func (p Product) Option(id string) (Option, bool) {
	for _, option := range p.Options {
		if option.ID.String() == id {
			return option, true
		}
	}

	return Option{}, false
}
