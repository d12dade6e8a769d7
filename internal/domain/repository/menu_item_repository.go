package repository

import "github.com/jenil-sutariya/Smart-Kitchen-AI/internal/domain/entity"

// MenuItemRepository define el puerto de productos del menú y sus recetas.
type MenuItemRepository interface {
	Create(m *entity.MenuItem) error
	CreateIngredient(i *entity.MenuItemIngredient) error
	GetByID(id string) (*entity.MenuItem, error)
	GetIngredients(menuItemID string) ([]*entity.MenuItemIngredient, error)
	List(limit, offset int) ([]*entity.MenuItem, int, error)
}
