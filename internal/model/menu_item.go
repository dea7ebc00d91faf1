package model

// MenuItem represents one sellable item on the menu.
type MenuItem struct {
	ID    int64  `json:"item_id" db:"item_id"`
	Name  string `json:"item_name" db:"item_name"`
	Price Price  `json:"price" db:"price"`
}

// CreatedMenuItem is what an insert returns: the assigned id and the stored name.
type CreatedMenuItem struct {
	ID   int64  `json:"item_id" db:"item_id"`
	Name string `json:"item_name" db:"item_name"`
}

// CreateMenuItemRequest is the body accepted by POST /api/menu-items.
type CreateMenuItemRequest struct {
	ItemName string `json:"item_name" validate:"required,notblank,max=100"`
}
