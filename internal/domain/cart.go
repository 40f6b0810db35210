package domain

// Cart represents a customer order in progress.
type Cart struct {
	ID    int        `json:"id"`
	Items []CartItem `json:"items"`
}

// CartItem is a single line item in a cart. ProductID references a product
// by value only; existence is not enforced.
type CartItem struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

// FindItemIndex returns the index of the line item matching the given product ID.
// Returns -1 if not found. This provides O(n) search but centralizes the logic
// for easier optimization later.
func (c *Cart) FindItemIndex(productID int) int {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// AddProduct adds one unit of the given product to the cart: it increments the
// quantity of the existing line item, or appends a new one with quantity 1.
// First-seen order of line items is preserved.
func (c *Cart) AddProduct(productID int) {
	if i := c.FindItemIndex(productID); i >= 0 {
		c.Items[i].Quantity++
		return
	}
	c.Items = append(c.Items, CartItem{ProductID: productID, Quantity: 1})
}

// ItemCount returns the total number of units across all line items.
func (c *Cart) ItemCount() int {
	var count int
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}
