package domain

type Product struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	Image      string `json:"image,omitempty"` // empty string means no image stored
	CategoryID int    `json:"category_id"`
}

type Category struct {
	ID       int       `json:"id"`
	Name     string    `json:"name"`
	Image    string    `json:"image,omitempty"`
	Products []Product `json:"products,omitempty"` // populated by GetCategoryByID, insertion order
}
