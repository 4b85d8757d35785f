package models

// Post is a short text entry published by a customer.
type Post struct {
	ID         int64  `json:"id"`
	CustomerID int64  `json:"customer" validate:"required,gt=0"`
	Title      string `json:"title" validate:"required"`
	Body       string `json:"body" validate:"required"`
}

// TableName returns the name of the database table
// associated with the Post model.
func (p Post) TableName() string {
	return "posts"
}
