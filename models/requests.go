package models

// SignupRequest is the payload for creating a new account.
// Password complexity is enforced by the "password" validation rule:
// at least 8 characters with one upper-case letter, one lower-case letter,
// one digit and one symbol.
type SignupRequest struct {
	Name     string `json:"name" validate:"required,min=5,max=50"`
	Email    string `json:"email" validate:"required,min=5,max=255,email"`
	Password string `json:"password" validate:"required,password"`
}

// LoginRequest is the payload for authenticating an existing account.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,min=5,max=255,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// SearchRequest selects products by a free-text term. Type discriminates
// which field the term applies to; an empty or unknown Type searches
// title, description and category together.
type SearchRequest struct {
	Term string `json:"term" validate:"required"`
	Type string `json:"type"`
}

// CustomerUpdate carries a partial customer modification. Nil fields were
// omitted from the request and must be left untouched by the update.
type CustomerUpdate struct {
	Name     *string  `json:"name" validate:"omitempty,min=1"`
	Username *string  `json:"username" validate:"omitempty,min=1"`
	Email    *string  `json:"email" validate:"omitempty,email"`
	Address  *Address `json:"address"`
	Phone    *string  `json:"phone" validate:"omitempty,min=1"`
	Website  *string  `json:"website" validate:"omitempty,min=1"`
	Company  *Company `json:"company"`
}

// ProductUpdate carries a partial product modification. Nil fields were
// omitted from the request and must be left untouched by the update.
type ProductUpdate struct {
	Title       *string   `json:"title" validate:"omitempty,min=1"`
	Price       *float64  `json:"price" validate:"omitempty,gt=0"`
	Description *string   `json:"description" validate:"omitempty,min=1"`
	Category    *Category `json:"category" validate:"omitempty,category"`
	Image       *string   `json:"image" validate:"omitempty,url"`
	Rating      *Rating   `json:"rating"`
}

// PostUpdate carries a partial post modification. Nil fields were omitted
// from the request and must be left untouched by the update.
type PostUpdate struct {
	CustomerID *int64  `json:"customer" validate:"omitempty,gt=0"`
	Title      *string `json:"title" validate:"omitempty,min=1"`
	Body       *string `json:"body" validate:"omitempty,min=1"`
}
