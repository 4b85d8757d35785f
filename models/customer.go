package models

// Geo holds the coordinates of a customer address. Both values are kept as
// strings because upstream data sources deliver them unparsed.
type Geo struct {
	Lat string `json:"lat" validate:"required"`
	Lng string `json:"lng" validate:"required"`
}

// Address is the postal address of a customer.
type Address struct {
	Street  string `json:"street" validate:"required"`
	Suite   string `json:"suite" validate:"required"`
	City    string `json:"city" validate:"required"`
	Zipcode string `json:"zipcode" validate:"required"`
	Geo     Geo    `json:"geo" validate:"required"`
}

// Company describes the organisation a customer belongs to.
type Company struct {
	Name        string `json:"name" validate:"required"`
	CatchPhrase string `json:"catchPhrase" validate:"required"`
	BS          string `json:"bs" validate:"required"`
}

// Customer is a directory entry with a unique username and email.
// Phone is stored canonicalized to E.164 after input normalization.
type Customer struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name" validate:"required"`
	Username string  `json:"username" validate:"required"`
	Email    string  `json:"email" validate:"required,email"`
	Address  Address `json:"address" validate:"required"`
	Phone    string  `json:"phone" validate:"required"`
	Website  string  `json:"website" validate:"required"`
	Company  Company `json:"company" validate:"required"`
}

// TableName returns the name of the database table
// associated with the Customer model.
func (c Customer) TableName() string {
	return "customers"
}
