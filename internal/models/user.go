package models

// Profile is the single customer record of the storefront. It is
// overwritten wholesale on edit. Password holds a bcrypt hash;
// handlers blank it before responding.
type Profile struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"required,numeric,min=10,max=13"`
	Address     string `json:"address" validate:"required"`
	MemberSince string `json:"memberSince"`
	Password    string `json:"password,omitempty"`
}
