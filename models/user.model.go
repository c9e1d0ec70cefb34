package models

// BankDetails is the nested bank block on the user profile. It is either fully
// present or absent; the server never returns a partial block.
type BankDetails struct {
	AccountNumber     string `json:"accountNumber" validate:"required,numeric,min=9,max=18"`
	IfscCode          string `json:"ifscCode" validate:"required,len=11"`
	BankName          string `json:"bankName" validate:"required"`
	Branch            string `json:"branch" validate:"required"`
	AccountHolderName string `json:"accountHolderName" validate:"required"`
	IsVerified        bool   `json:"isVerified"`
}

// User mirrors the profile document returned by the remote API.
type User struct {
	ID              string       `json:"_id"`
	FirstName       string       `json:"firstName,omitempty"`
	LastName        string       `json:"lastName,omitempty"`
	Phone           string       `json:"phone,omitempty"`
	PhoneVerified   bool         `json:"phoneVerified,omitempty"`
	Email           string       `json:"email,omitempty"`
	Aadhaar         string       `json:"aadhaar,omitempty"`
	AadhaarVerified bool         `json:"aadhaarVerified,omitempty"`
	Pan             string       `json:"pan,omitempty"`
	Roles           []string     `json:"roles,omitempty"`
	BankDetails     *BankDetails `json:"bankDetails,omitempty"`
}

// HasRole reports whether the user carries the given role.
func (u *User) HasRole(role string) bool {
	if u == nil {
		return false
	}
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// ProfileUpdate is the body of PUT /user/update. Only the fields present are changed.
type ProfileUpdate struct {
	Aadhaar     string       `json:"aadhaar,omitempty"`
	Pan         string       `json:"pan,omitempty"`
	BankDetails *BankDetails `json:"bankDetails,omitempty"`
}
