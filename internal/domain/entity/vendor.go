package entity

// Category is the closed set of professions a vendor can list under.
type Category string

const (
	CategoryHaircut    Category = "haircut"
	CategoryBeautician Category = "beautician"
	CategoryPlumber    Category = "plumber"
	CategoryMason      Category = "mason"
)

// IsValid reports whether the category is one of the known values.
func (c Category) IsValid() bool {
	switch c {
	case CategoryHaircut, CategoryBeautician, CategoryPlumber, CategoryMason:
		return true
	}

	return false
}

// VendorAccount is the authentication identity for a vendor. It owns at most
// one VendorProfile, enforced by a uniqueness constraint on the profile's
// account reference.
type VendorAccount struct {
	ID             int64
	Email          string
	HashedPassword string
}

// VendorFields are the profile attributes shared by every request/response
// variant. Create inputs and stored profiles embed it rather than redefining
// the field list.
type VendorFields struct {
	CompanyName string
	Category    Category
	Country     string
	City        string
	Postcode    string
	Address     string
}

// VendorProfile is a vendor's public business listing. Location is nil when
// the profile was stored without a resolvable address.
type VendorProfile struct {
	ID        int64
	AccountID int64
	VendorFields
	Location *GeoPoint
}
