package model

import "time"

// VendorAccountModel mirrors the 'vendor_accounts' table. It is the login
// identity a vendor profile hangs off.
type VendorAccountModel struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	Email          string `gorm:"type:varchar(255);uniqueIndex;not null"`
	HashedPassword string `gorm:"type:varchar(255);not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Profile *VendorProfileModel `gorm:"foreignKey:AccountID"`
}

// TableName explicitly sets the table name for GORM.
func (VendorAccountModel) TableName() string {
	return "vendor_accounts"
}

// VendorProfileModel mirrors the 'vendors' table. AccountID is unique so each
// account owns at most one profile. Location is nullable; profiles without a
// geocoded address simply never match radius searches.
type VendorProfileModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	AccountID   int64     `gorm:"uniqueIndex;not null"`
	CompanyName string    `gorm:"type:varchar(255);not null"`
	Category    string    `gorm:"type:varchar(50);not null"`
	Country     string    `gorm:"type:varchar(100);not null"`
	City        string    `gorm:"type:varchar(100);not null"`
	Postcode    string    `gorm:"type:varchar(20);not null"`
	Address     string    `gorm:"type:varchar(255);not null"`
	Location    *GeoPoint `gorm:"type:geometry(Point,4326)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (VendorProfileModel) TableName() string {
	return "vendors"
}
