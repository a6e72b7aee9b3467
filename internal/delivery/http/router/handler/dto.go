// Package handler contains the HTTP handlers for the application.
package handler

import "helppro/internal/domain/entity"

// UserResponse is the public shape of a client user. The password hash never
// leaves the service.
type UserResponse struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name,omitempty"`
	Disabled bool   `json:"disabled"`
	Role     string `json:"role"`
}

func newUserResponse(user *entity.User) *UserResponse {
	return &UserResponse{
		ID:       user.ID,
		Email:    user.Email,
		FullName: user.FullName,
		Disabled: user.Disabled,
		Role:     string(user.Role),
	}
}

// VendorResponse is the public shape of a vendor profile. The stored point is
// de-projected into plain latitude/longitude floats; both are absent when the
// profile has no location.
type VendorResponse struct {
	ID          int64    `json:"id"`
	AccountID   int64    `json:"account_id"`
	CompanyName string   `json:"company_name"`
	Category    string   `json:"category"`
	Country     string   `json:"country"`
	City        string   `json:"city"`
	Postcode    string   `json:"postcode"`
	Address     string   `json:"address"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
}

func newVendorResponse(profile *entity.VendorProfile) *VendorResponse {
	resp := &VendorResponse{
		ID:          profile.ID,
		AccountID:   profile.AccountID,
		CompanyName: profile.CompanyName,
		Category:    string(profile.Category),
		Country:     profile.Country,
		City:        profile.City,
		Postcode:    profile.Postcode,
		Address:     profile.Address,
	}
	if profile.Location != nil {
		lat, lon := profile.Location.Latitude, profile.Location.Longitude
		resp.Latitude = &lat
		resp.Longitude = &lon
	}

	return resp
}

func newVendorResponses(profiles []*entity.VendorProfile) []*VendorResponse {
	responses := make([]*VendorResponse, 0, len(profiles))
	for _, profile := range profiles {
		responses = append(responses, newVendorResponse(profile))
	}

	return responses
}

// BulkUploadResponse reports the outcome of a CSV import.
type BulkUploadResponse struct {
	Created []int64  `json:"created"`
	Errors  []string `json:"errors,omitempty"`
}
