package model

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// CompanyProfile holds the contractor branding printed on every quote:
// letterhead, contact lines, license number, and the terms paragraphs.
type CompanyProfile struct {
	Name        string   `json:"name"`
	AddressLine string   `json:"address_line"`
	Phone       string   `json:"phone"`
	Email       string   `json:"email"`
	Website     string   `json:"website"`
	License     string   `json:"license"`
	Terms       []string `json:"terms"`
}

// DefaultCompanyProfile returns the built-in Roof Troops letterhead.
func DefaultCompanyProfile() CompanyProfile {
	return CompanyProfile{
		Name:        "ROOF TROOPS",
		AddressLine: "2200 Bradley Avenue, Louisville, KY 40217",
		Phone:       "(574) 370-6742",
		Email:       "contact@rooftroopsroofing.com",
		Website:     "www.rooftroopsroofing.com",
		License:     "123456",
		Terms: []string{
			"Roof Troops is not responsible for wood that has tended to rot and may need to be replaced.",
			"Remove any items that may be damaged by vibrations during install.",
			"Roof Troops is not qualified to handle hazardous waste products. We will do our best to protect and reschedule if hazardous waste removal is necessary.",
			"Roof Troops may pursue reimbursement from any insurer for code upgrades or other expenses. Such payments may affect the final invoice amount, but are NOT an obligation of the insured.",
			"All work is subject to weather conditions and material availability.",
			"Surplus materials are the property of Roof Troops.",
		},
	}
}

// DefaultProfileDir returns the default directory for service configuration.
// On all platforms this is ~/.rooftroops/
func DefaultProfileDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".rooftroops")
}

// DefaultProfilePath returns the default path for the company profile file.
func DefaultProfilePath() string {
	return filepath.Join(DefaultProfileDir(), "company.json")
}

// SaveCompanyProfile persists a profile to the given path as JSON.
// It creates any missing parent directories automatically.
func SaveCompanyProfile(path string, profile CompanyProfile) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadCompanyProfile reads a profile from the given path.
// If the file does not exist, it returns DefaultCompanyProfile with no error.
func LoadCompanyProfile(path string) (CompanyProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultCompanyProfile(), nil
		}
		return CompanyProfile{}, err
	}
	var profile CompanyProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return CompanyProfile{}, err
	}
	// Ensure Terms is never nil
	if profile.Terms == nil {
		profile.Terms = []string{}
	}
	return profile, nil
}
