package model

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveAndLoadCompanyProfile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "company.json")

	profile := DefaultCompanyProfile()
	profile.Name = "ACME ROOFING"
	profile.Phone = "(555) 010-0200"
	profile.Terms = []string{"Payment due on completion."}

	if err := SaveCompanyProfile(path, profile); err != nil {
		t.Fatalf("SaveCompanyProfile failed: %v", err)
	}

	loaded, err := LoadCompanyProfile(path)
	if err != nil {
		t.Fatalf("LoadCompanyProfile failed: %v", err)
	}

	if loaded.Name != "ACME ROOFING" {
		t.Errorf("expected Name=ACME ROOFING, got %s", loaded.Name)
	}
	if loaded.Phone != "(555) 010-0200" {
		t.Errorf("expected Phone=(555) 010-0200, got %s", loaded.Phone)
	}
	if len(loaded.Terms) != 1 {
		t.Errorf("expected 1 term, got %d", len(loaded.Terms))
	}
}

func TestLoadCompanyProfileMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent", "company.json")

	profile, err := LoadCompanyProfile(path)
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}

	defaults := DefaultCompanyProfile()
	if profile.Name != defaults.Name {
		t.Errorf("expected default name %s, got %s", defaults.Name, profile.Name)
	}
	if len(profile.Terms) != len(defaults.Terms) {
		t.Errorf("expected %d default terms, got %d", len(defaults.Terms), len(profile.Terms))
	}
}

func TestLoadCompanyProfileInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "company.json")

	if err := os.WriteFile(path, []byte("not valid json{{{"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadCompanyProfile(path)
	if err == nil {
		t.Fatal("expected error for invalid JSON, got nil")
	}
}

func TestSaveCompanyProfileCreatesDirectories(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "dir", "company.json")

	if err := SaveCompanyProfile(path, DefaultCompanyProfile()); err != nil {
		t.Fatalf("SaveCompanyProfile should create parent dirs: %v", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("profile file was not created")
	}
}

func TestLoadCompanyProfileNilTerms(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "company.json")

	data := []byte(`{"name":"ROOF TROOPS","terms":null}`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	profile, err := LoadCompanyProfile(path)
	if err != nil {
		t.Fatalf("LoadCompanyProfile failed: %v", err)
	}
	if profile.Terms == nil {
		t.Error("Terms should not be nil after loading")
	}
}

func TestDefaultCompanyProfileBranding(t *testing.T) {
	profile := DefaultCompanyProfile()
	if profile.Name != "ROOF TROOPS" {
		t.Errorf("unexpected company name %q", profile.Name)
	}
	if profile.Website != "www.rooftroopsroofing.com" {
		t.Errorf("unexpected website %q", profile.Website)
	}
	if len(profile.Terms) != 6 {
		t.Errorf("expected 6 terms paragraphs, got %d", len(profile.Terms))
	}
}
