package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.SchemaPath != "db/schemas.json" {
		t.Errorf("Expected schema_path to be 'db/schemas.json', got '%s'", config.SchemaPath)
	}

	if config.OutputPath != "data/generated" {
		t.Errorf("Expected output_path to be 'data/generated', got '%s'", config.OutputPath)
	}

	if config.Generate.Mode != "lite" {
		t.Errorf("Expected default mode to be 'lite', got '%s'", config.Generate.Mode)
	}

	if config.Generate.Format != "json" {
		t.Errorf("Expected default format to be 'json', got '%s'", config.Generate.Format)
	}
}

func TestValidate(t *testing.T) {
	config := DefaultConfig()
	if err := config.Validate(); err != nil {
		t.Errorf("Expected default config to be valid, got %v", err)
	}

	config.Generate.Format = "xml"
	if err := config.Validate(); err == nil {
		t.Error("Expected unsupported format to fail validation, but it passed")
	}

	config = DefaultConfig()
	config.OutputPath = ""
	if err := config.Validate(); err == nil {
		t.Error("Expected empty output_path to fail validation, but it passed")
	}
}

func TestInitializeProject(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "seedforge-test")
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}
	defer os.RemoveAll(tempDir)

	originalDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get current directory: %v", err)
	}
	defer os.Chdir(originalDir)

	if err := os.Chdir(tempDir); err != nil {
		t.Fatalf("Failed to change to temp directory: %v", err)
	}

	if err := InitializeProject(); err != nil {
		t.Fatalf("Failed to initialize project: %v", err)
	}

	configPath := filepath.Join(tempDir, ConfigFileName)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Errorf("Config file was not created at %s", configPath)
	}

	dirs := []string{"data/generated", "db"}
	for _, dir := range dirs {
		dirPath := filepath.Join(tempDir, dir)
		if _, err := os.Stat(dirPath); os.IsNotExist(err) {
			t.Errorf("Directory %s was not created", dir)
		}
	}

	// Second initialization must fail
	if err := InitializeProject(); err == nil {
		t.Error("Expected second initialization to fail, but it succeeded")
	}
}

func TestIsInitialized(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "seedforge-test")
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}
	defer os.RemoveAll(tempDir)

	originalDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get current directory: %v", err)
	}
	defer os.Chdir(originalDir)

	if err := os.Chdir(tempDir); err != nil {
		t.Fatalf("Failed to change to temp directory: %v", err)
	}

	if IsInitialized() {
		t.Error("Expected project to not be initialized, but it was")
	}

	configPath := filepath.Join(tempDir, ConfigFileName)
	if err := os.WriteFile(configPath, []byte("{}"), 0644); err != nil {
		t.Fatalf("Failed to create config file: %v", err)
	}

	if !IsInitialized() {
		t.Error("Expected project to be initialized, but it wasn't")
	}
}
