package service

import (
	"testing"

	"github.com/kimo/alma-take-home-assignment/config"
)

func TestNewMinioStorage(t *testing.T) {
	cfg := &config.MinioConfig{
		Endpoint:  "localhost:9000",
		AccessKey: "test",
		SecretKey: "test",
		Bucket:    "resumes",
		UseSSL:    false,
	}

	// Client construction does not dial; it only validates the endpoint.
	storage, err := NewMinioStorage(cfg)
	if err != nil {
		t.Fatalf("Failed to create minio storage: %v", err)
	}
	if storage == nil {
		t.Fatal("Expected non-nil storage")
	}
}

func TestNewMinioStorageInvalidEndpoint(t *testing.T) {
	cfg := &config.MinioConfig{
		Endpoint: "http://not a host",
		Bucket:   "resumes",
	}

	if _, err := NewMinioStorage(cfg); err == nil {
		t.Error("Expected error for malformed endpoint")
	}
}

// Bucket and object operations need a live MinIO; they are covered by the
// local backend tests through the shared ResumeStorage interface.
var _ ResumeStorage = (*MinioStorage)(nil)
