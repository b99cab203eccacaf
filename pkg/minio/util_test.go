package minio

import (
	"errors"
	"strings"
	"testing"
	"time"

	"insight-srv/config"
)

func TestValidateConfig(t *testing.T) {
	t.Run("appends default port", func(t *testing.T) {
		cfg := &config.MinIOConfig{Endpoint: "localhost", AccessKey: "a", SecretKey: "s", Region: "us-east-1"}
		if err := validateConfig(cfg); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Endpoint != "localhost"+DefaultEndpointPort {
			t.Errorf("Endpoint = %q, want %q", cfg.Endpoint, "localhost"+DefaultEndpointPort)
		}
	})

	t.Run("missing access key", func(t *testing.T) {
		cfg := &config.MinIOConfig{Endpoint: "localhost:9000", SecretKey: "s", Region: "r"}
		if err := validateConfig(cfg); err == nil {
			t.Fatal("expected error for missing access key")
		}
	})
}

func TestValidateBucketName(t *testing.T) {
	tests := []struct {
		name    string
		bucket  string
		wantErr bool
	}{
		{"valid", "insight-reports", false},
		{"too short", "ab", true},
		{"uppercase", "Reports", true},
		{"double hyphen", "a--b", true},
		{"leading hyphen", "-abc", true},
		{"too long", strings.Repeat("a", 64), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateBucketName(tt.bucket)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateBucketName(%q) error = %v, wantErr %v", tt.bucket, err, tt.wantErr)
			}
		})
	}
}

func TestValidateUploadRequest(t *testing.T) {
	base := func() *UploadRequest {
		return &UploadRequest{
			BucketName:  "insight-reports",
			ObjectName:  "reports/u1/r1.md",
			Reader:      strings.NewReader("# report"),
			Size:        8,
			ContentType: "text/markdown",
		}
	}

	if err := validateUploadRequest(base()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := base()
	req.ObjectName = "/leading"
	if err := validateUploadRequest(req); err == nil {
		t.Error("expected error for leading slash")
	}

	req = base()
	req.Size = 0
	if err := validateUploadRequest(req); err == nil {
		t.Error("expected error for zero size")
	}
}

func TestValidatePresignedURLRequest(t *testing.T) {
	req := &PresignedURLRequest{BucketName: "b", ObjectName: "o", Method: MethodGET, Expiry: time.Hour}
	if err := validatePresignedURLRequest(req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req.Expiry = 8 * 24 * time.Hour
	if err := validatePresignedURLRequest(req); err == nil {
		t.Error("expected error for expiry above 7 days")
	}
}

func TestIsNotFound(t *testing.T) {
	if !IsNotFound(NewObjectNotFoundError("x")) {
		t.Error("object not found should be detected")
	}
	if IsNotFound(NewConnectionError(errors.New("boom"))) {
		t.Error("connection error is not a not-found")
	}
	if IsNotFound(errors.New("plain")) {
		t.Error("plain error is not a not-found")
	}
}
