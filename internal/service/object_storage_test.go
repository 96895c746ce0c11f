package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeObjectPath(t *testing.T) {
	svc := &objectStorageService{bucket: "portfolio"}

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			"presigned upload URL",
			"https://storage.example.com/portfolio/uploads/abc-123?X-Amz-Signature=deadbeef",
			"/objects/uploads/abc-123",
		},
		{
			"already canonical",
			"/objects/uploads/abc-123",
			"/objects/uploads/abc-123",
		},
		{
			"unrecognized value passes through",
			"https://example.com/somewhere/else.png",
			"https://example.com/somewhere/else.png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.NormalizeObjectPath(tt.raw))
		})
	}
}
