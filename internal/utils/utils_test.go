package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"Plain", "invoice.pdf", "invoice.pdf"},
		{"Spaces", "shipping label.pdf", "shipping-label.pdf"},
		{"PathStripped", "../../etc/passwd", "passwd"},
		{"WindowsPathStripped", `C:\files\label.png`, "label.png"},
		{"UnsafeRunes", "résumé (final).pdf", "r-sum-final-.pdf"},
		{"CollapsesDashes", "a---b.txt", "a-b.txt"},
		{"EmptyFallsBack", "   ", "file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeFilename(tt.in))
		})
	}
}

func TestPrincipalContext(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		p := Principal{ExternalID: "ext-1", Email: "jane@example.com", Name: "Jane"}
		ctx := SetPrincipal(context.Background(), p)

		got, ok := GetPrincipalFromContext(ctx)
		assert.True(t, ok)
		assert.Equal(t, p, got)
	})

	t.Run("Absent", func(t *testing.T) {
		_, ok := GetPrincipalFromContext(context.Background())
		assert.False(t, ok)
	})
}

func TestUserContext(t *testing.T) {
	ctx := SetUserContext(context.Background(), "user-1", "admin")

	id, ok := GetUserIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "user-1", id)
	assert.Equal(t, "admin", GetUserRoleFromContext(ctx))

	assert.Equal(t, "", GetUserRoleFromContext(context.Background()))
}
