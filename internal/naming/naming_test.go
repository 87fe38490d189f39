package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTargetPath(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"png", "/g/a.png", "/g/a.webp"},
		{"jpeg", "/g/Photo.JPEG", "/g/Photo.webp"},
		{"stem case kept", "/g/MiXeD.Jpg", "/g/MiXeD.webp"},
		{"already webp", "/g/a.webp", "/g/a.webp"},
		{"uppercase webp stays in place", "/g/a.WEBP", "/g/a.WEBP"},
		{"dots in stem", "/g/v1.2.final.png", "/g/v1.2.final.webp"},
		{"dotted directory", "/g.d/a.png", "/g.d/a.webp"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TargetPath(tt.in, ".webp"))
		})
	}
}

func TestTargetClaims_FirstWins(t *testing.T) {
	tc := NewTargetClaims([]string{"/g/a.jpg", "/g/a.png"}, ".webp")

	owner, ok := tc.Claim("/g/a.jpg", "/g/a.webp")
	assert.True(t, ok)
	assert.Empty(t, owner)

	owner, ok = tc.Claim("/g/a.png", "/g/a.webp")
	assert.False(t, ok)
	assert.Equal(t, "/g/a.jpg", owner)

	// Re-claiming by the owner is fine.
	_, ok = tc.Claim("/g/a.jpg", "/g/a.webp")
	assert.True(t, ok)
}

func TestTargetClaims_ExistingWebPOwnsItself(t *testing.T) {
	tc := NewTargetClaims([]string{"/g/a.png", "/g/a.webp"}, ".webp")

	owner, ok := tc.Claim("/g/a.png", "/g/a.webp")
	assert.False(t, ok)
	assert.Equal(t, "/g/a.webp", owner)

	_, ok = tc.Claim("/g/a.webp", "/g/a.webp")
	assert.True(t, ok)
}
