package connections

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConnection_Valid(t *testing.T) {
	future := time.Now().Add(time.Hour)
	past := time.Now().Add(-time.Hour)

	tests := []struct {
		name string
		conn Connection
		want bool
	}{
		{
			name: "active with unexpired token",
			conn: Connection{Active: true, AccessToken: "tok", TokenExpiresAt: &future},
			want: true,
		},
		{
			name: "active with no expiry at all",
			conn: Connection{Active: true, AccessToken: "tok"},
			want: true,
		},
		{
			name: "inactive",
			conn: Connection{Active: false, AccessToken: "tok", TokenExpiresAt: &future},
			want: false,
		},
		{
			name: "expired token",
			conn: Connection{Active: true, AccessToken: "tok", TokenExpiresAt: &past},
			want: false,
		},
		{
			name: "missing token",
			conn: Connection{Active: true, TokenExpiresAt: &future},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.conn.Valid())
		})
	}
}
