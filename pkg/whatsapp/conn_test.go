package whatsapp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConn_Lifecycle(t *testing.T) {
	c := NewConn()
	assert.Equal(t, Disconnected, c.State)

	require.NoError(t, c.Connect("+91-98765-43210"))
	assert.Equal(t, Pending, c.State)
	assert.Equal(t, "919876543210", c.Phone)

	require.NoError(t, c.Acknowledge("919876543210"))
	assert.Equal(t, Connected, c.State)

	c.Disconnect()
	assert.Equal(t, &Conn{State: Disconnected}, c)
}

func TestConn_InvalidTransitions(t *testing.T) {
	c := NewConn()
	assert.ErrorIs(t, c.Acknowledge("919876543210"), ErrInvalidTransition)

	require.NoError(t, c.Connect("919876543210"))
	assert.ErrorIs(t, c.Connect("919876543210"), ErrInvalidTransition)

	assert.ErrorIs(t, c.Acknowledge("911111111111"), ErrPhoneMismatch)
	assert.Equal(t, Pending, c.State)

	require.NoError(t, c.Acknowledge("+91 98765 43210"))
	assert.ErrorIs(t, c.Acknowledge("919876543210"), ErrInvalidTransition)
	assert.ErrorIs(t, c.Connect("919876543210"), ErrInvalidTransition)
}

func TestConn_Disconnect_FromPending(t *testing.T) {
	c := NewConn()
	require.NoError(t, c.Connect("919876543210"))
	c.Disconnect()
	assert.Equal(t, Disconnected, c.State)
	require.NoError(t, c.Connect("919876543210"))
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"+91-98765-43210", "919876543210", true},
		{"(555) 123 4567", "5551234567", true},
		{"12345", "", false},
		{"", "", false},
		{"1234567890123456", "", false},
		{"\u0661\u0662\u0663\u0664", "", false},
		{"+91 \u0669\u0668\u0667 98765 43210", "919876543210", true},
		{"\u0661\u0662\u0663\u0664\u0665\u0666\u0667\u0668\u0669\u0660\u0661\u0662\u0663", "", false},
	}
	for _, tt := range tests {
		got, err := NormalizePhone(tt.in)
		if !tt.ok {
			assert.ErrorIs(t, err, ErrInvalidPhone, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestConn_ConnectRejectsBadPhone(t *testing.T) {
	c := NewConn()
	assert.ErrorIs(t, c.Connect("abc"), ErrInvalidPhone)
	assert.Equal(t, Disconnected, c.State)
}

func TestStatusHint(t *testing.T) {
	assert.Equal(t, "success", StatusHint(Connected))
	assert.Equal(t, "warning", StatusHint(Pending))
	assert.Equal(t, "muted", StatusHint(Disconnected))
	assert.Panics(t, func() { StatusHint("lost") })
}
