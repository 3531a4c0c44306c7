package whatsapp

import (
	"errors"
	"fmt"
	"strings"
)

type ConnState string

const (
	Disconnected ConnState = "disconnected"
	Pending      ConnState = "pending"
	Connected    ConnState = "connected"
)

func (s ConnState) Valid() bool {
	switch s {
	case Disconnected, Pending, Connected:
		return true
	}
	return false
}

var (
	ErrInvalidTransition = errors.New("invalid connection transition")
	ErrInvalidPhone      = errors.New("invalid phone number")
	ErrPhoneMismatch     = errors.New("handshake phone does not match pending connection")
)

// Conn is the bot link for one session. Connect moves it to pending; only an
// explicit handshake acknowledgement completes it.
type Conn struct {
	Phone string    `json:"phone,omitempty"`
	State ConnState `json:"state"`
}

func NewConn() *Conn { return &Conn{State: Disconnected} }

// NormalizePhone strips everything but ASCII digits and checks the E.164
// length. Digits from other scripts are dropped, not transliterated.
func NormalizePhone(raw string) (string, error) {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, raw)
	if len(digits) < 8 || len(digits) > 15 {
		return "", fmt.Errorf("%w: %q", ErrInvalidPhone, raw)
	}
	return digits, nil
}

func (c *Conn) Connect(phone string) error {
	if c.State != Disconnected {
		return fmt.Errorf("%w: connect from %s", ErrInvalidTransition, c.State)
	}
	p, err := NormalizePhone(phone)
	if err != nil {
		return err
	}
	c.Phone = p
	c.State = Pending
	return nil
}

func (c *Conn) Acknowledge(phone string) error {
	if c.State != Pending {
		return fmt.Errorf("%w: acknowledge from %s", ErrInvalidTransition, c.State)
	}
	p, err := NormalizePhone(phone)
	if err != nil {
		return err
	}
	if p != c.Phone {
		return ErrPhoneMismatch
	}
	c.State = Connected
	return nil
}

func (c *Conn) Disconnect() {
	c.Phone = ""
	c.State = Disconnected
}

// StatusHint maps a connection state to its presentation token.
func StatusHint(s ConnState) string {
	switch s {
	case Connected:
		return "success"
	case Pending:
		return "warning"
	case Disconnected:
		return "muted"
	}
	panic(fmt.Sprintf("whatsapp: unknown connection state %q", string(s)))
}
