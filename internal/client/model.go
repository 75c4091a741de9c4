package client

import (
	"errors"
	"time"
)

var (
	ErrNotFound   = errors.New("client not found")
	ErrEmptyName  = errors.New("name cannot be empty")
	ErrEmptyPhone = errors.New("phone cannot be empty")
)

// Client is a person who books appointments. Credentials and login live in
// the surrounding identity layer; this record only anchors bookings.
type Client struct {
	ID        string
	Name      string
	Phone     string
	Email     string
	CreatedAt time.Time
}

// Filter defines parameters for listing clients.
type Filter struct {
	Phone    string
	Page     int
	PageSize int
}
