package model

// IDGenerator produces opaque unique identifiers for new entities and
// session tokens.
type IDGenerator interface {
	NewID() string
}
