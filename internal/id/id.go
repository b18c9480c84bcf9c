package id

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	idLength = 16
)

// New creates a unique 16-character alphanumeric ID.
func New() string {
	s, err := gonanoid.Generate(alphabet, idLength)
	if err != nil {
		panic("id generation failed: " + err.Error())
	}
	return s
}
