package models

import "time"

// List name constants
const (
	ListWords      = "words"
	ListExceptions = "exceptions"
)

// Word is an entry of the banned word list or of the exception list.
type Word struct {
	Word      string    `json:"word"`
	CreatedAt time.Time `json:"created_at"`
}
