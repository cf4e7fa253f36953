package db

import "errors"

// Domain-level database error sentinels.
var (
	// Word list errors
	ErrWordNotFound  = errors.New("word not found")
	ErrDuplicateWord = errors.New("word already exists")

	// Exception list errors
	ErrExceptionNotFound  = errors.New("exception not found")
	ErrDuplicateException = errors.New("exception already exists")
)
