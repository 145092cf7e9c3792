package storage

import "errors"

var (
	ErrActivityNotFound = errors.New("activity not found")
	ErrAlreadySignedUp  = errors.New("student already signed up for this activity")
	ErrNotSignedUp      = errors.New("student is not registered for this activity")
	ErrActivityFull     = errors.New("activity is full")
)
