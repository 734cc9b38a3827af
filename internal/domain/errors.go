package domain

import "errors"

var (
	ErrDirectoryFull   = errors.New("session directory is full")
	ErrDuplicateName   = errors.New("name already in use")
	ErrSessionNotFound = errors.New("session not found")
	ErrWorkerNotFound  = errors.New("worker not registered")
	ErrInvalidSession  = errors.New("session id out of range")
	ErrPipeExists      = errors.New("pipe already exists")
	ErrPipeNotFound    = errors.New("pipe not found")
	ErrPipeState       = errors.New("pipe in unexpected state")
)
