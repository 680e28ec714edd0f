package domain

import "errors"

var ErrEmptySessionID = errors.New("session id is empty")
