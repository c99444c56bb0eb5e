package dto

import "errors"

var ErrInvalidRole = errors.New("role must be one of: user, admin")
