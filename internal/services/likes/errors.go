package likes

import "errors"

var (
	ErrAlreadyLiked = errors.New("episode already liked")
	ErrLikeNotFound = errors.New("like not found")
)
