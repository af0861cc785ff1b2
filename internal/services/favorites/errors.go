package favorites

import "errors"

var (
	ErrAlreadyFavorited = errors.New("episode already favorited")
	ErrFavoriteNotFound = errors.New("favorite not found")
)
