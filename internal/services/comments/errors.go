package comments

import "errors"

var (
	ErrCommentNotFound = errors.New("comment not found")
	ErrNotCommentOwner = errors.New("comment belongs to another user")
	ErrEmptyComment    = errors.New("comment text must not be empty")
)
