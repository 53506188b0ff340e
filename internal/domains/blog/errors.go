package blog

import "errors"

var (
	ErrBlogNotFound = errors.New("blog not found")
)
