package reload

import "errors"

var (
	ErrEmptyDir     = errors.New("empty rules directory")
	ErrWatch        = errors.New("failed to watch rules directory")
	ErrBuild        = errors.New("failed to build detector from rules directory")
	ErrHolderClosed = errors.New("reload holder is closed")
)
