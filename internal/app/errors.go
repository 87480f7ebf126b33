package app

import "github.com/pkg/errors"

// ErrHeadless is returned by Run when the binary was built without a window
// backend.
var ErrHeadless = errors.New("the GUI requires building with the 'ebiten' tag")
