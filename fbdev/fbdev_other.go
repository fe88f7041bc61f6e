//go:build !linux

package fbdev

import "errors"

var ErrNotSupported = errors.New("fbdev: not supported")

func Open(_ string) (*Device, error) {
	return nil, ErrNotSupported
}
