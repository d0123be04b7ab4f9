// Package closelock is a minimal copy of the closelock API for analysis tests.
package closelock

import "io"

type Lock[R io.Closer] struct {
	resource R
	state    uint8
}

func New[R io.Closer](resource R) *Lock[R] {
	return &Lock[R]{resource: resource}
}

func (l *Lock[R]) Get() R {
	return l.resource
}

func (l *Lock[R]) Unlock() (R, error) {
	l.state = 1

	return l.resource, nil
}

func (l *Lock[R]) Close() error {
	if l.state != 0 {
		return nil
	}
	l.state = 2

	return l.resource.Close()
}

func (l *Lock[R]) CloseInto(errp *error) {
	if err := l.Close(); err != nil && *errp == nil {
		*errp = err
	}
}
