package nolint

import (
	"io"
	"os"

	"test/closelock"
)

func suppressedLine(f *os.File) error {
	l := closelock.New(f) //nolint:closelock

	_, err := io.ReadAll(l.Get())

	return err
}

//nolint:closelock
func suppressedFunc(f *os.File) error {
	l := closelock.New(f)

	_, err := io.ReadAll(l.Get())

	return err
}

func reported(f *os.File) error {
	l := closelock.New(f) // want `lock 'l' is never closed; defer Close or CloseInto where it is created`

	_, err := io.ReadAll(l.Get())

	return err
}
