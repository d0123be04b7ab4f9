package a

import (
	"io"
	"os"

	"test/closelock"
)

func unclosed(f *os.File) error {
	l := closelock.New(f) // want `lock 'l' is never closed; defer Close or CloseInto where it is created`

	_, err := io.ReadAll(l.Get())

	return err
}

func closed(f *os.File) error {
	l := closelock.New(f)
	defer l.Close()

	_, err := io.ReadAll(l.Get())

	return err
}

func factory(name string) (r io.ReadCloser, err error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}

	l := closelock.New(f)
	defer l.CloseInto(&err)

	return l.Unlock()
}

func escapes(f *os.File) io.ReadCloser {
	l := closelock.New(f)
	defer l.Close()

	return l.Get() // want `resource obtained from Get is returned; transfer ownership with Unlock`
}

func discarded(f *os.File) {
	l := closelock.New(f)
	defer l.Close()

	l.Unlock() // want `result of Unlock is discarded; the transferred resource leaks`
}

func discardedBlank(f *os.File) {
	l := closelock.New(f)
	defer l.Close()

	_, _ = l.Unlock() // want `result of Unlock is discarded; the transferred resource leaks`
}

func discardedDefer(f *os.File) error {
	l := closelock.New(f)
	defer l.Unlock() // want `result of Unlock is discarded; the transferred resource leaks`

	_, err := io.ReadAll(l.Get())

	return err
}

func discardedNew(f *os.File) {
	closelock.New(f) // want `result of closelock.New is discarded; the resource is never released`
}

// A lock handed to another function is not tracked further.
func handOff(f *os.File) {
	l := closelock.New(f)
	closeLater(l)
}

func closeLater(l *closelock.Lock[*os.File]) {
	_ = l.Close()
}

// Shadowed redeclarations are tracked as separate locks.
func shadowed(f, g *os.File) error {
	l := closelock.New(f)
	defer l.Close()

	{
		l := closelock.New(g) // want `lock 'l' is never closed; defer Close or CloseInto where it is created`

		if _, err := io.ReadAll(l.Get()); err != nil {
			return err
		}
	}

	_, err := io.ReadAll(l.Get())

	return err
}

// A close inside a deferred closure counts.
func closure(f *os.File) (err error) {
	l := closelock.New(f)
	defer func() { l.CloseInto(&err) }()

	_, err = io.ReadAll(l.Get())

	return err
}
