package escape

import (
	"io"
	"os"

	"test/closelock"
)

// Only the escape check is enabled for this package: the missing defer and
// the discarded Unlock stay unreported.
func escapes(f *os.File) io.ReadCloser {
	l := closelock.New(f)

	return l.Get() // want `resource obtained from Get is returned; transfer ownership with Unlock`
}

func discarded(f *os.File) {
	l := closelock.New(f)
	defer l.Close()

	l.Unlock()
}
