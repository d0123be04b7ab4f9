// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package closelock_test

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"fillmore-labs.com/closelock"
)

// stream is a closable resource that reports when it is closed.
type stream struct {
	io.Reader
	name string
}

func (s *stream) Close() error {
	fmt.Printf("closed %s\n", s.name)

	return nil
}

func openStream(name string) *stream {
	return &stream{Reader: strings.NewReader("hello"), name: name}
}

// The factory pattern: open a resource, and either return it intact or close
// it when a step before the return fails.
func Example() {
	open := func(name string, validate func(io.Reader) error) (r io.ReadCloser, err error) {
		s := openStream(name)

		l := closelock.New(s)
		defer l.CloseInto(&err)

		if err := validate(l.Get()); err != nil {
			return nil, err
		}

		return l.Unlock()
	}

	// The happy path transfers ownership to the caller.
	r, err := open("a", func(io.Reader) error { return nil })
	if err != nil {
		fmt.Println("error:", err)
	}
	_ = r.Close()

	// A failure before the transfer closes the resource automatically.
	_, err = open("b", func(io.Reader) error { return errors.New("bad header") })
	fmt.Println("error:", err)

	// Output:
	// closed a
	// closed b
	// error: bad header
}

// Do consumes a resource in place and always closes it.
func ExampleDo() {
	contents, err := closelock.Do(openStream("data"), func(s *stream) (string, error) {
		b, err := io.ReadAll(s)

		return string(b), err
	})
	if err != nil {
		fmt.Println("error:", err)
	}
	fmt.Println(contents)

	// Output:
	// closed data
	// hello
}

// Unlock hands out ownership exactly once.
func ExampleLock_Unlock() {
	l := closelock.New(openStream("once"))

	s, err := l.Unlock()
	fmt.Println(err, l.State())

	if _, err := l.Unlock(); err != nil {
		fmt.Println(err)
	}

	_ = s.Close()

	// Output:
	// <nil> unlock
	// closelock: resource already unlocked
	// closed once
}
