// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package deploy

import (
	"fmt"
	"sync"
	"time"

	"github.com/moneyprinter/protocol-deploy/pkg/constants"
)

// Child runs one function on its own goroutine and keeps at most one error from it.
type Child struct {
	fn      func() error
	errc    chan error
	done    chan struct{}
	once    sync.Once
	errOnce sync.Once
	err     error
}

func NewChild(fn func() error) *Child {
	return &Child{
		fn:   fn,
		errc: make(chan error, 1),
		done: make(chan struct{}),
	}
}

// Start launches the function. Calling it more than once has no effect.
func (c *Child) Start() {
	c.once.Do(func() {
		go c.run()
	})
}

func (c *Child) run() {
	defer close(c.done)
	defer func() {
		if r := recover(); r != nil {
			c.errc <- fmt.Errorf("deployment panicked: %v", r)
		}
	}()
	if err := c.fn(); err != nil {
		c.errc <- err
	}
}

// Join blocks until the function returns and then reports its error.
// It starts the child if Start was not called.
func (c *Child) Join() error {
	c.Start()
	<-c.done
	return c.Err()
}

// JoinTimeout is Join with an upper bound. A zero or negative timeout waits forever.
// On timeout the child keeps running and ErrJoinTimeout is returned.
func (c *Child) JoinTimeout(timeout time.Duration) error {
	if timeout <= 0 {
		return c.Join()
	}
	c.Start()
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case <-c.done:
		return c.Err()
	case <-timer.C:
		return fmt.Errorf("%w after %s", constants.ErrJoinTimeout, timeout)
	}
}

// Err returns the recorded error, or nil if there is none or the child has not finished
func (c *Child) Err() error {
	select {
	case <-c.done:
	default:
		return nil
	}
	c.errOnce.Do(func() {
		select {
		case c.err = <-c.errc:
		default:
		}
	})
	return c.err
}
