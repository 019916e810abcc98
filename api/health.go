// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package api

import (
	"fmt"

	"github.com/AppsFlyer/go-sundheit/checks"
)

// RunCheck adapts a zero-arg probe function (e.g. "does the scheduler
// still have participants left to tick") to go-sundheit's checks.Check
// interface, the same indirection the teacher's health surface would
// need for an arbitrary liveness probe.
type RunCheck struct {
	name string
	probe func() error
}

// NewRunCheck names a probe function for registration with a Health
// instance.
func NewRunCheck(name string, probe func() error) *RunCheck {
	return &RunCheck{name: name, probe: probe}
}

// Name implements checks.Check.
func (c *RunCheck) Name() string { return c.name }

// Execute implements checks.Check: nil details on success, the
// probe's error otherwise.
func (c *RunCheck) Execute() (interface{}, error) {
	if err := c.probe(); err != nil {
		return nil, fmt.Errorf("%s: %w", c.name, err)
	}
	return nil, nil
}

var _ checks.Check = (*RunCheck)(nil)
