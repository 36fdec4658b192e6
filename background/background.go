// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package background runs a set of long lived goroutines that can
// all be stopped together
package background

// Process - a single background task
//
// Run must return promptly once shutdown is closed
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - list of tasks to start together
type Processes []Process

// T - handle for a running set of processes
type T struct {
	shutdown []chan struct{}
	finished []chan struct{}
}

// Start - launch each process in its own goroutine
func Start(processes Processes, args interface{}) *T {
	t := &T{
		shutdown: make([]chan struct{}, len(processes)),
		finished: make([]chan struct{}, len(processes)),
	}

	for i, p := range processes {
		shutdown := make(chan struct{})
		finished := make(chan struct{})
		t.shutdown[i] = shutdown
		t.finished[i] = finished

		go func(p Process) {
			defer close(finished)
			p.Run(args, shutdown)
		}(p)
	}
	return t
}

// Stop - signal all processes and wait for every one to return
func (t *T) Stop() {
	if nil == t {
		return
	}

	for _, shutdown := range t.shutdown {
		close(shutdown)
	}
	for _, finished := range t.finished {
		<-finished
	}
	t.shutdown = nil
	t.finished = nil
}
