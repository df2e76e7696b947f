//  Copyright 2024 Google LLC
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.

package yalo

import (
	"runtime"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/puzpuzpuz/xsync/v3"
)

// threadRegistry maps goroutine identity to a small stable index assigned
// on first use. The index is included in formatted lines for correlation,
// not ordering.
type threadRegistry struct {
	// indexes maps goroutine id to its assigned index.
	indexes *xsync.MapOf[uint64, uint64]
	// next is the next index to assign.
	next atomic.Uint64
}

func newThreadRegistry() *threadRegistry {
	return &threadRegistry{indexes: xsync.NewMapOf[uint64, uint64]()}
}

// index returns the calling goroutine's index, assigning the next free
// one on first use.
func (tr *threadRegistry) index() uint64 {
	index, _ := tr.indexes.LoadOrCompute(goroutineID(), func() uint64 {
		return tr.next.Add(1) - 1
	})
	return index
}

// goroutineID extracts the calling goroutine's id from its stack header
// ("goroutine N [running]: ..."). The runtime exposes no id API; the
// header format has been stable across releases.
func goroutineID() uint64 {
	var buf [64]byte
	header := string(buf[:runtime.Stack(buf[:], false)])
	fields := strings.Fields(header)
	if len(fields) < 2 {
		return 0
	}
	id, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		return 0
	}
	return id
}
