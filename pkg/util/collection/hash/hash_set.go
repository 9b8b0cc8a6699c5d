// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package hash

import (
	"fmt"
	"strings"
)

// Hasher provides a generic definition of a hashing function suitable for use
// within the hashset.  Since distinct items may share a hashcode, this
// additionally includes equality.
type Hasher[T any] interface {
	// Check whether two items are equal (or not).
	Equals(T) bool
	// Return a suitable hashcode.
	Hash() uint64
}

// Set defines a generic set implementation backed by a map.  This is a true
// hashtable in that collisions are handle gracefully using buckets, rather than
// simply discarding them.
type Set[T Hasher[T]] struct {
	// items maps hashcodes to *buckets* of items.
	items map[uint64][]T
	// number of unique items
	size uint
}

// NewSet creates a new Set with a given underlying capacity.
func NewSet[T Hasher[T]](size uint) *Set[T] {
	return &Set[T]{make(map[uint64][]T, size), 0}
}

// Size returns the number of unique items stored in this Set.
func (p *Set[T]) Size() uint {
	return p.size
}

// Insert a new item into this set, returning true if it was already contained
// and false otherwise.
func (p *Set[T]) Insert(item T) bool {
	hash := item.Hash()
	bucket := p.items[hash]
	//
	if contains(bucket, item) {
		return true
	}
	//
	p.items[hash] = append(bucket, item)
	p.size++
	//
	return false
}

// Contains checks whether the given item is contained within this set, or not.
func (p *Set[T]) Contains(item T) bool {
	return contains(p.items[item.Hash()], item)
}

// Items returns the items of this set, in no particular order.
func (p *Set[T]) Items() []T {
	items := make([]T, 0, p.size)
	//
	for _, b := range p.items {
		items = append(items, b...)
	}
	//
	return items
}

func (p *Set[T]) String() string {
	var r strings.Builder
	// Write opening brace
	r.WriteString("{")
	//
	for i, item := range p.Items() {
		if i != 0 {
			r.WriteString(",")
		}
		//
		r.WriteString(fmt.Sprintf("%v", any(item)))
	}
	// Write closing brace
	r.WriteString("}")
	// Done
	return r.String()
}

// Check whether a bucket contains a given item, or not.
func contains[T Hasher[T]](bucket []T, item T) bool {
	for _, i := range bucket {
		if item.Equals(i) {
			return true
		}
	}
	//
	return false
}
