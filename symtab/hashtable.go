// Copyright (C) 2022 Sneller, Inc.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// Package symtab implements the name- and integer-keyed hash tables used
// to index ain function/struct/string-pool symbols, and a name index on
// top of them that preserves declaration order for "name#n" collision
// disambiguation.
package symtab

import (
	"github.com/dchest/siphash"
)

// hashKey is the fixed siphash key used to bucket string keys. It only
// needs to be stable within a process; it is not a security boundary.
var hashKey0, hashKey1 = uint64(0x6c617645), uint64(0x73797334)

func hashString(s string) uint64 {
	return siphash.Hash(hashKey0, hashKey1, []byte(s))
}

type stringSlot struct {
	key   string
	value int
	next  int // index of next slot in the same bucket, or -1
}

// Table is a chained hash table from string keys to integer values
// (typically a symbol index), grounded on libsys4's ht_create/ht_get/
// ht_put. Unlike a bare Go map, bucket membership is explicit so the
// table's shape matches the original's open struct, and slots are kept
// in insertion order regardless of bucket placement.
type Table struct {
	buckets []int // bucket head -> slot index, or -1
	slots   []stringSlot
}

// NewTable returns a table with nrBuckets initial buckets (grows is a
// no-op here; the bucket count only affects chain length, not
// correctness, exactly like ht_create's fixed nr_buckets argument).
func NewTable(nrBuckets int) *Table {
	if nrBuckets <= 0 {
		nrBuckets = 64
	}
	t := &Table{buckets: make([]int, nrBuckets)}
	for i := range t.buckets {
		t.buckets[i] = -1
	}
	return t
}

func (t *Table) bucketFor(key string) int {
	return int(hashString(key) % uint64(len(t.buckets)))
}

// Get returns (value, true) if key is present.
func (t *Table) Get(key string) (int, bool) {
	b := t.bucketFor(key)
	for i := t.buckets[b]; i != -1; i = t.slots[i].next {
		if t.slots[i].key == key {
			return t.slots[i].value, true
		}
	}
	return 0, false
}

// Put inserts or overwrites the value for key, returning the slot index
// (stable for the lifetime of the table; used by NameIndex to preserve
// insertion order independent of bucket layout).
func (t *Table) Put(key string, value int) int {
	b := t.bucketFor(key)
	for i := t.buckets[b]; i != -1; i = t.slots[i].next {
		if t.slots[i].key == key {
			t.slots[i].value = value
			return i
		}
	}
	idx := len(t.slots)
	t.slots = append(t.slots, stringSlot{key: key, value: value, next: t.buckets[b]})
	t.buckets[b] = idx
	return idx
}

// Len returns the number of distinct keys.
func (t *Table) Len() int { return len(t.slots) }

// IntTable is the integer-keyed counterpart to Table (libsys4 requires
// these not be mixed with the string-keyed API on the same table).
type IntTable struct {
	m map[int]int
}

// NewIntTable returns an empty integer-keyed table.
func NewIntTable() *IntTable {
	return &IntTable{m: make(map[int]int)}
}

// Get returns (value, true) if key is present.
func (t *IntTable) Get(key int) (int, bool) {
	v, ok := t.m[key]
	return v, ok
}

// Put inserts or overwrites the value for key.
func (t *IntTable) Put(key, value int) {
	t.m[key] = value
}
