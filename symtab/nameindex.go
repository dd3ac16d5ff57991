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

package symtab

import (
	"strconv"
	"strings"
)

// NameIndex maps a name to the ordered list of declaration indices that
// share it (e.g. ain function overloads), supporting the "name#n" lookup
// syntax for disambiguating collisions by insertion order.
type NameIndex struct {
	table *Table
	lists [][]int // indexed by the Table slot returned from Put
}

// NewNameIndex returns an empty name index.
func NewNameIndex() *NameIndex {
	return &NameIndex{table: NewTable(256)}
}

// Add records that name is declared at index, preserving insertion order
// among collisions.
func (n *NameIndex) Add(name string, index int) {
	slot, ok := n.table.Get(name)
	if !ok {
		slot = n.table.Put(name, len(n.lists))
		n.lists = append(n.lists, nil)
	}
	n.lists[slot] = append(n.lists[slot], index)
}

// Lookup resolves name, honoring an optional "name#n" suffix to select
// the (n+1)th declaration among collisions (0-indexed). Without a "#n"
// suffix the first declaration is returned.
func (n *NameIndex) Lookup(name string) (int, bool) {
	base, ord := name, 0
	if i := strings.LastIndexByte(name, '#'); i >= 0 {
		if v, err := strconv.Atoi(name[i+1:]); err == nil {
			base, ord = name[:i], v
		}
	}
	slot, ok := n.table.Get(base)
	if !ok {
		return 0, false
	}
	list := n.lists[slot]
	if ord < 0 || ord >= len(list) {
		return 0, false
	}
	return list[ord], true
}

// All returns every declaration index recorded for name, in insertion
// order, or nil if name was never added.
func (n *NameIndex) All(name string) []int {
	slot, ok := n.table.Get(name)
	if !ok {
		return nil
	}
	return n.lists[slot]
}
