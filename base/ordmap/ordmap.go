// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ordmap implements an ordered map that retains the order of items
// added to a slice, while also providing fast key-based map lookup of items.
// Passes that walk nodes or tooltip sources use it so that every frame
// visits them in a stable order.
package ordmap

import (
	"fmt"
	"slices"
)

// KeyValue represents a key-value pair.
type KeyValue[K comparable, V any] struct {
	Key   K
	Value V
}

// Map is a generic ordered map that combines the order of a slice
// and the fast key lookup of a map. A map stores an index
// into a slice that has the value and key associated with the value.
type Map[K comparable, V any] struct {

	// Order is an ordered list of values and associated keys, in the order added.
	Order []KeyValue[K, V]

	// Map is the key to index mapping.
	Map map[K]int
}

// New returns a new ordered map.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{
		Map: make(map[K]int),
	}
}

// Init initializes the map if it isn't already.
func (om *Map[K, V]) Init() {
	if om.Map == nil {
		om.Map = make(map[K]int)
	}
}

// Add adds a new value for given key.
// If key already exists in map, it replaces the item at that existing index,
// otherwise it is added to the end.
func (om *Map[K, V]) Add(key K, val V) {
	om.Init()
	if idx, has := om.Map[key]; has {
		om.Order[idx] = KeyValue[K, V]{Key: key, Value: val}
		return
	}
	om.Map[key] = len(om.Order)
	om.Order = append(om.Order, KeyValue[K, V]{Key: key, Value: val})
}

// ValueByKey returns the value corresponding to the given key,
// with a zero value returned for a missing key.
func (om *Map[K, V]) ValueByKey(key K) V {
	v, _ := om.ValueByKeyTry(key)
	return v
}

// ValueByKeyTry returns the value corresponding to the given key,
// with false returned for a missing key.
func (om *Map[K, V]) ValueByKeyTry(key K) (V, bool) {
	if idx, ok := om.Map[key]; ok {
		return om.Order[idx].Value, true
	}
	var zv V
	return zv, false
}

// Has returns whether the given key is in the map.
func (om *Map[K, V]) Has(key K) bool {
	_, ok := om.Map[key]
	return ok
}

// Len returns the number of items in the map.
func (om *Map[K, V]) Len() int {
	if om == nil {
		return 0
	}
	return len(om.Order)
}

// DeleteKey deletes the item with the given key, returning false if it does not find it.
// Items after it are renumbered, so deletion is linear in the number of items.
func (om *Map[K, V]) DeleteKey(key K) bool {
	idx, ok := om.Map[key]
	if !ok {
		return false
	}
	om.Order = slices.Delete(om.Order, idx, idx+1)
	delete(om.Map, key)
	for i := idx; i < len(om.Order); i++ {
		om.Map[om.Order[i].Key] = i
	}
	return true
}

// Keys returns a copy of the keys in order.
func (om *Map[K, V]) Keys() []K {
	kl := make([]K, len(om.Order))
	for i, kv := range om.Order {
		kl[i] = kv.Key
	}
	return kl
}

// Values returns a copy of the values in order.
func (om *Map[K, V]) Values() []V {
	vl := make([]V, len(om.Order))
	for i, kv := range om.Order {
		vl[i] = kv.Value
	}
	return vl
}

// String returns a string representation of the map.
func (om *Map[K, V]) String() string {
	return fmt.Sprintf("%v", om.Order)
}
