// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"math"
	"strconv"
)

// data defines the record store interface consumed by the chart
// pipeline, and a minimal in-memory implementation of it.

// StoreEvents are the kinds of change notifications raised by a [Store].
type StoreEvents int32

const (
	// StoreAdded indicates records were appended.
	StoreAdded StoreEvents = iota

	// StoreRemoved indicates records were removed.
	StoreRemoved

	// StoreUpdated indicates field values of existing records changed.
	StoreUpdated

	// StoreCleared indicates all records were removed.
	StoreCleared

	// StoreRefreshed indicates the record set was wholesale replaced.
	StoreRefreshed
)

// Store is an ordered, field-addressable record sequence with change
// notifications. The chart pipeline only reads from it: all mutation
// happens externally and is observed through [Store.Listen] callbacks.
type Store interface {
	// Len returns the number of records.
	Len() int

	// Float returns the numeric value of the given field of record i.
	// Missing or non-numeric values are returned as NaN.
	Float(field string, i int) float64

	// Str returns the string value of the given field of record i.
	Str(field string, i int) string

	// Listen registers a change-notification callback and returns a
	// function that unregisters it.
	Listen(fn func(ev StoreEvents)) func()
}

// Record is one row of field values for a [Table].
type Record = map[string]any

// Table is a minimal in-memory [Store] implementation backed by a
// slice of records.
type Table struct {
	records []Record

	listeners map[int]func(ev StoreEvents)
	nextID    int
}

// NewTable returns a new [Table] with the given initial records.
func NewTable(records ...Record) *Table {
	return &Table{records: records}
}

func (tb *Table) Len() int {
	return len(tb.records)
}

func (tb *Table) Float(field string, i int) float64 {
	if i < 0 || i >= len(tb.records) {
		return math.NaN()
	}
	v, ok := tb.records[i][field]
	if !ok {
		return math.NaN()
	}
	f, ok := toFloat(v)
	if !ok {
		return math.NaN()
	}
	return f
}

func (tb *Table) Str(field string, i int) string {
	if i < 0 || i >= len(tb.records) {
		return ""
	}
	v, ok := tb.records[i][field]
	if !ok {
		return ""
	}
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case int:
		return strconv.Itoa(x)
	default:
		return ""
	}
}

func (tb *Table) Listen(fn func(ev StoreEvents)) func() {
	if tb.listeners == nil {
		tb.listeners = make(map[int]func(ev StoreEvents))
	}
	id := tb.nextID
	tb.nextID++
	tb.listeners[id] = fn
	return func() {
		delete(tb.listeners, id)
	}
}

func (tb *Table) notify(ev StoreEvents) {
	for _, fn := range tb.listeners {
		fn(ev)
	}
}

// Add appends records and notifies listeners.
func (tb *Table) Add(records ...Record) {
	tb.records = append(tb.records, records...)
	tb.notify(StoreAdded)
}

// Remove removes the record at index i and notifies listeners.
func (tb *Table) Remove(i int) {
	if i < 0 || i >= len(tb.records) {
		return
	}
	tb.records = append(tb.records[:i], tb.records[i+1:]...)
	tb.notify(StoreRemoved)
}

// Update replaces the record at index i and notifies listeners.
func (tb *Table) Update(i int, rec Record) {
	if i < 0 || i >= len(tb.records) {
		return
	}
	tb.records[i] = rec
	tb.notify(StoreUpdated)
}

// Clear removes all records and notifies listeners.
func (tb *Table) Clear() {
	tb.records = nil
	tb.notify(StoreCleared)
}

// SetRecords replaces the full record set and notifies listeners
// with a refresh event.
func (tb *Table) SetRecords(records []Record) {
	tb.records = records
	tb.notify(StoreRefreshed)
}

// toFloat converts supported numeric types to float64.
func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	default:
		return 0, false
	}
}
