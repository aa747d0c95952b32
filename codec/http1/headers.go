// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package http1

import "strings"

// Header is a single name/value pair in insertion order.
type Header struct {
	Key   string
	Value string
}

// Headers is a case-insensitive, insertion-ordered, multi-valued header
// collection. Equality and lookup are ASCII-case-folded; values are stored
// exactly as supplied (already trimmed by the decoder).
type Headers struct {
	entries []Header
}

// Add appends a header, preserving insertion order for later encoding.
func (h *Headers) Add(key, value string) {
	h.entries = append(h.entries, Header{Key: key, Value: value})
}

// Get returns the first value for key (case-insensitive), if any.
func (h *Headers) Get(key string) (string, bool) {
	for _, e := range h.entries {
		if strings.EqualFold(e.Key, key) {
			return e.Value, true
		}
	}
	return "", false
}

// FindAll returns every value stored under key (case-insensitive), in
// insertion order.
func (h *Headers) FindAll(key string) []string {
	var out []string
	for _, e := range h.entries {
		if strings.EqualFold(e.Key, key) {
			out = append(out, e.Value)
		}
	}
	return out
}

// Entries returns the headers in insertion order, for encoding.
func (h *Headers) Entries() []Header {
	return h.entries
}
