// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adt

import (
	"fmt"
	"iter"
	"strings"
)

// render formats the values of seq in order, separated by ", ".
func render[T any](seq iter.Seq2[int, T]) string {
	var buf strings.Builder
	for i, v := range seq {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprint(&buf, v)
	}
	return buf.String()
}
