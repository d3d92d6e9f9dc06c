// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package argtype holds the value converters used by kargs options and
// arguments.
//
// Int, Double, Bool, IntRange and Choice reject bad input in Convert, so an
// out-of-range number or an unknown choice fails as soon as the token is
// read. FilePath is the exception: Convert always succeeds and the
// filesystem checks run in Validate.
//
//	threads := argtype.IntRange(1, 32)
//	n, err := threads.Convert("8") // 8, nil
//	_, err = threads.Convert("64") // *ConversionError
package argtype
