// Copyright (c) The openradar developers.
// SPDX-License-Identifier: BSD-3-Clause

package radar

import "fmt"

// UnsupportedFormatError is returned by Read when the detected format has no
// dispatchable reader: the content was not recognized at all, or it is a
// format only the legacy RSL library can decode and no RSL reader is
// installed.
type UnsupportedFormatError struct {
	// Format is the label produced by sniffing; FormatUnknown if no
	// signature matched.
	Format Format
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unknown or unsupported file format: %s", e.Format)
}
