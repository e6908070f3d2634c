// Copyright (c) The openradar developers.
// SPDX-License-Identifier: BSD-3-Clause

package radar

import "context"

// Options is the opaque bag of reader options forwarded verbatim to
// whichever reader is selected. Well-known keys are "field_names",
// "additional_metadata", "file_field_names" and "exclude_fields", but the
// set is open ended and never inspected or validated here; each reader
// interprets the keys it knows.
type Options map[string]any

// ReadFunc decodes the named radar file into a Radar volume. Readers are
// external collaborators; they perform their own I/O, including any
// decompression, and report malformed content through their own errors.
type ReadFunc func(ctx context.Context, name string, opts Options) (*Radar, error)

// ReaderSet bundles the format-specific readers that Read dispatches to.
// A nil entry means no reader is installed for that route.
//
// The RSL entry stands in for the optional TRMM RSL legacy library. Whether
// it is available is decided once by the embedder when the set is built;
// toggling the entry is all a test needs to exercise both sides of the
// capability.
type ReaderSet struct {
	MDV           ReadFunc
	CFRadial      ReadFunc
	NexradArchive ReadFunc
	NexradCDM     ReadFunc
	Sigmet        ReadFunc
	RSL           ReadFunc
}

// HasRSL reports whether the legacy RSL reader is available.
func (r ReaderSet) HasRSL() bool {
	return r.RSL != nil
}

// DefaultReaders is the process-wide reader set used by the radarinfo
// command line tool. Format decoder modules populate their entry from an
// init function; library callers pass their own set to Read instead.
var DefaultReaders ReaderSet
