// Copyright (c) The openradar developers.
// SPDX-License-Identifier: BSD-3-Clause

package radar

// magicBytesWSR88D are the volume header prefixes of NEXRAD Level II
// archive files. Older archives begin with "ARCHIVE2.", newer ones with
// "AR2V000" followed by the version digit.
var magicBytesWSR88D = [][]byte{
	[]byte("ARCHIVE2."),
	[]byte("AR2V000"),
}

// IsWSR88D checks if the header matches a NEXRAD Level II archive volume
// header.
func IsWSR88D(header []byte) bool {
	return matchesMagicBytes(header, 0, magicBytesWSR88D)
}
