// Copyright (c) The openradar developers.
// SPDX-License-Identifier: BSD-3-Clause

package radar

// magicBytesMDV is the magic byte sequence for MDV files: record_len1,
// struct_id and revision_number (1016, 14142, 1) as big-endian int32, per
// the MDV FORMAT Interface Control Document (ICD).
var magicBytesMDV = [][]byte{
	{0x00, 0x00, 0x03, 0xf8, 0x00, 0x00, 0x37, 0x3e, 0x00, 0x00, 0x00, 0x01},
}

// IsMDV checks if the header matches the magic bytes of an MDV file.
func IsMDV(header []byte) bool {
	return matchesMagicBytes(header, 0, magicBytesMDV)
}
