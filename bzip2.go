// Copyright (c) The openradar developers.
// SPDX-License-Identifier: BSD-3-Clause

package radar

import (
	"io"

	"github.com/dsnet/compress/bzip2"
)

// magicBytesBzip2 are the magic bytes for bzip2 compressed files
// reference: https://en.wikipedia.org/wiki/Bzip2
var magicBytesBzip2 = [][]byte{
	[]byte("BZh"),
}

// IsBzip2 checks if the header matches the magic bytes for bzip2 compressed
// files.
func IsBzip2(header []byte) bool {
	return matchesMagicBytes(header, 0, magicBytesBzip2)
}

// decompressBz2Stream wraps src in a bzip2 decompressor so the content
// inside the container can be sniffed. The container is only looked
// through here; the reader selected for the inner format performs its own
// decompression.
func decompressBz2Stream(src io.Reader) (io.Reader, error) {
	return bzip2.NewReader(src, nil)
}
