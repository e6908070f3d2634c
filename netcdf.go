// Copyright (c) The openradar developers.
// SPDX-License-Identifier: BSD-3-Clause

package radar

import (
	"fmt"

	"github.com/batchatco/go-native-netcdf/netcdf"
)

// magicBytesNetCDF3 are the magic bytes of a classic NetCDF file.
var magicBytesNetCDF3 = [][]byte{
	[]byte("CDF"),
}

// magicBytesHDF5 is the HDF5 format signature from the HDF5 specification
// documentation. NetCDF4 files are contained in an HDF5 container.
var magicBytesHDF5 = [][]byte{
	{0x89, 0x48, 0x44, 0x46, 0x0d, 0x0a, 0x1a, 0x0a},
}

// IsNetCDF3 checks if the header matches the magic bytes of a classic
// NetCDF file.
func IsNetCDF3(header []byte) bool {
	return matchesMagicBytes(header, 0, magicBytesNetCDF3)
}

// IsNetCDF4 checks if the header matches the HDF5 signature that NetCDF4
// files are stored in.
func IsNetCDF4(header []byte) bool {
	return matchesMagicBytes(header, 0, magicBytesHDF5)
}

// cdmDataTypeAttribute is the global attribute that identifies a
// NetCDF-family file as a NEXRAD CDM dataset rather than CF/Radial.
const cdmDataTypeAttribute = "cdm_data_type"

// isCDMDataset opens name as a generic NetCDF container and reports whether
// its global attributes identify it as a CDM radar dataset. Both CF/Radial
// and NEXRAD CDM share the same container format, so the byte signature
// alone cannot tell them apart.
func isCDMDataset(name string) (bool, error) {
	group, err := netcdf.Open(name)
	if err != nil {
		return false, fmt.Errorf("cannot inspect dataset attributes: %w", err)
	}
	defer group.Close()

	_, has := group.Attributes().Get(cdmDataTypeAttribute)
	return has, nil
}
