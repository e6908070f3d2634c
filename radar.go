// Copyright (c) The openradar developers.
// SPDX-License-Identifier: BSD-3-Clause

package radar

// Radar is the unified in-memory representation of a weather-radar volume
// produced by a format-specific reader: scan geometry, decoded field data
// and file metadata. This package only passes it through; it is never
// inspected or mutated during dispatch.
type Radar struct {
	// Metadata holds the global attributes of the source file.
	Metadata map[string]any

	// Fields maps field names to their decoded moments.
	Fields map[string]Field

	// Time is the time of each ray, in seconds since the volume start.
	Time []float64

	// Range is the distance to the center of each gate in meters.
	Range []float32

	// Latitude, Longitude and Altitude locate the radar platform.
	Latitude  float64
	Longitude float64
	Altitude  float64

	ScanType string
	NSweeps  int
	NRays    int
	NGates   int
}

// Field is a single radar moment with its descriptive metadata.
type Field struct {
	LongName  string
	Units     string
	FillValue float64

	// Data is ray-major: NRays x NGates.
	Data []float32
}
