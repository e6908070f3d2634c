// Package telemetry provides a way to capture telemetry data during the
// sniffing and dispatch of a radar file.
//
// The package provides a struct type [Data] that holds all telemetry data
// of a dispatch.
package telemetry
