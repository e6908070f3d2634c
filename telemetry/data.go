// Copyright (c) The openradar developers.
// SPDX-License-Identifier: BSD-3-Clause

package telemetry

import (
	"context"
	"encoding/json"
	"time"
)

// Data is a struct type that holds all telemetry data of a dispatch
type Data struct {
	// DetectedFormat is the label of the sniffed file format
	DetectedFormat string

	// CompressedContainer is true if the format was detected inside a
	// bzip2 container
	CompressedContainer bool

	// ReaderUsed names the route the dispatcher selected, e.g. "sigmet"
	// or "rsl"
	ReaderUsed string

	// DispatchDuration is the time from sniffing to reader return
	DispatchDuration time.Duration

	// DispatchErrors is the number of errors during the dispatch
	DispatchErrors int64

	// LastDispatchError is the last error during the dispatch
	LastDispatchError error
}

// String returns a string representation of [Data].
func (d Data) String() string {
	b, _ := json.Marshal(d)
	return string(b)
}

// MarshalJSON implements the [encoding/json.Marshaler] interface.
func (d Data) MarshalJSON() ([]byte, error) {
	var lastError string
	if d.LastDispatchError != nil {
		lastError = d.LastDispatchError.Error()
	}

	type Alias Data
	return json.Marshal(&struct {
		LastDispatchError string `json:"LastDispatchError"`
		*Alias
	}{
		LastDispatchError: lastError,
		Alias:             (*Alias)(&d),
	})
}

// TelemetryHook is a function type that performs operations on [Data] after
// a dispatch has finished which can be used to submit the [Data] to a
// telemetry service, for example.
type TelemetryHook func(context.Context, *Data)
