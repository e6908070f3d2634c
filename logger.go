// Copyright (c) The openradar developers.
// SPDX-License-Identifier: BSD-3-Clause

package radar

// logger is an interface that defines the logging functions that are used
// by the dispatcher
type logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}
