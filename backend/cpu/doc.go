// Copyright 2026 Forge ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the host-memory CPU backend for tensor storage.
//
// The CPU backend is the default device for tests and is always available.
package cpu
