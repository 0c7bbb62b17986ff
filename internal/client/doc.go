// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronin

// Package client implements the interactive terminal client runtime.
//
// It wires the terminal UI flows, client services, and the locally saved
// session into a single process lifecycle.
package client
