//go:build darwin

// Package darwin provides macOS platform support using the CoreGraphics
// window server and Accessibility (AX) APIs. All functionality requires CGo
// (Objective-C frameworks). When CGo is disabled, the package compiles as a
// no-op stub and the provider reports ErrUnsupported.
package darwin
