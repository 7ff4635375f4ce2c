//go:build !darwin

package darwin
