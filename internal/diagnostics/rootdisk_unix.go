//go:build !windows

package diagnostics

func rootDiskPath() string { return "/" }
