// Package mmap provides anonymous memory mappings for off-heap storage.
//
// # Overview
//
// Anonymous mappings live outside the Go heap. The garbage collector never
// scans or moves them, which makes them a good home for large arrays of
// plain-old-data values.
//
// # Usage
//
//	m, err := mmap.MapAnonAligned(4096, 128)
//	if err != nil { ... }
//	defer m.Close()
//
//	data := m.Bytes() // zeroed, starts on a 128-byte boundary
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSD): mmap(2) with MAP_ANON | MAP_PRIVATE
//   - Windows: VirtualAlloc with MEM_RESERVE | MEM_COMMIT
//
// # Alignment
//
// Mappings always start on a page boundary. Alignments larger than the page
// size are served by over-mapping and slicing; the whole reservation is
// released on Close.
//
// # Thread Safety
//
// Close is idempotent and protected by an atomic flag. Callers must ensure
// nothing touches Bytes() after Close() returns.
package mmap
