// Package gedo provides pluggable memory allocation and allocator-aware
// containers for programs that want explicit control over memory
// provenance instead of a single global allocator.
//
// The core is the Allocator capability with two implementations:
//
//   - Heap: delegates to the process heap, every block independently
//     freeable.
//   - Arena: bump-pointer allocation from one upfront reservation,
//     O(1) allocation, bulk-only reclaim via Reset.
//
// Containers (container.Array, strs.String) borrow an Allocator at
// construction and route all growth and destruction back to it. Helpers
// that do not receive an explicit allocator use the process-wide default
// slot (Default / SetDefault).
//
// Basic usage:
//
//	arena, err := gedo.NewArena(gedo.MegaBytesToBytes(1))
//	if err != nil {
//		return err
//	}
//	defer arena.Close()
//
//	block, err := arena.Allocate(1024)
//	...
//	arena.Reset() // O(1) bulk reclaim, invalidates all blocks
//
// Allocators and containers are not goroutine-safe; share an allocator
// across goroutines only with external serialization, or give each
// goroutine its own.
package gedo
