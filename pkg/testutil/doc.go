// Package testutil provides fixtures for testing durp packages.
//
// Trees are declared inline as a Tree map and materialized either on disk
// (TempTree, WriteTree) or in memory (MemTree). ComponentStructure is the
// shared sample project containing valid, invalid and nested components.
package testutil
