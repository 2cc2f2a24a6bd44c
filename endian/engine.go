// Package endian provides byte order utilities for the UFS binary container.
//
// It combines the ByteOrder and AppendByteOrder interfaces of encoding/binary
// into a single EndianEngine, so the primitive codec can both append to a
// growing buffer and decode from a fixed one through the same value.
//
// # Basic Usage
//
// The UFS container is big-endian throughout:
//
//	engine := endian.GetUFSEngine()
//	w := encoding.NewWriter(engine)
//
// The little-endian engine exists for tests and for tooling that inspects
// foreign layouts; UFS files written with it are not readable by other tools.
//
// # Thread Safety
//
// All functions and methods in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian from
// the standard library.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// GetUFSEngine returns the engine mandated by the UFS container layout.
func GetUFSEngine() EndianEngine {
	return binary.BigEndian
}

// Parse resolves an engine by name ("big" or "little", case-insensitive).
func Parse(name string) (EndianEngine, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "big", "be", "big-endian":
		return binary.BigEndian, nil
	case "little", "le", "little-endian":
		return binary.LittleEndian, nil
	default:
		return nil, fmt.Errorf("unknown byte order %q", name)
	}
}
