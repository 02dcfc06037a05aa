package utils

import "encoding/binary"

// All multi-byte scalars in a dart buffer are little-endian on the wire.
// These helpers are thin wrappers over encoding/binary.LittleEndian so
// call sites in internal/bufview read as "put/get the raw type" rather
// than repeating byte-order plumbing, mirroring internal/utils.ReadUint64.

// PutUint16 writes v little-endian at b[0:2]. b must have length >= 2.
func PutUint16(b []byte, v uint16) { binary.LittleEndian.PutUint16(b, v) }

// PutUint32 writes v little-endian at b[0:4]. b must have length >= 4.
func PutUint32(b []byte, v uint32) { binary.LittleEndian.PutUint32(b, v) }

// PutUint64 writes v little-endian at b[0:8]. b must have length >= 8.
func PutUint64(b []byte, v uint64) { binary.LittleEndian.PutUint64(b, v) }

// GetUint16 reads a little-endian uint16 from b[0:2].
func GetUint16(b []byte) uint16 { return binary.LittleEndian.Uint16(b) }

// GetUint32 reads a little-endian uint32 from b[0:4].
func GetUint32(b []byte) uint32 { return binary.LittleEndian.Uint32(b) }

// GetUint64 reads a little-endian uint64 from b[0:8].
func GetUint64(b []byte) uint64 { return binary.LittleEndian.Uint64(b) }
