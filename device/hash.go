package device

import (
	"hash/crc32"
)

// Hash returns the prefab hash of a name: the CRC-32 (IEEE) of the name,
// as a signed 32 bit value.
func Hash(name string) int64 {
	return int64(int32(crc32.ChecksumIEEE([]byte(name))))
}
