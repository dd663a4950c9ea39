package gedo

const (
	// KB is the number of bytes in a kilobyte.
	KB = 1024
	// MB is the number of bytes in a megabyte.
	MB = 1024 * KB
	// GB is the number of bytes in a gigabyte.
	GB = 1024 * MB
)

// BytesToMegaBytes converts a byte count to megabytes.
func BytesToMegaBytes(bytes int) float64 {
	return float64(bytes) / float64(MB)
}

// BytesToGigaBytes converts a byte count to gigabytes.
func BytesToGigaBytes(bytes int) float64 {
	return float64(bytes) / float64(GB)
}

// MegaBytesToBytes converts megabytes to a byte count.
func MegaBytesToBytes(megabytes int) int {
	return megabytes * MB
}

// GigaBytesToBytes converts gigabytes to a byte count.
func GigaBytesToBytes(gigabytes int) int {
	return gigabytes * GB
}
