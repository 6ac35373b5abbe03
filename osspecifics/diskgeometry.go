package osspecifics

import "unsafe"

// diskGeometry mirrors DISK_GEOMETRY from winioctl.h.
type diskGeometry struct {
	Cylinders         int64
	MediaType         uint32
	TracksPerCylinder uint32
	SectorsPerTrack   uint32
	BytesPerSector    uint32
}

const diskGeometrySize = 24

var (
	_ [diskGeometrySize - unsafe.Sizeof(diskGeometry{})]byte
	_ [unsafe.Sizeof(diskGeometry{}) - diskGeometrySize]byte
	_ [20 - unsafe.Offsetof(diskGeometry{}.BytesPerSector)]byte
	_ [unsafe.Offsetof(diskGeometry{}.BytesPerSector) - 20]byte
)
