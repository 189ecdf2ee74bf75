package java

import "fmt"

// Version is the tooling interface version number.
type Version struct {
	Major uint16
	Minor uint8
	Micro uint8
}

// Packed version layout: major in bits 28..16, minor in 15..8, micro in 7..0.
const (
	versionMajorMask  = 0x0FFF0000
	versionMinorMask  = 0x0000FF00
	versionMicroMask  = 0x000000FF
	versionMajorShift = 16
	versionMinorShift = 8
)

// VersionFromPacked decodes the packed native version word.
func VersionFromPacked(v uint32) Version {
	return Version{
		Major: uint16((v & versionMajorMask) >> versionMajorShift),
		Minor: uint8((v & versionMinorMask) >> versionMinorShift),
		Micro: uint8(v & versionMicroMask),
	}
}

// UnknownVersion is reported by backends that have no version to offer.
func UnknownVersion() Version {
	return Version{}
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Micro)
}
