package model

// ZoneName identifies a drop zone on a board
type ZoneName string

const (
	ZoneColumn1 ZoneName = "col1"
	ZoneColumn2 ZoneName = "col2"
	ZoneColumn3 ZoneName = "col3"
	ZoneLink    ZoneName = "linkBox"
	ZoneUnlink  ZoneName = "unlinkBox"
)

// AllZones lists every zone in display order
func AllZones() []ZoneName {
	return []ZoneName{ZoneColumn1, ZoneColumn2, ZoneColumn3, ZoneLink, ZoneUnlink}
}

// ZoneTitle returns the heading shown above a zone
func ZoneTitle(name ZoneName) string {
	switch name {
	case ZoneColumn1:
		return "Column 1"
	case ZoneColumn2:
		return "Column 2"
	case ZoneColumn3:
		return "Column 3"
	case ZoneLink:
		return "Link"
	case ZoneUnlink:
		return "Unlink"
	default:
		return string(name)
	}
}
