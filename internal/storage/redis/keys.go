package redis

import "github.com/mcoot/linkboard/internal/model"

// Board metadata lives in a HASH at <prefix>:board:<id>; each zone is a LIST
// at <prefix>:board:<id>:zone:<zone>.

func (s *Storage) boardKey(id model.BoardID) string {
	return s.cfg.keyPrefix() + ":board:" + string(id)
}

func (s *Storage) zoneKey(id model.BoardID, zone model.ZoneName) string {
	return s.boardKey(id) + ":zone:" + string(zone)
}
