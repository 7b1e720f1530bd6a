package pb

import (
	"github.com/beka-birhanu/vinom-tilt/game"
	"github.com/go-gl/mathgl/mgl64"
)

func snapshotFromGame(s game.Snapshot) *Snapshot {
	return &Snapshot{
		WorldId:  uuidBytes(s.WorldID),
		Frame:    s.Frame,
		X:        s.Position.X(),
		Y:        s.Position.Y(),
		Z:        s.Position.Z(),
		Vx:       s.Velocity.X(),
		Vz:       s.Velocity.Y(),
		Contacts: int32(s.Contacts),
		Bounces:  int32(s.Bounces),
		Finished: s.Finished,
	}
}

func snapshotToGame(s *Snapshot) (game.Snapshot, error) {
	id, err := parseUUID(s.GetWorldId())
	if err != nil {
		return game.Snapshot{}, err
	}
	return game.Snapshot{
		WorldID:  id,
		Frame:    s.GetFrame(),
		Position: mgl64.Vec3{s.GetX(), s.GetY(), s.GetZ()},
		Velocity: mgl64.Vec2{s.GetVx(), s.GetVz()},
		Contacts: int(s.GetContacts()),
		Bounces:  int(s.GetBounces()),
		Finished: s.GetFinished(),
	}, nil
}
