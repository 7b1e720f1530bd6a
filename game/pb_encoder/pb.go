// Package pb encodes game frames as the protobuf messages of tilt.proto.
package pb

//go:generate protoc --go_out=. --go_opt=paths=source_relative tilt.proto

import (
	"errors"
	"fmt"

	"github.com/beka-birhanu/vinom-tilt/game"
	"google.golang.org/protobuf/proto"
)

// Decoding errors.
var (
	ErrNilWorld  = errors.New("pb: nil world")
	ErrCellCount = errors.New("pb: cell count does not match dimensions")
	ErrCellState = errors.New("pb: unknown cell state")
	ErrWorldID   = errors.New("pb: malformed world id")
)

var _ game.Encoder = &Protobuf{}

type Protobuf struct{}

// MarshalSnapshot implements game.Encoder.
func (p *Protobuf) MarshalSnapshot(s game.Snapshot) ([]byte, error) {
	snapshot := snapshotFromGame(s)
	return proto.Marshal(snapshot)
}

// MarshalWorld implements game.Encoder.
func (p *Protobuf) MarshalWorld(w *game.World) ([]byte, error) {
	if w == nil {
		return nil, ErrNilWorld
	}
	world := worldFromGame(w)
	return proto.Marshal(world)
}

// UnmarshalSnapshot decodes a Snapshot message.
func (p *Protobuf) UnmarshalSnapshot(b []byte) (game.Snapshot, error) {
	var snapshot Snapshot
	if err := proto.Unmarshal(b, &snapshot); err != nil {
		return game.Snapshot{}, err
	}
	return snapshotToGame(&snapshot)
}

// UnmarshalWorld decodes a World message. Dimensions are validated before
// the grid is allocated.
func (p *Protobuf) UnmarshalWorld(b []byte) (*game.World, error) {
	var world World
	if err := proto.Unmarshal(b, &world); err != nil {
		return nil, err
	}
	w, err := worldToGame(&world)
	if err != nil {
		return nil, fmt.Errorf("decoding world: %w", err)
	}
	return w, nil
}
