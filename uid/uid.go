package uid

import (
	"math/rand"

	"github.com/bwmarrin/snowflake"
)

// ID is a unique identifier for a record. IDs are snowflakes rendered as
// base58 in any text encoding, so they are safe to use in URLs and JWT
// claims without escaping.
type ID snowflake.ID

var idGen *snowflake.Node

func init() {
	snowflake.Epoch = 1640995200000 // 2022-01-01T00:00:00Z

	var err error
	//nolint:gosec // the node ID does not need to be cryptographically random
	idGen, err = snowflake.NewNode(rand.Int63n(1024))
	if err != nil {
		panic(err)
	}
}

// New returns an ID using a random node ID. The node ID is selected when the
// process starts, and won't change until the process is restarted.
func New() ID {
	return ID(idGen.Generate())
}

func (u ID) String() string {
	return snowflake.ID(u).Base58()
}

func (u ID) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *ID) UnmarshalText(b []byte) error {
	id, err := snowflake.ParseBase58(b)
	if err != nil {
		return err
	}
	*u = ID(id)
	return nil
}

// Parse converts a base58 encoded string into an ID.
func Parse(b []byte) (ID, error) {
	var id ID
	err := id.UnmarshalText(b)
	return id, err
}
