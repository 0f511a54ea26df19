package games

// Status is the play-status facet decoded from a user tag.
type Status string

// Known status values. StatusUnknown means no status tag was found;
// it is never an error.
const (
	StatusUnknown   Status = ""
	StatusBacklog   Status = "Backlog"
	StatusTried     Status = "Tried"
	StatusRegret    Status = "Regret"
	StatusCompleted Status = "Completed"
	StatusPlaying   Status = "Playing"
)

// Length is the expected-playtime facet decoded from a user tag.
type Length string

// Known length values. LengthUnknown means no length tag was found.
const (
	LengthUnknown  Length = ""
	LengthShort    Length = "Short"
	LengthLong     Length = "Long"
	LengthInfinite Length = "Infinite"
)

// RawMetadataRow is one sparse key/value metadata row as stored by the
// launcher. Many rows exist per release key; TypeID selects the
// semantic meaning of Value.
type RawMetadataRow struct {
	ReleaseKey string
	TypeID     int64
	Value      string
}

// Entity is one ownership record for one game on one platform, keyed
// by the launcher's platform-qualified release key. It is created by
// the denormalizer and discarded after the merge into LogicalGame.
//
// Missing values are explicit: an empty MetaBlob means the release had
// no meta attribute, ReleaseYear 0 means no release date was found,
// Platform "" means the release key matched no known platform prefix.
type Entity struct {
	ReleaseKey     string
	RawTitle       string
	MetaBlob       string
	CanonicalTitle string
	Platform       string
	ReleaseYear    int
	Status         Status
	Length         Length
}

// OwnershipFacts carries the launcher's visibility signals for one
// release key. Owned reports whether the key appears in the user's
// release table at all; a key that was never owned is excluded even
// when the other flags look harmless.
type OwnershipFacts struct {
	IsDLC   bool
	Visible bool
	Hidden  bool
	Owned   bool
}
