package channel

// Reason explains why a merge comparison kept or replaced the winner.
type Reason string

const (
	ReasonFirstSeen     Reason = "first_seen"
	ReasonCarriesID     Reason = "carries_id"
	ReasonPrimarySource Reason = "primary_source"
)

// Collision records one losing candidate for an identity key.
type Collision struct {
	Key           string
	KeptName      string
	DroppedName   string
	KeptSource    string
	DroppedSource string
	KeptID        string
	DroppedID     string
	Reason        Reason
}

// Group is every candidate that shared an identity key, resolved to one winner.
type Group struct {
	Key     string
	Winner  Record
	Dropped []Collision
}
