package channel

// Key identifies a preferred channel by normalized name and country. An empty
// Country is the null country.
type Key struct {
	Name    string
	Country string
}

// WithoutCountry returns the same name under the null country.
func (k Key) WithoutCountry() Key {
	return Key{Name: k.Name}
}

// Tier names the lookup that produced a match.
type Tier int

const (
	TierNone Tier = iota
	TierID
	TierNameCountry
	TierName
)

func (t Tier) String() string {
	switch t {
	case TierID:
		return "id"
	case TierNameCountry:
		return "name_country"
	case TierName:
		return "name"
	default:
		return "none"
	}
}
