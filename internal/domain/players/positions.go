package players

// Position identifies where a player lines up.
type Position string

const (
	QB Position = "QB"
	RB Position = "RB"
	FB Position = "FB"
	WR Position = "WR"
	TE Position = "TE"
	LT Position = "LT"
	LG Position = "LG"
	C  Position = "C"
	RG Position = "RG"
	RT Position = "RT"
	OL Position = "OL"

	DE  Position = "DE"
	DT  Position = "DT"
	DL  Position = "DL"
	MLB Position = "MLB"
	OLB Position = "OLB"
	LB  Position = "LB"
	CB  Position = "CB"
	FS  Position = "FS"
	SS  Position = "SS"
	S   Position = "S"

	K Position = "K"
	P Position = "P"
)

// aliases maps a specific slot to the generic positions allowed to fill it,
// in preference order after an exact match.
var aliases = map[Position][]Position{
	LT:  {OL},
	LG:  {OL},
	C:   {OL},
	RG:  {OL},
	RT:  {OL},
	OL:  {LT, LG, C, RG, RT},
	FB:  {RB, TE},
	DE:  {DL},
	DT:  {DL},
	DL:  {DE, DT},
	MLB: {LB, OLB},
	OLB: {LB, MLB},
	LB:  {MLB, OLB},
	FS:  {S, SS},
	SS:  {S, FS},
	S:   {FS, SS},
}

// Fills reports whether a player listed at have may line up in slot.
func Fills(have, slot Position) bool {
	if have == slot {
		return true
	}
	for _, alt := range aliases[slot] {
		if have == alt {
			return true
		}
	}
	return false
}

// IsOffense reports whether the position belongs to the offensive unit.
func IsOffense(pos Position) bool {
	switch pos {
	case QB, RB, FB, WR, TE, LT, LG, C, RG, RT, OL, K, P:
		return true
	}
	return false
}

// IsDefensiveBack reports whether the position plays in the secondary.
func IsDefensiveBack(pos Position) bool {
	switch pos {
	case CB, FS, SS, S:
		return true
	}
	return false
}

// IsLinebacker reports whether the position is a linebacker slot.
func IsLinebacker(pos Position) bool {
	switch pos {
	case MLB, OLB, LB:
		return true
	}
	return false
}

// IsDefensiveLine reports whether the position plays on the defensive front.
func IsDefensiveLine(pos Position) bool {
	switch pos {
	case DE, DT, DL:
		return true
	}
	return false
}

// IsOffensiveLine reports whether the position blocks on the interior.
func IsOffensiveLine(pos Position) bool {
	switch pos {
	case LT, LG, C, RG, RT, OL:
		return true
	}
	return false
}
