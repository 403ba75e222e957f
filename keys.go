package libsai

// KeyTable is one of the four fixed 256-entry lookup tables that parameterize
// the page cipher. Only User is used for regular document containers; the
// others protect other container flavors produced by the same application
// and are kept here so callers can open those containers too.
type KeyTable [256]uint32

// KeyTableName selects which KeyTable a container was (or should be) opened
// with. It is not a secret within a given container - it only picks which of
// the four fixed tables to run the cipher against.
type KeyTableName int

const (
	KeyUser KeyTableName = iota
	KeyNotRemoveMe
	KeyLocalState
	KeySystem
)

func (n KeyTableName) String() string {
	switch n {
	case KeyUser:
		return "User"
	case KeyNotRemoveMe:
		return "NotRemoveMe"
	case KeyLocalState:
		return "LocalState"
	case KeySystem:
		return "System"
	default:
		return "Unknown"
	}
}

// table returns the fixed KeyTable backing a KeyTableName.
func (n KeyTableName) table() *KeyTable {
	switch n {
	case KeyUser:
		return &userKeyTable
	case KeyNotRemoveMe:
		return &notRemoveMeKeyTable
	case KeyLocalState:
		return &localStateKeyTable
	case KeySystem:
		return &systemKeyTable
	default:
		return &userKeyTable
	}
}
