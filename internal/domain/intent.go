package domain

// IntentType classifies what the operator wants to do.
type IntentType int

const (
	IntentUnknown IntentType = iota
	IntentNewDrink
	IntentNewCauldron
	IntentSetName     // payload: text; Quality carries the variant
	IntentFind        // search the ingredient catalog
	IntentPick        // payload: "<n> <amount>"
	IntentCustom      // payload: "<id>/<amount>"
	IntentEffects     // search the effect catalog
	IntentEffect      // payload: "<n> [level] [duration]"
	IntentCustomBatch // payload: comma-separated effect list
	IntentText        // payload: text; Section carries the block
	IntentSet         // payload: "<key> <value>"
	IntentUnset       // payload: "<key>"
	IntentShow
	IntentStatus
	IntentFinalize
	IntentSave // payload: file path
	IntentCodes
	IntentGuide // payload: "lore", "server" or "player"
	IntentHelp
	IntentQuit
)

// String returns a human-readable intent type.
func (i IntentType) String() string {
	switch i {
	case IntentNewDrink:
		return "new_drink"
	case IntentNewCauldron:
		return "new_cauldron"
	case IntentSetName:
		return "set_name"
	case IntentFind:
		return "find"
	case IntentPick:
		return "pick"
	case IntentCustom:
		return "custom"
	case IntentEffects:
		return "effects"
	case IntentEffect:
		return "effect"
	case IntentCustomBatch:
		return "custom_effects"
	case IntentText:
		return "text"
	case IntentSet:
		return "set"
	case IntentUnset:
		return "unset"
	case IntentShow:
		return "show"
	case IntentStatus:
		return "status"
	case IntentFinalize:
		return "finalize"
	case IntentSave:
		return "save"
	case IntentCodes:
		return "codes"
	case IntentGuide:
		return "guide"
	case IntentHelp:
		return "help"
	case IntentQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Intent represents a parsed operator action.
type Intent struct {
	Type    IntentType
	Payload string
	Quality Quality // for IntentSetName
	Section Section // for IntentText
}
