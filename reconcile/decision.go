package reconcile

// Action is the correction to apply to a single torrent
type Action int

const (
	// ActionNone leaves the torrent untouched
	ActionNone Action = iota
	// ActionEnableForceStart lets the torrent bypass the queue to fetch metadata
	ActionEnableForceStart
	// ActionDisableForceStart returns the torrent to normal queueing
	ActionDisableForceStart
)

func (a Action) String() string {
	switch a {
	case ActionEnableForceStart:
		return "enable-force-start"
	case ActionDisableForceStart:
		return "disable-force-start"
	default:
		return "none"
	}
}

type torrentState struct {
	hasMetadata bool
	forceStart  bool
}

// decisionTable maps every observable state to its action
var decisionTable = map[torrentState]Action{
	{hasMetadata: false, forceStart: false}: ActionEnableForceStart,
	{hasMetadata: false, forceStart: true}:  ActionNone,
	{hasMetadata: true, forceStart: true}:   ActionDisableForceStart,
	{hasMetadata: true, forceStart: false}:  ActionNone,
}

// Decide returns the action for a torrent in the given state
func Decide(hasMetadata, forceStart bool) Action {
	return decisionTable[torrentState{hasMetadata: hasMetadata, forceStart: forceStart}]
}
