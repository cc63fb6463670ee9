package game

import "fmt"

type ActionKind uint8

const (
	ActionTick ActionKind = iota
	ActionCreateNote
	ActionPlayBackgroundNote
	ActionPushKey
	ActionLastTime
)

func (k ActionKind) String() string {
	switch k {
	case ActionTick:
		return "Tick"
	case ActionCreateNote:
		return "CreateNote"
	case ActionPlayBackgroundNote:
		return "PlayBackgroundNote"
	case ActionPushKey:
		return "PushKey"
	case ActionLastTime:
		return "LastTime"
	}
	return fmt.Sprintf("ActionKind(%d)", uint8(k))
}

// Action is one event of the stream. Only the fields of its Kind are set.
type Action struct {
	Kind ActionKind
	Time float64 // Tick, LastTime
	Note Note    // CreateNote, PlayBackgroundNote
	Key  Key     // PushKey
}

func Tick(elapsed float64) Action {
	return Action{Kind: ActionTick, Time: elapsed}
}

func CreateNote(n Note) Action {
	return Action{Kind: ActionCreateNote, Note: n}
}

func PlayBackgroundNote(n Note) Action {
	return Action{Kind: ActionPlayBackgroundNote, Note: n}
}

func PushKey(k Key) Action {
	return Action{Kind: ActionPushKey, Key: k}
}

func LastTime(t float64) Action {
	return Action{Kind: ActionLastTime, Time: t}
}

func (a Action) String() string {
	switch a.Kind {
	case ActionTick, ActionLastTime:
		return fmt.Sprintf("%v(%v)", a.Kind, a.Time)
	case ActionPushKey:
		return fmt.Sprintf("%v(%v)", a.Kind, a.Key)
	}
	return fmt.Sprintf("%v(%v %v)", a.Kind, a.Note.Instrument, a.Note.Pitch)
}
