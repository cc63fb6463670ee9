package game

import "git.lost.host/meutraa/fret/internal/vec"

var down = vec.UnitVectorInDirection(180)

// Reducer is the pure transition function of the game.
type Reducer struct {
	Params Params
}

func NewReducer(p Params) Reducer {
	return Reducer{Params: p}
}

// Apply returns the state following s after action a, and the effects the
// transition asks for. It never fails and never performs I/O.
func (r Reducer) Apply(s State, a Action) (State, []Effect) {
	switch a.Kind {
	case ActionTick:
		return r.tick(s, a.Time), nil
	case ActionCreateNote:
		return r.createNote(s, a.Note), nil
	case ActionPlayBackgroundNote:
		return s, []Effect{{Kind: EffectPlay, Note: a.Note}}
	case ActionPushKey:
		return r.pushKey(s, a.Key)
	case ActionLastTime:
		s.LastCount = a.Time
		return s, nil
	}
	return s, nil
}

// Reduce applies actions in order, discarding effects.
func (r Reducer) Reduce(s State, actions ...Action) State {
	for _, a := range actions {
		s, _ = r.Apply(s, a)
	}
	return s
}

func (r Reducer) tick(s State, elapsed float64) State {
	active := make([]FallingNote, 0, len(s.Notes))
	expired := []FallingNote{}
	for _, n := range s.Notes {
		if n.Pos.Y > r.Params.CanvasHeight {
			expired = append(expired, n)
			continue
		}
		n.Pos = n.Pos.Add(down.Scale(n.Speed))
		active = append(active, n)
	}

	s.Notes = active
	s.Exit = expired
	s.Time = elapsed
	s.GameOver = s.GameOver || elapsed >= s.LastCount
	return s
}

func (r Reducer) createNote(s State, note Note) State {
	column := ColumnForPitch(note.Pitch)
	n := FallingNote{
		ID:         noteID(s.ObjCount + 1),
		Pos:        vec.Vec{X: column.X(r.Params.CanvasWidth), Y: 0},
		CreateTime: s.Time,
		Radius:     r.Params.Radius,
		Note:       note,
		Column:     column,
		Speed:      r.Params.NoteSpeed,
	}

	notes := make([]FallingNote, len(s.Notes), len(s.Notes)+1)
	copy(notes, s.Notes)
	s.Notes = append(notes, n)
	s.ObjCount++
	return s
}

func (r Reducer) pushKey(s State, key Key) (State, []Effect) {
	judgement, i := Judge(r.Params, s, key)
	switch judgement {
	case Hit:
		hit := s.Notes[i]
		hit.SuccessfullyPressed = true

		notes := make([]FallingNote, 0, len(s.Notes)-1)
		notes = append(notes, s.Notes[:i]...)
		notes = append(notes, s.Notes[i+1:]...)
		exit := make([]FallingNote, len(s.Exit), len(s.Exit)+1)
		copy(exit, s.Exit)

		s.Notes = notes
		s.Exit = append(exit, hit)
		s.Score++
		return s, []Effect{{Kind: EffectPlay, Note: hit.Note}}
	case Miss:
		s.ObjCount++
		return s, []Effect{{Kind: EffectFiller, Note: fillerNote(s.ObjCount, &s.Notes[i].Note)}}
	}
	s.ObjCount++
	return s, []Effect{{Kind: EffectFiller, Note: fillerNote(s.ObjCount, nil)}}
}
