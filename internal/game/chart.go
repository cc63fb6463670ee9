package game

type Chart struct {
	Name  string
	Hash  string // Content hash of the source, keys the score history
	Notes []Note

	UserCount       int
	BackgroundCount int
}

func NewChart(name, hash string, notes []Note) *Chart {
	c := &Chart{Name: name, Hash: hash, Notes: notes}
	for _, n := range notes {
		if n.UserPlayed {
			c.UserCount++
		} else {
			c.BackgroundCount++
		}
	}
	return c
}

// Last returns the final entry of the chart, which defines when the song ends.
func (c *Chart) Last() (Note, bool) {
	if len(c.Notes) == 0 {
		return Note{}, false
	}
	return c.Notes[len(c.Notes)-1], true
}
