package score

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"time"

	"git.lost.host/meutraa/fret/internal/driver"
	"git.lost.host/meutraa/fret/internal/game"
	_ "github.com/mattn/go-sqlite3"
)

type DefaultScorer struct {
	db *sql.DB
}

// InputsCompact holds the press times of one key.
type InputsCompact struct {
	Index int
	Times []time.Duration
}

func compactInputs(inputs []game.Input) []InputsCompact {
	colCount := 0
	for _, i := range inputs {
		if int(i.Key) >= colCount {
			colCount = int(i.Key) + 1
		}
	}
	ins := make([]InputsCompact, colCount)
	for i := range ins {
		ins[i].Index = i
		ins[i].Times = []time.Duration{}
	}
	for _, i := range inputs {
		ins[i.Key].Times = append(ins[i.Key].Times, i.At)
	}
	return ins
}

// uncompactInputs merges the keys back into one stream ordered by time.
// Presses of the same key keep their order.
func uncompactInputs(inputs []InputsCompact) []game.Input {
	ins := []game.Input{}
	for _, i := range inputs {
		for _, t := range i.Times {
			ins = append(ins, game.Input{Key: game.Key(i.Index), At: t})
		}
	}
	sort.SliceStable(ins, func(a, b int) bool {
		return ins[a].At < ins[b].At
	})
	return ins
}

func (s *DefaultScorer) Init(file string) error {
	db, err := sql.Open("sqlite3", file)
	if err != nil {
		return err
	}

	initStatement := `
	create table if not exists scores 
	  (
		  id integer not null primary key, 
		  sum text,
		  score integer,
		  params text,
		  inputs text,
		  played_at integer
	  );
	`
	_, err = db.Exec(initStatement)
	if nil != err {
		db.Close()
		return fmt.Errorf("unable to create score table: %w", err)
	}

	s.db = db
	return nil
}

func (s *DefaultScorer) Deinit() {
	if nil != s.db {
		s.db.Close()
	}
}

func (s *DefaultScorer) Save(c *game.Chart, h *History) {
	data, err := json.Marshal(compactInputs(h.Inputs))
	if nil != err {
		log.Println("unable to marshal inputs", err)
		return
	}
	params, err := json.Marshal(h.Params)
	if nil != err {
		log.Println("unable to marshal params", err)
		return
	}
	if h.PlayedAt.IsZero() {
		h.PlayedAt = time.Now()
	}
	res, err := s.db.Exec("insert into scores(sum, score, params, inputs, played_at) values(?, ?, ?, ?, ?)",
		c.Hash, h.Score, string(params), string(data), h.PlayedAt.Unix())
	if nil != err {
		log.Println("unable to save score", err)
		return
	}
	h.Sum = c.Hash
	h.ID, _ = res.LastInsertId()
}

func (s *DefaultScorer) Load(c *game.Chart) []History {
	return s.query("select id, sum, score, params, inputs, played_at from scores where sum = ? order by id", c.Hash)
}

func (s *DefaultScorer) Best(c *game.Chart) (History, bool) {
	histories := s.query("select id, sum, score, params, inputs, played_at from scores where sum = ? order by score desc, id limit 1", c.Hash)
	if len(histories) == 0 {
		return History{}, false
	}
	return histories[0], true
}

func (s *DefaultScorer) query(q string, args ...interface{}) []History {
	histories := []History{}
	rows, err := s.db.Query(q, args...)
	if nil != err {
		log.Println("unable to load scores", err)
		return histories
	}
	defer rows.Close()
	for rows.Next() {
		var h History
		var params, inputs string
		var playedAt int64
		if err := rows.Scan(&h.ID, &h.Sum, &h.Score, &params, &inputs, &playedAt); nil != err {
			log.Println("unable to scan score", err)
			continue
		}
		if err := json.Unmarshal([]byte(params), &h.Params); nil != err {
			log.Println("unable to unmarshal params", err)
			continue
		}
		var ns []InputsCompact
		if err := json.Unmarshal([]byte(inputs), &ns); nil != err {
			log.Println("unable to unmarshal input history", err)
			continue
		}
		h.Inputs = uncompactInputs(ns)
		h.PlayedAt = time.Unix(playedAt, 0)
		histories = append(histories, h)
	}
	return histories
}

// Replay folds the recorded inputs over the chart again, with the parameters
// the run was played with.
func Replay(c *game.Chart, h *History) (game.State, error) {
	return NewReplayer(c).Replay(h)
}

// Replayer replays runs of one chart, building its timeline once for each
// set of parameters.
type Replayer struct {
	chart     *game.Chart
	timelines map[game.Params]*driver.Timeline
}

func NewReplayer(c *game.Chart) *Replayer {
	return &Replayer{chart: c, timelines: map[game.Params]*driver.Timeline{}}
}

func (r *Replayer) Replay(h *History) (game.State, error) {
	timeline, ok := r.timelines[h.Params]
	if !ok {
		timeline = driver.NewTimeline(r.chart, h.Params)
		r.timelines[h.Params] = timeline
	}
	return driver.Simulate(game.NewReducer(h.Params), timeline.Clone(), h.Inputs, h.Params.TickInterval, nil)
}
