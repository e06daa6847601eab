package scores

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/vmihailenco/msgpack/v5"
	bolt "go.etcd.io/bbolt"
)

// MaxEntries is how many results the table keeps.
const MaxEntries = 10

var ErrBlankName = errors.New("blank player name")

var (
	bucketScores = []byte("scores")
	bucketMeta   = []byte("meta")
	keyUpdated   = []byte("last_updated")
)

type Entry struct {
	Id    uuid.UUID `msgpack:"id"`
	Name  string    `msgpack:"name"`
	Score int       `msgpack:"score"`
	Date  time.Time `msgpack:"date"`
}

type PlayerStats struct {
	GamesPlayed  int
	HighestScore int
	AverageScore float64
	TotalScore   int
}

type DatabaseStats struct {
	TotalGames    int
	UniquePlayers int
	HighestScore  int
	// LastUpdated is zero when the table was never written.
	LastUpdated time.Time
}

// Store keeps the high-score table in a bbolt file. Entries are keyed by insertion
// sequence so equal scores keep their arrival order.
type Store struct {
	db  *bolt.DB
	now func() time.Time
}

func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open score store %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{bucketScores, bucketMeta} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init score store %s: %w", path, err)
	}
	log.Debugf("score store opened at %s", path)
	return &Store{db: db, now: time.Now}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Add records a finished game and trims the table back to MaxEntries. It reports
// whether the new entry survived the trim.
func (s *Store) Add(name string, score int) (bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return false, ErrBlankName
	}
	entry := Entry{Id: uuid.New(), Name: name, Score: score, Date: s.now()}
	kept := false
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketScores)
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		data, err := msgpack.Marshal(&entry)
		if err != nil {
			return err
		}
		if err := b.Put(seqKey(seq), data); err != nil {
			return err
		}
		kept, err = trim(b, entry.Id)
		if err != nil {
			return err
		}
		return touch(tx, entry.Date)
	})
	if err != nil {
		log.Errorf("score store add %q %d: %v", name, score, err)
		return false, fmt.Errorf("add score: %w", err)
	}
	log.Infof("score %d by %q recorded, in table: %v", score, name, kept)
	return kept, nil
}

type keyed struct {
	key   []byte
	entry Entry
}

func load(b *bolt.Bucket) ([]keyed, error) {
	all := []keyed{}
	err := b.ForEach(func(k, v []byte) error {
		var e Entry
		if err := msgpack.Unmarshal(v, &e); err != nil {
			return fmt.Errorf("decode entry %x: %w", k, err)
		}
		all = append(all, keyed{key: append([]byte(nil), k...), entry: e})
		return nil
	})
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].entry.Score > all[j].entry.Score
	})
	return all, err
}

func trim(b *bolt.Bucket, id uuid.UUID) (bool, error) {
	all, err := load(b)
	if err != nil {
		return false, err
	}
	kept := true
	for i := MaxEntries; i < len(all); i++ {
		if all[i].entry.Id == id {
			kept = false
		}
		if err := b.Delete(all[i].key); err != nil {
			return false, err
		}
	}
	return kept, nil
}

func touch(tx *bolt.Tx, t time.Time) error {
	data, err := t.MarshalBinary()
	if err != nil {
		return err
	}
	return tx.Bucket(bucketMeta).Put(keyUpdated, data)
}

func seqKey(seq uint64) []byte {
	k := make([]byte, 8)
	binary.BigEndian.PutUint64(k, seq)
	return k
}

// HighScores lists the table best first.
func (s *Store) HighScores() ([]Entry, error) {
	var entries []Entry
	err := s.db.View(func(tx *bolt.Tx) error {
		all, err := load(tx.Bucket(bucketScores))
		if err != nil {
			return err
		}
		entries = make([]Entry, 0, len(all))
		for _, k := range all {
			entries = append(entries, k.entry)
		}
		return nil
	})
	if err != nil {
		log.Warnf("score store read: %v", err)
		return nil, fmt.Errorf("high scores: %w", err)
	}
	return entries, nil
}

// IsHighScore reports whether score would enter the table: always while it has free
// slots, otherwise only when strictly above the lowest entry.
func (s *Store) IsHighScore(score int) (bool, error) {
	entries, err := s.HighScores()
	if err != nil {
		return false, err
	}
	if len(entries) < MaxEntries {
		return true, nil
	}
	return score > entries[len(entries)-1].Score, nil
}

// PlayerStats aggregates the entries matching name, ignoring case.
func (s *Store) PlayerStats(name string) (PlayerStats, error) {
	entries, err := s.HighScores()
	if err != nil {
		return PlayerStats{}, err
	}
	var st PlayerStats
	for _, e := range entries {
		if !strings.EqualFold(e.Name, strings.TrimSpace(name)) {
			continue
		}
		st.GamesPlayed++
		st.TotalScore += e.Score
		if st.GamesPlayed == 1 || e.Score > st.HighestScore {
			st.HighestScore = e.Score
		}
	}
	if st.GamesPlayed > 0 {
		st.AverageScore = float64(st.TotalScore) / float64(st.GamesPlayed)
	}
	return st, nil
}

func (s *Store) DatabaseStats() (DatabaseStats, error) {
	var st DatabaseStats
	err := s.db.View(func(tx *bolt.Tx) error {
		all, err := load(tx.Bucket(bucketScores))
		if err != nil {
			return err
		}
		names := map[string]bool{}
		for i, k := range all {
			names[k.entry.Name] = true
			if i == 0 {
				st.HighestScore = k.entry.Score
			}
		}
		st.TotalGames = len(all)
		st.UniquePlayers = len(names)
		if data := tx.Bucket(bucketMeta).Get(keyUpdated); data != nil {
			return st.LastUpdated.UnmarshalBinary(data)
		}
		return nil
	})
	if err != nil {
		return DatabaseStats{}, fmt.Errorf("database stats: %w", err)
	}
	return st, nil
}

// Clear drops every entry.
func (s *Store) Clear() error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(bucketScores); err != nil {
			return err
		}
		if _, err := tx.CreateBucket(bucketScores); err != nil {
			return err
		}
		return touch(tx, s.now())
	})
	if err != nil {
		return fmt.Errorf("clear scores: %w", err)
	}
	log.Infof("score store cleared")
	return nil
}
