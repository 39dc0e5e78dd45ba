package models

import "time"

type Season struct {
	ID             string
	Day            int
	Length         int
	Teams          []Team
	History        []GameResult
	PracticedToday bool
	StartedAt      time.Time
}

// Clone returns a copy that shares no mutable state with s. GameResults are
// immutable once produced, so History is copied shallowly.
func (s Season) Clone() Season {
	c := s
	c.Teams = make([]Team, len(s.Teams))
	for i, t := range s.Teams {
		c.Teams[i] = t.Clone()
	}
	c.History = append([]GameResult(nil), s.History...)
	return c
}

func (s *Season) Finished() bool {
	return s.Day > s.Length
}

func (s *Season) Team(id string) (*Team, int, bool) {
	for i := range s.Teams {
		if s.Teams[i].ID == id {
			return &s.Teams[i], i, true
		}
	}
	return nil, -1, false
}
