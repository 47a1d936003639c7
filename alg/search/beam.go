package search

import (
	"fmt"
	"sort"
	"strings"
)

type Candidate interface {
	Score() float64
}

// Agenda keeps the BeamSize best candidates. Ordering is by descending
// score; equal scores keep the order in which they were added.
type Agenda[C Candidate] struct {
	BeamSize int
	Items    []C
}

func NewAgenda[C Candidate](beamSize int) *Agenda[C] {
	if beamSize <= 0 {
		panic(fmt.Sprintf("Beam size must be positive, got %d", beamSize))
	}
	return &Agenda[C]{BeamSize: beamSize}
}

func (a *Agenda[C]) AddCandidates(cs []C) {
	a.Items = append(a.Items, cs...)
}

func (a *Agenda[C]) AddCandidate(c C) {
	a.Items = append(a.Items, c)
}

// Top sorts the candidates and truncates them to the beam.
func (a *Agenda[C]) Top() []C {
	sort.SliceStable(a.Items, func(i, j int) bool {
		return a.Items[i].Score() > a.Items[j].Score()
	})
	if len(a.Items) > a.BeamSize {
		a.Items = a.Items[:a.BeamSize]
	}
	return a.Items
}

func (a *Agenda[C]) String() string {
	retval := make([]string, len(a.Items))
	for i, c := range a.Items {
		retval[i] = fmt.Sprintf("%v:%v", c, c.Score())
	}
	return strings.Join(retval, ",")
}

// Beam keeps the beamSize best of cs in a single pass.
func Beam[C Candidate](beamSize int, cs []C) []C {
	a := NewAgenda[C](beamSize)
	a.AddCandidates(cs)
	return a.Top()
}
