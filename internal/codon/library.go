package codon

import (
	"fmt"
	"math/big"
	"strconv"
	"sync"
)

// Position is a named degenerate codon slot in a library.
type Position struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Codon string `json:"codon"`
}

// LibraryRecord is the serializable snapshot of a library, used for
// persistence and for service payloads.
type LibraryRecord struct {
	Name      string      `json:"name"`
	Positions []*Position `json:"positions"`
}

// Library is an ordered, never-empty sequence of positions making up a
// combinatorial codon library. Results are only replaced wholesale: a
// recalculation either updates every position or none.
type Library struct {
	mu        sync.Mutex
	name      string
	positions []*Position
	results   []*Analysis
	nextID    int
}

// NewLibrary returns a library holding a single NNK position, the usual
// starting point for saturation mutagenesis.
func NewLibrary(name string) *Library {
	l := &Library{name: name, nextID: 2}
	l.positions = []*Position{{ID: 1, Name: "Position 1", Codon: "NNK"}}
	return l
}

// FromRecord restores a library from its persisted snapshot.
func FromRecord(rec *LibraryRecord) (*Library, error) {
	if len(rec.Positions) == 0 {
		return nil, fmt.Errorf("library %q has no positions", rec.Name)
	}

	l := &Library{name: rec.Name, nextID: 1}
	for _, p := range rec.Positions {
		cp := *p
		l.positions = append(l.positions, &cp)
		if p.ID >= l.nextID {
			l.nextID = p.ID + 1
		}
	}
	return l, nil
}

// Record returns a snapshot suitable for persistence.
func (l *Library) Record() *LibraryRecord {
	l.mu.Lock()
	defer l.mu.Unlock()

	rec := &LibraryRecord{Name: l.name}
	for _, p := range l.positions {
		cp := *p
		rec.Positions = append(rec.Positions, &cp)
	}
	return rec
}

// Name returns the library's name.
func (l *Library) Name() string {
	return l.name
}

// Positions returns a copy of the position list in order.
func (l *Library) Positions() []*Position {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]*Position, len(l.positions))
	for i, p := range l.positions {
		cp := *p
		out[i] = &cp
	}
	return out
}

// AddPosition appends a new position and returns it. Adding never removes
// or invalidates existing positions or results.
func (l *Library) AddPosition(name, code string) *Position {
	l.mu.Lock()
	defer l.mu.Unlock()

	if name == "" {
		name = "Position " + strconv.Itoa(len(l.positions)+1)
	}
	p := &Position{ID: l.nextID, Name: name, Codon: code}
	l.nextID++
	l.positions = append(l.positions, p)
	return p
}

// UpdatePosition replaces the degenerate codon of the identified position.
func (l *Library) UpdatePosition(id int, code string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, p := range l.positions {
		if p.ID == id {
			p.Codon = code
			return nil
		}
	}
	return fmt.Errorf("no position with id %d", id)
}

// RenamePosition replaces the name of the identified position.
func (l *Library) RenamePosition(id int, name string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, p := range l.positions {
		if p.ID == id {
			p.Name = name
			return nil
		}
	}
	return fmt.Errorf("no position with id %d", id)
}

// RemovePosition deletes the identified position. Removal is rejected when
// it would leave the library empty; the library is left unchanged.
func (l *Library) RemovePosition(id int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.positions) == 1 {
		return ErrCannotRemoveLastPosition
	}
	for i, p := range l.positions {
		if p.ID == id {
			l.positions = append(l.positions[:i], l.positions[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("no position with id %d", id)
}

// Recalculate analyzes every position. The new result set is committed
// only once every position analyzed cleanly; on any failure the previous
// results are kept as-is.
func (l *Library) Recalculate() ([]*Analysis, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fresh := make([]*Analysis, 0, len(l.positions))
	for _, p := range l.positions {
		a, err := Analyze(p.Codon)
		if err != nil {
			return nil, fmt.Errorf("position %q: %w", p.Name, err)
		}
		fresh = append(fresh, a)
	}

	l.results = fresh
	return fresh, nil
}

// Results returns the last committed analyses, or nil before the first
// successful recalculation.
func (l *Library) Results() []*Analysis {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.results
}

// Diversity returns the total library diversity: the product of every
// position's expansion size. The product is exact at any magnitude.
func (l *Library) Diversity() (*big.Int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	total := big.NewInt(1)
	for _, p := range l.positions {
		size, err := ExpansionSize(p.Codon)
		if err != nil {
			return nil, fmt.Errorf("position %q: %w", p.Name, err)
		}
		total.Mul(total, big.NewInt(int64(size)))
	}
	return total, nil
}

// PositionsWithStop returns the positions whose expansion contains at
// least one stop codon.
func (l *Library) PositionsWithStop() ([]*Position, error) {
	var flagged []*Position
	for _, p := range l.Positions() {
		a, err := Analyze(p.Codon)
		if err != nil {
			return nil, fmt.Errorf("position %q: %w", p.Name, err)
		}
		if a.HasStop {
			flagged = append(flagged, p)
		}
	}
	return flagged, nil
}

// FormatDiversity renders a diversity count for display: exact below 1000,
// exponential notation at or above, regardless of magnitude.
func FormatDiversity(n *big.Int) string {
	digits := n.String()
	if len(digits) < 4 {
		return digits
	}

	// round the leading four digits to three significant figures
	lead, _ := strconv.Atoi(digits[:4])
	mantissa := (lead + 5) / 10
	exp := len(digits) - 1
	if mantissa == 1000 {
		mantissa = 100
		exp++
	}
	return fmt.Sprintf("%d.%02de+%02d", mantissa/100, mantissa%100, exp)
}
