package store

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/polaires/Protein-engineering-tools-sub000/config"
	"github.com/polaires/Protein-engineering-tools-sub000/internal/codon"
	"github.com/spf13/cobra"
)

// stderr is for logging to Stderr (without an annoying timestamp)
var stderr = log.New(os.Stderr, "", 0)

// LibraryDB wires the `library` cobra sub-commands to the SQLite store.
type LibraryDB struct{}

// NewLibraryDB returns a handle for the library sub-commands.
func NewLibraryDB() *LibraryDB {
	return &LibraryDB{}
}

// open connects to the configured library database, fataling on failure.
func (l *LibraryDB) open() *Store {
	c := config.New()
	s, err := New(c.DB)
	if err != nil {
		stderr.Fatal(err)
	}
	return s
}

// CreateCmd creates a new library seeded with a single NNK position.
func (l *LibraryDB) CreateCmd(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		stderr.Fatalf("expecting a library name. see 'library create --help'\n")
	}
	name := args[0]

	s := l.open()
	defer s.Close()

	if _, err := s.Load(name); err == nil {
		stderr.Fatalf("a library named %q already exists\n", name)
	}

	lib := codon.NewLibrary(name)
	if err := s.Save(lib.Record()); err != nil {
		stderr.Fatal(err)
	}
	fmt.Printf("created library %q\n", name)
}

// ListCmd prints every stored library with its positions and diversity.
func (l *LibraryDB) ListCmd(cmd *cobra.Command, args []string) {
	s := l.open()
	defer s.Close()

	names, err := s.List()
	if err != nil {
		stderr.Fatal(err)
	}
	if len(names) == 0 {
		fmt.Println("no libraries saved")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 3, ' ', 0)
	fmt.Fprintf(w, "library\tpositions\tdiversity\t\n")
	for _, name := range names {
		rec, err := s.Load(name)
		if err != nil {
			stderr.Fatal(err)
		}
		lib, err := codon.FromRecord(rec)
		if err != nil {
			stderr.Fatal(err)
		}

		diversity := "?"
		if d, err := lib.Diversity(); err == nil {
			diversity = codon.FormatDiversity(d)
		}
		fmt.Fprintf(w, "%s\t%d\t%s\n", name, len(rec.Positions), diversity)
	}
	w.Flush()
}

// DeleteCmd removes a library from the database by its name.
func (l *LibraryDB) DeleteCmd(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		stderr.Fatalf("expecting a library name. see 'library delete --help'\n")
	}

	s := l.open()
	defer s.Close()

	if err := s.Delete(args[0]); err != nil {
		stderr.Fatal(err)
	}
	fmt.Printf("deleted library %q\n", args[0])
}

// AddCmd appends a position to a library: add [library] [codon] [name...].
func (l *LibraryDB) AddCmd(cmd *cobra.Command, args []string) {
	if len(args) < 2 {
		stderr.Fatalf("expecting a library name and a degenerate codon. see 'library add --help'\n")
	}
	name := ""
	if len(args) > 2 {
		name = args[2]
	}

	s := l.open()
	defer s.Close()

	lib := l.load(s, args[0])
	p := lib.AddPosition(name, args[1])
	if err := s.Save(lib.Record()); err != nil {
		stderr.Fatal(err)
	}
	fmt.Printf("added position %d (%s) to %q\n", p.ID, p.Codon, args[0])
}

// SetCmd replaces a position's codon: set [library] [position id] [codon].
func (l *LibraryDB) SetCmd(cmd *cobra.Command, args []string) {
	if len(args) < 3 {
		stderr.Fatalf("expecting a library name, position id and codon. see 'library set --help'\n")
	}
	id, err := strconv.Atoi(args[1])
	if err != nil {
		stderr.Fatalf("%q is not a position id\n", args[1])
	}

	s := l.open()
	defer s.Close()

	lib := l.load(s, args[0])
	if err := lib.UpdatePosition(id, args[2]); err != nil {
		stderr.Fatal(err)
	}
	if err := s.Save(lib.Record()); err != nil {
		stderr.Fatal(err)
	}
	fmt.Printf("set position %d of %q to %s\n", id, args[0], args[2])
}

// RenameCmd renames a position: rename [library] [position id] [name].
func (l *LibraryDB) RenameCmd(cmd *cobra.Command, args []string) {
	if len(args) < 3 {
		stderr.Fatalf("expecting a library name, position id and new name. see 'library rename --help'\n")
	}
	id, err := strconv.Atoi(args[1])
	if err != nil {
		stderr.Fatalf("%q is not a position id\n", args[1])
	}

	s := l.open()
	defer s.Close()

	lib := l.load(s, args[0])
	if err := lib.RenamePosition(id, args[2]); err != nil {
		stderr.Fatal(err)
	}
	if err := s.Save(lib.Record()); err != nil {
		stderr.Fatal(err)
	}
	fmt.Printf("renamed position %d of %q to %q\n", id, args[0], args[2])
}

// RemoveCmd deletes a position: remove [library] [position id]. Removing
// the last remaining position is rejected.
func (l *LibraryDB) RemoveCmd(cmd *cobra.Command, args []string) {
	if len(args) < 2 {
		stderr.Fatalf("expecting a library name and position id. see 'library remove --help'\n")
	}
	id, err := strconv.Atoi(args[1])
	if err != nil {
		stderr.Fatalf("%q is not a position id\n", args[1])
	}

	s := l.open()
	defer s.Close()

	lib := l.load(s, args[0])
	if err := lib.RemovePosition(id); err != nil {
		stderr.Fatal(err)
	}
	if err := s.Save(lib.Record()); err != nil {
		stderr.Fatal(err)
	}
	fmt.Printf("removed position %d from %q\n", id, args[0])
}

// CalcCmd recalculates a library. Either every position analyzes cleanly
// and all results print, or the first bad position is reported and nothing
// else is shown.
func (l *LibraryDB) CalcCmd(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		stderr.Fatalf("expecting a library name. see 'library calc --help'\n")
	}

	s := l.open()
	defer s.Close()

	lib := l.load(s, args[0])
	analyses, err := lib.Recalculate()
	if err != nil {
		stderr.Fatal(err)
	}

	positions := lib.Positions()
	names := make([]string, len(positions))
	for i, p := range positions {
		names[i] = fmt.Sprintf("%s (%s)", p.Name, p.Codon)
	}
	codon.PrintAnalyses(os.Stdout, names, analyses)

	diversity, err := lib.Diversity()
	if err != nil {
		stderr.Fatal(err)
	}
	fmt.Printf("total diversity: %s\n", codon.FormatDiversity(diversity))

	flagged, err := lib.PositionsWithStop()
	if err != nil {
		stderr.Fatal(err)
	}
	for _, p := range flagged {
		fmt.Printf("warning: %s (%s) can produce stop codons\n", p.Name, p.Codon)
	}
}

// load reads and restores one library, fataling with a descriptive
// message when it doesn't exist.
func (l *LibraryDB) load(s *Store, name string) *codon.Library {
	rec, err := s.Load(name)
	if err != nil {
		stderr.Fatal(err)
	}
	lib, err := codon.FromRecord(rec)
	if err != nil {
		stderr.Fatal(err)
	}
	return lib
}
