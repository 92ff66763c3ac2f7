// Package menu implements the interactive numbered menu over the storage
// engine. Each selection runs to completion before the next prompt; invalid
// selections and malformed dates are reported and control returns to the
// menu.
package menu

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/mesh-intelligence/reelog/internal/clock"
	"github.com/mesh-intelligence/reelog/internal/sqlite"
	"github.com/mesh-intelligence/reelog/internal/views"
	"github.com/mesh-intelligence/reelog/pkg/types"
)

// Option enumerates the menu entries; values are the numbers the user types.
type Option int

const (
	OptionAddUser Option = iota + 1
	OptionAddMovie
	OptionWatchMovie
	OptionViewUsers
	OptionViewAllMovies
	OptionViewUpcomingMovies
	OptionViewWatchedMovies
	OptionSearchMovies
	OptionExit
)

// Label returns the menu text for the option.
func (o Option) Label() string {
	switch o {
	case OptionAddUser:
		return "Add a user"
	case OptionAddMovie:
		return "Add a movie"
	case OptionWatchMovie:
		return "Watch a movie"
	case OptionViewUsers:
		return "View all users"
	case OptionViewAllMovies:
		return "View all movies"
	case OptionViewUpcomingMovies:
		return "View upcoming movies"
	case OptionViewWatchedMovies:
		return "View a user's watched movies"
	case OptionSearchMovies:
		return "Search movies"
	case OptionExit:
		return "Exit"
	default:
		return "Unknown"
	}
}

// options lists all menu entries in display order.
var options = []Option{
	OptionAddUser,
	OptionAddMovie,
	OptionWatchMovie,
	OptionViewUsers,
	OptionViewAllMovies,
	OptionViewUpcomingMovies,
	OptionViewWatchedMovies,
	OptionSearchMovies,
	OptionExit,
}

const welcomeMessage = "Welcome to your movie watchlist!"

// Menu drives the interactive loop against a store. Input and output are
// injected so tests can script a session.
type Menu struct {
	store    *sqlite.Store
	scanner  *bufio.Scanner
	out      io.Writer
	location *time.Location
}

// New returns a Menu reading selections from in and writing to out. Dates
// are interpreted and rendered in loc.
func New(store *sqlite.Store, in io.Reader, out io.Writer, loc *time.Location) *Menu {
	return &Menu{
		store:    store,
		scanner:  bufio.NewScanner(in),
		out:      out,
		location: loc,
	}
}

// Run prints the welcome banner and loops until the exit option is chosen
// or input ends. Duplicate and not-found conditions are printed as notices;
// only storage failures end the loop with an error.
func (m *Menu) Run() error {
	fmt.Fprintf(m.out, "%s\n", welcomeMessage)

	for {
		m.printOptions()

		line, ok := m.readLine("Your selection: ")
		if !ok {
			return nil // EOF is treated as exit.
		}

		selection, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || !validSelection(selection) {
			fmt.Fprintf(m.out, "Invalid selection %q; enter a number between %d and %d.\n",
				strings.TrimSpace(line), int(OptionAddUser), int(OptionExit))
			continue
		}

		if Option(selection) == OptionExit {
			return nil
		}
		if err := m.dispatch(Option(selection)); err != nil {
			return err
		}
	}
}

// validSelection reports whether n names a menu option.
func validSelection(n int) bool {
	return n >= int(OptionAddUser) && n <= int(OptionExit)
}

func (m *Menu) printOptions() {
	fmt.Fprintf(m.out, "\nPlease select one of the following options:\n")
	for _, o := range options {
		fmt.Fprintf(m.out, "  %d) %s\n", int(o), o.Label())
	}
}

// dispatch runs one menu action. Errors returned here are storage failures;
// user-level conditions are reported inside the handler and return nil.
func (m *Menu) dispatch(o Option) error {
	switch o {
	case OptionAddUser:
		return m.addUser()
	case OptionAddMovie:
		return m.addMovie()
	case OptionWatchMovie:
		return m.watchMovie()
	case OptionViewUsers:
		return views.Users(m.store, m.out)
	case OptionViewAllMovies:
		return views.AllMovies(m.store, m.out, m.location)
	case OptionViewUpcomingMovies:
		return views.UpcomingMovies(m.store, m.out, m.location, clock.NowTimestamp())
	case OptionViewWatchedMovies:
		username, ok := m.readLine("Username: ")
		if !ok {
			return nil
		}
		return views.WatchedMoviesFor(m.store, m.out, m.location, username)
	case OptionSearchMovies:
		term, ok := m.readLine("Search term: ")
		if !ok {
			return nil
		}
		if term == "" {
			fmt.Fprintln(m.out, "Search term must not be empty.")
			return nil
		}
		return views.SearchResults(m.store, m.out, m.location, term)
	default:
		return nil
	}
}

func (m *Menu) addUser() error {
	username, ok := m.readLine("Username: ")
	if !ok {
		return nil
	}
	if username == "" {
		fmt.Fprintln(m.out, "Username must not be empty.")
		return nil
	}

	outcome, err := m.store.AddUser(username)
	if err != nil {
		return err
	}
	fmt.Fprintln(m.out, AddUserNotice(outcome, username))
	return nil
}

func (m *Menu) addMovie() error {
	title, ok := m.readLine("Title: ")
	if !ok {
		return nil
	}
	if title == "" {
		fmt.Fprintln(m.out, "Title must not be empty.")
		return nil
	}

	dateText, ok := m.readLine("Release date (dd-mm-yyyy): ")
	if !ok {
		return nil
	}
	releaseTS, err := clock.ParseReleaseDate(dateText, m.location)
	if err != nil {
		// Malformed dates abort this action, not the process.
		fmt.Fprintf(m.out, "Invalid release date %q; expected day-month-year.\n", dateText)
		return nil
	}

	outcome, err := m.store.AddMovie(title, releaseTS)
	if err != nil {
		return err
	}
	fmt.Fprintln(m.out, AddMovieNotice(outcome, title))
	return nil
}

func (m *Menu) watchMovie() error {
	username, ok := m.readLine("Username: ")
	if !ok {
		return nil
	}
	title, ok := m.readLine("Title: ")
	if !ok {
		return nil
	}

	outcome, err := m.store.RecordWatch(username, title)
	if err != nil {
		return err
	}
	fmt.Fprintln(m.out, WatchNotice(outcome, username, title))
	return nil
}

// readLine prints a prompt and reads one line. The second return is false
// when input has ended.
func (m *Menu) readLine(prompt string) (string, bool) {
	fmt.Fprint(m.out, prompt)
	if !m.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.scanner.Text()), true
}

// AddUserNotice renders the user-facing message for an add-user outcome.
func AddUserNotice(outcome types.AddOutcome, username string) string {
	if outcome == types.AddDuplicate {
		return fmt.Sprintf("User %q already exists; nothing added.", username)
	}
	return fmt.Sprintf("Added user %q.", username)
}

// AddMovieNotice renders the user-facing message for an add-movie outcome.
func AddMovieNotice(outcome types.AddOutcome, title string) string {
	if outcome == types.AddDuplicate {
		return fmt.Sprintf("Movie %q with that release date already exists; nothing added.", title)
	}
	return fmt.Sprintf("Added movie %q.", title)
}

// WatchNotice renders the user-facing message for a record-watch outcome.
func WatchNotice(outcome types.WatchOutcome, username, title string) string {
	switch outcome {
	case types.WatchDuplicate:
		return fmt.Sprintf("%s has already watched %q.", username, title)
	case types.WatchUnknownUser:
		return fmt.Sprintf("User %q not found; add the user first.", username)
	case types.WatchUnknownMovie:
		return fmt.Sprintf("Movie %q not found; add it first.", title)
	default:
		return fmt.Sprintf("Recorded that %s watched %q.", username, title)
	}
}
