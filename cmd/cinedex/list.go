package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/mmcdole/cinedex/internal/adapter"
	"github.com/mmcdole/cinedex/internal/catalog"
	"github.com/mmcdole/cinedex/internal/domain"
	"github.com/mmcdole/cinedex/internal/view"
)

func buildQuery(opts options) (view.Query, error) {
	key, ok := view.ParseSortKey(opts.sort)
	if !ok {
		return view.Query{}, fmt.Errorf("unknown sort key %q", opts.sort)
	}

	genres, err := parseGenres(opts.genres)
	if err != nil {
		return view.Query{}, err
	}

	return view.Query{
		SearchText:     opts.search,
		RequiredGenres: genres,
		SortKey:        key,
	}, nil
}

// parseGenres accepts "Action,Crime" or "28,80"
func parseGenres(s string) ([]int, error) {
	var ids []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if id, err := strconv.Atoi(part); err == nil {
			ids = append(ids, id)
			continue
		}
		id, ok := genreByName(part)
		if !ok {
			return nil, fmt.Errorf("unknown genre %q", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func genreByName(name string) (int, bool) {
	for _, g := range domain.KnownGenres {
		if strings.EqualFold(g.Name, name) {
			return g.ID, true
		}
	}
	return 0, false
}

func printList(w io.Writer, records []domain.MediaRecord) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tYEAR\tRATING\tRUNTIME\tGENRES")
	for _, r := range records {
		year := "-"
		if y := r.Year(); y > 0 {
			year = strconv.Itoa(y)
		}
		runtime := r.FormattedRuntime()
		if runtime == "" {
			runtime = "-"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			r.ID, r.Title, year, r.FormattedRating(), runtime, strings.Join(r.GenreNames(), ", "))
	}
	return tw.Flush()
}

// showMovie prints one movie. The saved catalog is tried first so a known
// id resolves offline; load is only called when the id is not saved.
func showMovie(w io.Writer, q *catalog.Queries, load func() []domain.MediaRecord, id int, playerTemplate string) error {
	r, err := q.Lookup(id)
	if errors.Is(err, domain.ErrRecordNotFound) {
		r, err = catalog.FindByID(load(), id)
	}
	if errors.Is(err, domain.ErrRecordNotFound) {
		fmt.Fprintln(w, "Movie not found")
		fmt.Fprintf(w, "No movie with id %d in the catalog.\n", id)
		return fmt.Errorf("movie %d: %w", id, err)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(w, r.Title)
	var meta []string
	if y := r.Year(); y > 0 {
		meta = append(meta, strconv.Itoa(y))
	}
	if rt := r.FormattedRuntime(); rt != "" {
		meta = append(meta, rt)
	}
	meta = append(meta, "rating "+r.FormattedRating())
	if len(r.Genres) > 0 {
		meta = append(meta, strings.Join(r.GenreNames(), ", "))
	}
	fmt.Fprintln(w, strings.Join(meta, " · "))
	if r.Overview != "" {
		fmt.Fprintf(w, "\n%s\n", r.Overview)
	}
	fmt.Fprintf(w, "\n%s\n", adapter.PlayerURL(playerTemplate, r.ID))
	return nil
}

// printStorage lists the keys still held in the store
func printStorage(w io.Writer, kv domain.KeyValueStore) {
	keys := kv.Keys()
	if len(keys) == 0 {
		fmt.Fprintln(w, "Saved data: none")
		return
	}
	fmt.Fprintf(w, "Saved data: %s\n", strings.Join(keys, ", "))
}
