package koha

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"strings"

	"sharedprint/core/database"
	"sharedprint/core/utils"
	"sharedprint/feature/circulation"
	"sharedprint/feature/holdings"

	"gorm.io/gorm"
)

// Source yields Bibs from the Koha biblio and items tables, one Bib per
// biblionumber with its items attached. Bibs carry no container bytes and
// so cannot be exported.
type Source struct {
	rows     *sql.Rows
	profile  Profile
	pending  *row
	position int
}

type row struct {
	id    string
	title string
	item  circulation.Item
}

// Open checks the schema and starts the query.
func Open(ctx context.Context, db *gorm.DB, profile Profile) (*Source, error) {
	if err := Verify(db, profile); err != nil {
		return nil, err
	}

	query := buildQuery(profile)
	rows, err := db.WithContext(ctx).Raw(query).Rows()
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", profile.BiblioTable, err)
	}
	return &Source{rows: rows, profile: profile}, nil
}

// Verify returns an error naming every mapped column the database lacks.
func Verify(db *gorm.DB, profile Profile) error {
	var problems []string
	check := func(table string, cols []string) error {
		missing, err := database.MissingColumns(db, table, cols)
		if err != nil {
			return err
		}
		for _, col := range missing {
			problems = append(problems, table+"."+col)
		}
		return nil
	}

	if err := check(profile.BiblioTable, profile.biblioColumns()); err != nil {
		return err
	}
	if err := check(profile.ItemsTable, profile.itemColumns()); err != nil {
		return err
	}
	if len(problems) > 0 {
		return fmt.Errorf("koha schema is missing columns: %s", strings.Join(problems, ", "))
	}
	return nil
}

func buildQuery(p Profile) string {
	cols := []string{
		"b." + p.BiblioIDColumn,
		"b." + p.TitleColumn,
		"i." + p.ItemIDColumn,
	}
	for _, sc := range p.Subfields {
		cols = append(cols, "i."+sc.Column)
	}
	return fmt.Sprintf("SELECT %s FROM %s b LEFT JOIN %s i ON i.%s = b.%s ORDER BY b.%s, i.%s",
		strings.Join(cols, ", "),
		p.BiblioTable, p.ItemsTable,
		p.ItemBiblioColumn, p.BiblioIDColumn,
		p.BiblioIDColumn, p.ItemIDColumn,
	)
}

// Next returns the next bib record with all its items.
func (s *Source) Next() (*holdings.Bib, error) {
	first := s.pending
	s.pending = nil
	if first == nil {
		r, err := s.scan()
		if err != nil {
			return nil, err
		}
		if r == nil {
			return nil, io.EOF
		}
		first = r
	}

	s.position++
	bib := &holdings.Bib{Position: s.position, Identifier: first.id, Title: first.title}
	if first.item != nil {
		bib.Items = append(bib.Items, first.item)
	}

	for {
		r, err := s.scan()
		if err != nil {
			return nil, err
		}
		if r == nil {
			break
		}
		if r.id != bib.Identifier {
			s.pending = r
			break
		}
		if r.item != nil {
			bib.Items = append(bib.Items, r.item)
		}
	}
	return bib, nil
}

// scan returns nil, nil once the rows are exhausted.
func (s *Source) scan() (*row, error) {
	if !s.rows.Next() {
		if err := s.rows.Err(); err != nil {
			return nil, fmt.Errorf("failed to read koha rows: %w", err)
		}
		return nil, nil
	}

	values := make([]any, 3+len(s.profile.Subfields))
	ptrs := make([]any, len(values))
	for i := range values {
		ptrs[i] = &values[i]
	}
	if err := s.rows.Scan(ptrs...); err != nil {
		return nil, fmt.Errorf("failed to scan row: %w", err)
	}

	r := &row{id: utils.ToString(values[0]), title: utils.ToString(values[1])}
	// LEFT JOIN yields a NULL itemnumber for bibs without items
	if values[2] != nil {
		r.item = make(circulation.Item, len(s.profile.Subfields))
		for i, sc := range s.profile.Subfields {
			r.item[sc.Code] = utils.ToString(values[3+i])
		}
	}
	return r, nil
}

// Close releases the result set.
func (s *Source) Close() error {
	return s.rows.Close()
}
