// Ludomood - Mood-Driven Board Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ludomood

package catalog

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite" // migrate driver
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "modernc.org/sqlite" // SQLite driver
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const gameColumns = `id, name, english_name, short_description, long_description,
	min_players, ideal_players, max_players,
	min_duration, average_duration, max_duration,
	minimum_age, complexity, average_price, primary_type, mechanics, themes,
	energy_required, social_level, luck_factor, tension_level,
	learning_curve, replayability, conflict_level,
	mood_tags, suited_contexts, strengths, weaknesses,
	hosting_tip, similar_to, if_you_like`

const gameColumnCount = 31

// SQLiteSource stores the catalog in a SQLite database.
type SQLiteSource struct {
	path string
	db   *sql.DB
}

// OpenSQLite opens (creating if needed) the database at path and applies
// pending migrations.
func OpenSQLite(path string) (*SQLiteSource, error) {
	if path == "" {
		return nil, errors.New("sqlite catalog: empty database path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}
	if err := migrateUp(path); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite catalog: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite catalog: %w", err)
	}
	return &SQLiteSource{path: path, db: db}, nil
}

func migrateUp(path string) (err error) {
	migrationsDir, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("access migrations: %w", err)
	}
	sourceDriver, err := iofs.New(migrationsDir, ".")
	if err != nil {
		return fmt.Errorf("create migration source: %w", err)
	}

	normalized := filepath.ToSlash(path)
	if filepath.IsAbs(path) && !strings.HasPrefix(normalized, "/") {
		normalized = "/" + normalized
	}
	m, err := migrate.NewWithSourceInstance("iofs", sourceDriver, "sqlite://"+normalized)
	if err != nil {
		return fmt.Errorf("create migration instance: %w", err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if err == nil {
			err = errors.Join(srcErr, dbErr)
		}
	}()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

// Name implements Source.
func (s *SQLiteSource) Name() string {
	return "sqlite"
}

// Close releases the database.
func (s *SQLiteSource) Close() error {
	return s.db.Close()
}

// Load implements Source.
func (s *SQLiteSource) Load(ctx context.Context) ([]Game, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+gameColumns+" FROM games ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("query games: %w", err)
	}
	defer rows.Close()

	games := []Game{}
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate games: %w", err)
	}

	if err := Validate(games); err != nil {
		return nil, err
	}
	return games, nil
}

// Import validates games and replaces the table contents in one transaction.
func (s *SQLiteSource) Import(ctx context.Context, games []Game) (err error) {
	for i := range games {
		games[i].fillDefaults()
	}
	if err := Validate(games); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin import: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.ExecContext(ctx, "DELETE FROM games"); err != nil {
		return fmt.Errorf("clear games: %w", err)
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", gameColumnCount), ", ")
	stmt, err := tx.PrepareContext(ctx, "INSERT INTO games ("+gameColumns+") VALUES ("+placeholders+")")
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i := range games {
		args, err := gameArgs(&games[i])
		if err != nil {
			return err
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("insert game %d: %w", games[i].ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit import: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGame(row rowScanner) (Game, error) {
	var (
		g     Game
		lists [8]string
	)
	err := row.Scan(
		&g.ID, &g.Name, &g.EnglishName, &g.ShortDescription, &g.LongDescription,
		&g.MinPlayers, &g.IdealPlayers, &g.MaxPlayers,
		&g.MinDuration, &g.AverageDuration, &g.MaxDuration,
		&g.MinimumAge, &g.Complexity, &g.AveragePrice, &g.PrimaryType, &lists[0], &lists[1],
		&g.EnergyRequired, &g.SocialLevel, &g.LuckFactor, &g.TensionLevel,
		&g.LearningCurve, &g.Replayability, &g.ConflictLevel,
		&lists[2], &lists[3], &lists[4], &lists[5],
		&g.HostingTip, &lists[6], &lists[7],
	)
	if err != nil {
		return Game{}, fmt.Errorf("scan game: %w", err)
	}

	targets := [8]*[]string{
		&g.Mechanics, &g.Themes,
		&g.MoodTags, &g.SuitedContexts, &g.Strengths, &g.Weaknesses,
		&g.SimilarTo, &g.IfYouLike,
	}
	for i, raw := range lists {
		if err := json.Unmarshal([]byte(raw), targets[i]); err != nil {
			return Game{}, fmt.Errorf("decode list column for game %d: %w", g.ID, err)
		}
	}
	g.fillDefaults()
	return g, nil
}

func gameArgs(g *Game) ([]any, error) {
	lists := [8][]string{
		g.Mechanics, g.Themes,
		g.MoodTags, g.SuitedContexts, g.Strengths, g.Weaknesses,
		g.SimilarTo, g.IfYouLike,
	}
	var encoded [8]string
	for i, l := range lists {
		if l == nil {
			l = []string{}
		}
		b, err := json.Marshal(l)
		if err != nil {
			return nil, fmt.Errorf("encode list column for game %d: %w", g.ID, err)
		}
		encoded[i] = string(b)
	}

	return []any{
		g.ID, g.Name, g.EnglishName, g.ShortDescription, g.LongDescription,
		g.MinPlayers, g.IdealPlayers, g.MaxPlayers,
		g.MinDuration, g.AverageDuration, g.MaxDuration,
		g.MinimumAge, g.Complexity, g.AveragePrice, g.PrimaryType, encoded[0], encoded[1],
		g.EnergyRequired, g.SocialLevel, g.LuckFactor, g.TensionLevel,
		g.LearningCurve, g.Replayability, g.ConflictLevel,
		encoded[2], encoded[3], encoded[4], encoded[5],
		g.HostingTip, encoded[6], encoded[7],
	}, nil
}
