package db

import (
	"errors"
	"fmt"
	"io/fs"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	embeddedmigrations "github.com/terraincognita07/taskflow/migrations"
	"gorm.io/gorm"
)

var (
	migrationFileName  = regexp.MustCompile(`^(\d+)_[\w.-]+\.sql$`)
	addColumnStatement = regexp.MustCompile(`(?i)^ALTER\s+TABLE\s+(\S+)\s+ADD\s+COLUMN\s+(\S+)`)
)

// schemaMigration is one row of the applied-version ledger.
type schemaMigration struct {
	Version   string    `gorm:"primaryKey"`
	Name      string    `gorm:"not null"`
	AppliedAt time.Time `gorm:"not null"`
}

func (schemaMigration) TableName() string {
	return "schema_migrations"
}

type migrationFile struct {
	Version string
	Order   int
	Name    string
	SQL     string
}

func applyEmbeddedMigrations(database *gorm.DB) error {
	return applyMigrations(database, embeddedmigrations.Files)
}

// applyMigrations runs every file in source whose version is not yet in the
// ledger, each inside its own transaction.
func applyMigrations(database *gorm.DB, source fs.FS) error {
	const ledgerDDL = `CREATE TABLE IF NOT EXISTS schema_migrations (
  version TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
)`
	if err := database.Exec(ledgerDDL).Error; err != nil {
		return fmt.Errorf("create schema_migrations table: %w", err)
	}

	files, err := readMigrationFiles(source)
	if err != nil {
		return err
	}

	applied := make([]schemaMigration, 0)
	if err := database.Select("version").Find(&applied).Error; err != nil {
		return fmt.Errorf("load applied migration versions: %w", err)
	}
	done := make(map[string]bool, len(applied))
	for _, row := range applied {
		done[row.Version] = true
	}

	for _, file := range files {
		if done[file.Version] {
			continue
		}
		if err := database.Transaction(func(tx *gorm.DB) error {
			return runMigration(tx, file)
		}); err != nil {
			return err
		}
	}
	return nil
}

func readMigrationFiles(source fs.FS) ([]migrationFile, error) {
	entries, err := fs.ReadDir(source, ".")
	if err != nil {
		return nil, fmt.Errorf("read migrations: %w", err)
	}

	files := make([]migrationFile, 0, len(entries))
	owners := make(map[string]string, len(entries))
	for _, entry := range entries {
		matches := migrationFileName.FindStringSubmatch(entry.Name())
		if entry.IsDir() || matches == nil {
			continue
		}

		version := matches[1]
		if owner, taken := owners[version]; taken {
			return nil, fmt.Errorf("duplicate migration version %s in %s and %s", version, owner, entry.Name())
		}
		owners[version] = entry.Name()

		order, err := strconv.Atoi(version)
		if err != nil {
			return nil, fmt.Errorf("parse migration version from %s: %w", entry.Name(), err)
		}
		content, err := fs.ReadFile(source, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", entry.Name(), err)
		}

		files = append(files, migrationFile{
			Version: version,
			Order:   order,
			Name:    entry.Name(),
			SQL:     string(content),
		})
	}

	sort.Slice(files, func(i, j int) bool {
		if files[i].Order != files[j].Order {
			return files[i].Order < files[j].Order
		}
		return files[i].Name < files[j].Name
	})
	return files, nil
}

func runMigration(tx *gorm.DB, file migrationFile) error {
	statements := splitSQLStatements(file.SQL)
	if len(statements) == 0 {
		return fmt.Errorf("migration %s: %w", file.Name, errors.New("no SQL statements"))
	}

	for _, statement := range statements {
		if columnAlreadyAdded(tx, statement) {
			continue
		}
		if err := tx.Exec(statement).Error; err != nil {
			return fmt.Errorf("execute migration %s statement %q: %w", file.Name, statement, err)
		}
	}

	record := schemaMigration{Version: file.Version, Name: file.Name, AppliedAt: time.Now().UTC()}
	if err := tx.Create(&record).Error; err != nil {
		return fmt.Errorf("record migration %s: %w", file.Name, err)
	}
	return nil
}

// columnAlreadyAdded lets ADD COLUMN statements run against databases that
// gained the column before the ledger existed.
func columnAlreadyAdded(tx *gorm.DB, statement string) bool {
	matches := addColumnStatement.FindStringSubmatch(statement)
	if matches == nil {
		return false
	}
	return tx.Migrator().HasColumn(unquoteIdentifier(matches[1]), unquoteIdentifier(matches[2]))
}

// splitSQLStatements drops "--" comment lines and blank statements.
func splitSQLStatements(sqlText string) []string {
	lines := strings.Split(sqlText, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		kept = append(kept, line)
	}

	statements := make([]string, 0)
	for _, part := range strings.Split(strings.Join(kept, "\n"), ";") {
		if statement := strings.TrimSpace(part); statement != "" {
			statements = append(statements, statement)
		}
	}
	return statements
}

func unquoteIdentifier(identifier string) string {
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(identifier), "\"`[]"))
}
