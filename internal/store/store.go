package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// SnapshotRecord represents a stored report row.
type SnapshotRecord struct {
	ID              int64
	SnapshotID      string
	StoredAt        time.Time
	CPUModel        string
	CPUCores        string
	CPUVendor       string
	BIOSVendor      string
	BIOSVersion     string
	BIOSDate        string
	BIOSRelease     string
	BoardName       string
	BoardVendor     string
	SystemVendor    string
	ProductName     string
	Kernel          string
	Shell           string
	BuildInfo       string
	BootMode        string
	PackageManagers string
	Distro          string
	SecureBoot      string
	TotalRAMGB      float64
	FreeRAMGB       float64
	ReportJSON      string
}

// Store keeps report snapshots in a local SQLite file.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// New opens the SQLite database at path and runs migrations.
func New(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(1)

	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db, now: time.Now}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

const columns = `id, snapshot_id, stored_at, cpu_model, cpu_cores, cpu_vendor,
	bios_vendor, bios_version, bios_date, bios_release,
	board_name, board_vendor, system_vendor, product_name,
	kernel, shell, build_info, boot_mode, package_managers, distro, secure_boot,
	total_ram_gb, free_ram_gb, report_json`

// Insert stores a snapshot and fills in its ID, SnapshotID and StoredAt.
func (s *Store) Insert(ctx context.Context, rec *SnapshotRecord) error {
	rec.SnapshotID = uuid.NewString()
	rec.StoredAt = s.now().UTC().Truncate(time.Second)

	result, err := s.db.ExecContext(ctx,
		`INSERT INTO snapshots (snapshot_id, stored_at, cpu_model, cpu_cores, cpu_vendor,
			bios_vendor, bios_version, bios_date, bios_release,
			board_name, board_vendor, system_vendor, product_name,
			kernel, shell, build_info, boot_mode, package_managers, distro, secure_boot,
			total_ram_gb, free_ram_gb, report_json)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.SnapshotID,
		rec.StoredAt.Format(time.RFC3339),
		rec.CPUModel, rec.CPUCores, rec.CPUVendor,
		rec.BIOSVendor, rec.BIOSVersion, rec.BIOSDate, rec.BIOSRelease,
		rec.BoardName, rec.BoardVendor, rec.SystemVendor, rec.ProductName,
		rec.Kernel, rec.Shell, rec.BuildInfo, rec.BootMode, rec.PackageManagers, rec.Distro, rec.SecureBoot,
		rec.TotalRAMGB, rec.FreeRAMGB,
		rec.ReportJSON,
	)
	if err != nil {
		return fmt.Errorf("insert snapshot: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}
	rec.ID = id

	return nil
}

// Get retrieves a snapshot by row ID.
func (s *Store) Get(ctx context.Context, id int64) (*SnapshotRecord, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+columns+` FROM snapshots WHERE id = ?`, id)
	return scanRecord(row)
}

// Latest retrieves the most recently stored snapshot.
func (s *Store) Latest(ctx context.Context) (*SnapshotRecord, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+columns+` FROM snapshots ORDER BY id DESC LIMIT 1`)
	return scanRecord(row)
}

// List returns up to limit snapshots, newest first. A non-positive limit
// defaults to 50.
func (s *Store) List(ctx context.Context, limit int) ([]SnapshotRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx, `SELECT `+columns+` FROM snapshots ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	defer rows.Close()

	var records []SnapshotRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}

	return records, rows.Err()
}

// Purge deletes snapshots stored longer ago than olderThan.
func (s *Store) Purge(ctx context.Context, olderThan time.Duration) (int64, error) {
	cutoff := s.now().UTC().Add(-olderThan).Format(time.RFC3339)
	result, err := s.db.ExecContext(ctx, `DELETE FROM snapshots WHERE stored_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge snapshots: %w", err)
	}
	return result.RowsAffected()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*SnapshotRecord, error) {
	var rec SnapshotRecord
	var storedAt string
	err := row.Scan(&rec.ID, &rec.SnapshotID, &storedAt,
		&rec.CPUModel, &rec.CPUCores, &rec.CPUVendor,
		&rec.BIOSVendor, &rec.BIOSVersion, &rec.BIOSDate, &rec.BIOSRelease,
		&rec.BoardName, &rec.BoardVendor, &rec.SystemVendor, &rec.ProductName,
		&rec.Kernel, &rec.Shell, &rec.BuildInfo, &rec.BootMode, &rec.PackageManagers, &rec.Distro, &rec.SecureBoot,
		&rec.TotalRAMGB, &rec.FreeRAMGB, &rec.ReportJSON)
	if err != nil {
		return nil, err
	}

	rec.StoredAt, _ = time.Parse(time.RFC3339, storedAt)

	return &rec, nil
}
