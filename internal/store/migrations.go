package store

const createTableSQL = `
CREATE TABLE IF NOT EXISTS snapshots (
    id                INTEGER PRIMARY KEY AUTOINCREMENT,
    snapshot_id       TEXT NOT NULL UNIQUE,
    stored_at         TEXT NOT NULL,
    cpu_model         TEXT NOT NULL,
    cpu_cores         TEXT NOT NULL,
    cpu_vendor        TEXT NOT NULL,
    bios_vendor       TEXT NOT NULL,
    bios_version      TEXT NOT NULL,
    bios_date         TEXT NOT NULL,
    bios_release      TEXT NOT NULL,
    board_name        TEXT NOT NULL,
    board_vendor      TEXT NOT NULL,
    system_vendor     TEXT NOT NULL,
    product_name      TEXT NOT NULL,
    kernel            TEXT NOT NULL,
    shell             TEXT NOT NULL,
    build_info        TEXT NOT NULL,
    boot_mode         TEXT NOT NULL,
    package_managers  TEXT NOT NULL,
    distro            TEXT NOT NULL,
    secure_boot       TEXT NOT NULL,
    total_ram_gb      REAL NOT NULL,
    free_ram_gb       REAL NOT NULL,
    report_json       TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_snapshots_stored_at ON snapshots(stored_at);
CREATE INDEX IF NOT EXISTS idx_snapshots_kernel ON snapshots(kernel);
`
