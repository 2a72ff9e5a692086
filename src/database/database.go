package database

import (
	"database/sql"
	stdlog "log"

	"github.com/username/fopzvit/src/logger"
	_ "modernc.org/sqlite"
)

var DB *sql.DB

func InitDB(databasePath string) {
	db, err := sql.Open("sqlite", databasePath)
	if err != nil {
		stdlog.Fatalf("failed to open database at %s: %v", databasePath, err)
	}

	DB = db

	if logger.L != nil {
		logger.L.Info("Checking database migrations", "databasePath", databasePath)
	} else {
		stdlog.Println("Checking database migrations for:", databasePath)
	}
	migratePaymentsTable()

	createTableStatement := `
	CREATE TABLE IF NOT EXISTS payments (
		id TEXT PRIMARY KEY,
		date TEXT NOT NULL,
		currency_code TEXT NOT NULL,
		amount REAL NOT NULL,
		amount_uah REAL NOT NULL,
		counterparty TEXT NOT NULL,
		counterparty_account TEXT,
		description TEXT,
		exchange_rate REAL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS accumulated_data (
		year INTEGER PRIMARY KEY,
		data TEXT NOT NULL,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS fop_profile (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		data TEXT NOT NULL,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS esv_settings (
		year INTEGER PRIMARY KEY,
		data TEXT NOT NULL,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS import_configs (
		id TEXT PRIMARY KEY,
		data TEXT NOT NULL,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	`

	_, err = DB.Exec(createTableStatement)
	if err != nil {
		if logger.L != nil {
			logger.L.Error("failed to create tables", "error", err)
		}
		stdlog.Fatalf("failed to create tables: %v", err)
	}
	if logger.L != nil {
		logger.L.Info("Database tables ensured/created.")
	} else {
		stdlog.Println("Database tables ensured/created.")
	}
}

func migratePaymentsTable() {
	var tableName string
	err := DB.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='payments'").Scan(&tableName)
	if err != nil {
		if err == sql.ErrNoRows {
			if logger.L != nil {
				logger.L.Info("'payments' table does not exist, no migration needed as table will be created.")
			} else {
				stdlog.Println("'payments' table does not exist, no migration needed as table will be created.")
			}
			return
		}
		if logger.L != nil {
			logger.L.Error("Error checking for 'payments' table", "error", err)
		} else {
			stdlog.Printf("Error checking for 'payments' table: %v", err)
		}
		return
	}

	rows, err := DB.Query("PRAGMA table_info(payments)")
	if err != nil {
		if logger.L != nil {
			logger.L.Error("Error querying table schema for 'payments'", "error", err)
		} else {
			stdlog.Printf("Error querying table schema for 'payments': %v", err)
		}
		return
	}
	defer rows.Close()

	columnExists := make(map[string]bool)
	for rows.Next() {
		var cid, pk int
		var name, dataType string
		var notnullVal int
		var dfltValue interface{}

		if err := rows.Scan(&cid, &name, &dataType, &notnullVal, &dfltValue, &pk); err != nil {
			if logger.L != nil {
				logger.L.Error("Error scanning column info for 'payments'", "error", err)
			} else {
				stdlog.Printf("Error scanning column info for 'payments': %v", err)
			}
			return
		}
		columnExists[name] = true
	}
	if err = rows.Err(); err != nil {
		if logger.L != nil {
			logger.L.Error("Error iterating over column info for 'payments'", "error", err)
		} else {
			stdlog.Printf("Error iterating over column info for 'payments': %v", err)
		}
		return
	}

	if _, ok := columnExists["description"]; !ok {
		_, err := DB.Exec("ALTER TABLE payments ADD COLUMN description TEXT")
		if err != nil {
			logger.L.Error("Error adding 'description' column to 'payments' table", "error", err)
		} else {
			logger.L.Info("Added 'description' column to 'payments' table")
		}
	}
	if _, ok := columnExists["counterparty_account"]; !ok {
		_, err := DB.Exec("ALTER TABLE payments ADD COLUMN counterparty_account TEXT")
		if err != nil {
			logger.L.Error("Error adding 'counterparty_account' column to 'payments' table", "error", err)
		} else {
			logger.L.Info("Added 'counterparty_account' column to 'payments' table")
		}
	}
	if _, ok := columnExists["exchange_rate"]; !ok {
		_, err := DB.Exec("ALTER TABLE payments ADD COLUMN exchange_rate REAL")
		if err != nil {
			logger.L.Error("Error adding 'exchange_rate' column to 'payments' table", "error", err)
		} else {
			logger.L.Info("Added 'exchange_rate' column to 'payments' table")
		}
	}
}
