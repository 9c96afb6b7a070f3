// Package main provides a CLI tool for creating the schema and seeding the
// database with demo data for local development.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"procompare/internal/core/id"
	"procompare/internal/core/types"
	"procompare/internal/domain/auth"
	"procompare/internal/infrastructure/storage/postgres"
	"procompare/pkg/config"
	"procompare/pkg/logger"
)

func main() {
	log, err := logger.New(logger.Config{
		Level:       "info",
		Development: true,
	})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalw("failed to load configuration", "error", err)
	}

	ctx := context.Background()

	pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(cfg.DB.ConnectionString()))
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	log.Info("connected to database")

	if err := ensureSchema(ctx, pool); err != nil {
		log.Fatalw("failed to create schema", "error", err)
	}
	log.Info("schema is up to date")

	if os.Getenv("SEED_DEMO_DATA") == "true" {
		if err := seedDemoData(ctx, pool, log); err != nil {
			log.Fatalw("failed to seed demo data", "error", err)
		}
	}

	if os.Getenv("PRINT_DEV_TOKEN") == "true" {
		printDevToken(cfg, log)
	}

	log.Info("seeding completed successfully")
}

// ensureSchema creates all tables the service uses. Statements are idempotent
// so the tool can run repeatedly against the same database.
func ensureSchema(ctx context.Context, pool *postgres.Pool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS sys_sequences (
			key         TEXT PRIMARY KEY,
			current_val BIGINT NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS sys_audit (
			id                 UUID PRIMARY KEY,
			entity_type        TEXT NOT NULL,
			entity_id          UUID NOT NULL,
			action             TEXT NOT NULL,
			user_id            TEXT,
			user_email         TEXT,
			changes            JSONB,
			changes_compressed BYTEA,
			compression_algo   TEXT,
			created_at         TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_sys_audit_entity ON sys_audit (entity_type, entity_id, created_at DESC)`,

		`CREATE TABLE IF NOT EXISTS cat_departments (
			id            UUID PRIMARY KEY,
			code          TEXT NOT NULL UNIQUE,
			name          TEXT NOT NULL,
			name_en       TEXT,
			description   TEXT,
			deletion_mark BOOLEAN NOT NULL DEFAULT FALSE,
			version       INT NOT NULL DEFAULT 1,
			created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,

		`CREATE TABLE IF NOT EXISTS cat_product_types (
			id            UUID PRIMARY KEY,
			code          TEXT NOT NULL UNIQUE,
			name          TEXT NOT NULL,
			level         INT NOT NULL,
			parent_id     UUID REFERENCES cat_product_types (id),
			deletion_mark BOOLEAN NOT NULL DEFAULT FALSE,
			version       INT NOT NULL DEFAULT 1,
			created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,

		`CREATE TABLE IF NOT EXISTS cat_suppliers (
			id             UUID PRIMARY KEY,
			code           TEXT NOT NULL UNIQUE,
			name           TEXT NOT NULL,
			tax_code       TEXT,
			contact_email  TEXT,
			contact_phone  TEXT,
			payment_terms  TEXT,
			delivery_terms TEXT,
			deletion_mark  BOOLEAN NOT NULL DEFAULT FALSE,
			version        INT NOT NULL DEFAULT 1,
			created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,

		`CREATE TABLE IF NOT EXISTS cat_requisition_groups (
			id            UUID PRIMARY KEY,
			code          TEXT NOT NULL UNIQUE,
			name          TEXT NOT NULL,
			currency      TEXT,
			description   TEXT,
			deletion_mark BOOLEAN NOT NULL DEFAULT FALSE,
			version       INT NOT NULL DEFAULT 1,
			created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,

		`CREATE TABLE IF NOT EXISTS supplier_offers (
			id          UUID PRIMARY KEY,
			supplier_id UUID NOT NULL REFERENCES cat_suppliers (id),
			item_code   TEXT NOT NULL,
			currency    TEXT NOT NULL,
			unit        TEXT,
			price       NUMERIC,
			valid_from  TIMESTAMPTZ,
			valid_to    TIMESTAMPTZ,
			created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at  TIMESTAMPTZ
		)`,
		`CREATE INDEX IF NOT EXISTS idx_supplier_offers_item ON supplier_offers (item_code, currency)`,

		`CREATE TABLE IF NOT EXISTS req_monthly_lines (
			id             UUID PRIMARY KEY,
			group_id       UUID NOT NULL REFERENCES cat_requisition_groups (id),
			type_level1_id UUID REFERENCES cat_product_types (id),
			type_level2_id UUID REFERENCES cat_product_types (id),
			old_code       TEXT NOT NULL DEFAULT '',
			new_code       TEXT NOT NULL DEFAULT '',
			name_vn        TEXT NOT NULL DEFAULT '',
			name_en        TEXT NOT NULL DEFAULT '',
			unit           TEXT NOT NULL DEFAULT '',
			request_qty    NUMERIC,
			buy_qty        NUMERIC,
			safe_stock     NUMERIC,
			inventory      NUMERIC,
			order_qty      NUMERIC,
			supplier_id    UUID REFERENCES cat_suppliers (id),
			remark         TEXT,
			note           TEXT,
			created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at     TIMESTAMPTZ
		)`,
		`CREATE INDEX IF NOT EXISTS idx_req_monthly_group ON req_monthly_lines (group_id, created_at DESC)`,

		`CREATE TABLE IF NOT EXISTS req_monthly_departments (
			line_id         UUID NOT NULL REFERENCES req_monthly_lines (id) ON DELETE CASCADE,
			department_id   UUID NOT NULL REFERENCES cat_departments (id),
			department_name TEXT NOT NULL DEFAULT '',
			request_qty     NUMERIC,
			buy_qty         NUMERIC,
			position        INT NOT NULL DEFAULT 0,
			PRIMARY KEY (line_id, department_id)
		)`,

		`CREATE TABLE IF NOT EXISTS req_summary_lines (
			id             UUID PRIMARY KEY,
			group_id       UUID NOT NULL REFERENCES cat_requisition_groups (id),
			type_level1_id UUID REFERENCES cat_product_types (id),
			type_level2_id UUID REFERENCES cat_product_types (id),
			old_code       TEXT NOT NULL DEFAULT '',
			new_code       TEXT NOT NULL DEFAULT '',
			name_vn        TEXT NOT NULL DEFAULT '',
			name_en        TEXT NOT NULL DEFAULT '',
			unit           TEXT NOT NULL DEFAULT '',
			order_qty      NUMERIC,
			supplier_id    UUID REFERENCES cat_suppliers (id),
			price          NUMERIC,
			remark         TEXT,
			created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at     TIMESTAMPTZ
		)`,
		`CREATE INDEX IF NOT EXISTS idx_req_summary_group ON req_summary_lines (group_id, created_at DESC)`,

		`CREATE TABLE IF NOT EXISTS req_summary_departments (
			line_id       UUID NOT NULL REFERENCES req_summary_lines (id) ON DELETE CASCADE,
			department_id UUID NOT NULL REFERENCES cat_departments (id),
			qty           NUMERIC,
			buy           NUMERIC,
			PRIMARY KEY (line_id, department_id)
		)`,
	}

	for _, stmt := range statements {
		if _, err := pool.Pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("execute schema statement: %w", err)
		}
	}
	return nil
}

func seedDemoData(ctx context.Context, pool *postgres.Pool, log *logger.Logger) error {
	log.Info("seeding demo data...")

	// 1. Departments
	departments := []struct {
		code, name, nameEN string
	}{
		{"DEP-001", "Sản xuất", "Production"},
		{"DEP-002", "Bảo trì", "Maintenance"},
		{"DEP-003", "Kiểm tra chất lượng", "Quality Assurance"},
	}

	deptIDs := make(map[string]id.ID)
	for _, d := range departments {
		did, err := upsertCatalog(ctx, pool, `
			INSERT INTO cat_departments (id, code, name, name_en)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (code) DO NOTHING
		`, `SELECT id FROM cat_departments WHERE code = $1`, d.code, d.name, d.nameEN)
		if err != nil {
			return fmt.Errorf("seed department %s: %w", d.code, err)
		}
		deptIDs[d.code] = did
	}

	// 2. Product classifications (two levels)
	type typeSeed struct {
		code, name string
		level      int
		parentCode string
	}
	prodTypes := []typeSeed{
		{"PT-001", "Consumables", 1, ""},
		{"PT-002", "Spare Parts", 1, ""},
		{"PT-101", "Safety Gloves", 2, "PT-001"},
		{"PT-102", "Lubricants", 2, "PT-001"},
		{"PT-201", "Bearings", 2, "PT-002"},
	}

	typeIDs := make(map[string]id.ID)
	for _, t := range prodTypes {
		var parent any
		if t.parentCode != "" {
			parent = typeIDs[t.parentCode]
		}
		tid, err := upsertCatalog(ctx, pool, `
			INSERT INTO cat_product_types (id, code, name, level, parent_id)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (code) DO NOTHING
		`, `SELECT id FROM cat_product_types WHERE code = $1`, t.code, t.name, t.level, parent)
		if err != nil {
			return fmt.Errorf("seed product type %s: %w", t.code, err)
		}
		typeIDs[t.code] = tid
	}

	// 3. Suppliers
	suppliers := []struct {
		code, name, taxCode string
	}{
		{"SUP-001", "Vina Industrial Supply", "0312345678"},
		{"SUP-002", "Mekong Trading Co.", "0387654321"},
		{"SUP-003", "Saigon Safety Equipment", "0301122334"},
	}

	supplierIDs := make(map[string]id.ID)
	for _, s := range suppliers {
		sid, err := upsertCatalog(ctx, pool, `
			INSERT INTO cat_suppliers (id, code, name, tax_code)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (code) DO NOTHING
		`, `SELECT id FROM cat_suppliers WHERE code = $1`, s.code, s.name, s.taxCode)
		if err != nil {
			return fmt.Errorf("seed supplier %s: %w", s.code, err)
		}
		supplierIDs[s.code] = sid
	}

	// 4. Requisition groups (one default-currency, one USD)
	groups := []struct {
		code, name string
		currency   any
	}{
		{"RG-001", "Factory A", nil},
		{"RG-002", "Factory B", "USD"},
	}

	groupIDs := make(map[string]id.ID)
	for _, g := range groups {
		gid, err := upsertCatalog(ctx, pool, `
			INSERT INTO cat_requisition_groups (id, code, name, currency)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (code) DO NOTHING
		`, `SELECT id FROM cat_requisition_groups WHERE code = $1`, g.code, g.name, g.currency)
		if err != nil {
			return fmt.Errorf("seed group %s: %w", g.code, err)
		}
		groupIDs[g.code] = gid
	}

	// 5. Supplier offers for the demo item codes
	offers := []struct {
		supplierCode, itemCode, currency, unit string
		price                                  string
	}{
		{"SUP-001", "GLV-100", types.DefaultCurrency, "pair", "12500"},
		{"SUP-002", "GLV-100", types.DefaultCurrency, "pair", "11800"},
		{"SUP-003", "GLV-100", types.DefaultCurrency, "pair", "13900"},
		{"SUP-001", "BRG-6204", "USD", "pc", "3.45"},
		{"SUP-002", "BRG-6204", "USD", "pc", "3.10"},
	}

	for _, o := range offers {
		price, err := types.NewMoneyFromString(o.price)
		if err != nil {
			return fmt.Errorf("parse offer price %q: %w", o.price, err)
		}
		_, err = pool.Pool.Exec(ctx, `
			INSERT INTO supplier_offers (id, supplier_id, item_code, currency, unit, price)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, id.New(), supplierIDs[o.supplierCode], o.itemCode, o.currency, o.unit, price)
		if err != nil {
			log.Warnw("failed to seed offer", "item_code", o.itemCode, "error", err)
		}
	}

	// 6. Monthly lines with department breakdown
	glovesID := id.New()
	supplierOne := supplierIDs["SUP-001"]
	_, err := pool.Pool.Exec(ctx, `
		INSERT INTO req_monthly_lines (
			id, group_id, type_level1_id, type_level2_id,
			old_code, new_code, name_vn, name_en, unit,
			request_qty, order_qty, supplier_id
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`, glovesID, groupIDs["RG-001"], typeIDs["PT-001"], typeIDs["PT-101"],
		"GLV-100", "NEW", "Găng tay bảo hộ", "Safety gloves", "pair",
		types.MustMoney("120"), types.MustMoney("100"), supplierOne)
	if err != nil {
		log.Warnw("failed to seed monthly line", "error", err)
	} else {
		breakdown := []struct {
			deptCode string
			request  string
			buy      string
		}{
			{"DEP-001", "80", "70"},
			{"DEP-002", "40", "30"},
		}
		for pos, b := range breakdown {
			_, err := pool.Pool.Exec(ctx, `
				INSERT INTO req_monthly_departments (line_id, department_id, department_name, request_qty, buy_qty, position)
				SELECT $1, $2, name, $3, $4, $5 FROM cat_departments WHERE id = $2
			`, glovesID, deptIDs[b.deptCode], types.MustMoney(b.request), types.MustMoney(b.buy), pos)
			if err != nil {
				log.Warnw("failed to seed monthly breakdown", "error", err)
			}
		}
	}

	// 7. Summary line with a settled supplier and price
	summaryID := id.New()
	_, err = pool.Pool.Exec(ctx, `
		INSERT INTO req_summary_lines (
			id, group_id, type_level1_id, type_level2_id,
			old_code, new_code, name_vn, name_en, unit,
			order_qty, supplier_id, price
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`, summaryID, groupIDs["RG-002"], typeIDs["PT-002"], typeIDs["PT-201"],
		"BRG-6204", "NEW", "Vòng bi 6204", "Ball bearing 6204", "pc",
		types.MustMoney("50"), supplierIDs["SUP-002"], types.MustMoney("3.10"))
	if err != nil {
		log.Warnw("failed to seed summary line", "error", err)
	} else {
		_, err := pool.Pool.Exec(ctx, `
			INSERT INTO req_summary_departments (line_id, department_id, qty, buy)
			VALUES ($1, $2, $3, $4)
		`, summaryID, deptIDs["DEP-002"], types.MustMoney("50"), types.MustMoney("50"))
		if err != nil {
			log.Warnw("failed to seed summary breakdown", "error", err)
		}
	}

	log.Info("demo data seeded successfully")
	return nil
}

// upsertCatalog inserts a catalog row and returns its ID, fetching the
// existing row's ID when the code is already taken.
func upsertCatalog(ctx context.Context, pool *postgres.Pool, insertSQL, selectSQL string, code string, args ...any) (id.ID, error) {
	newID := id.New()
	insertArgs := append([]any{newID, code}, args...)

	tag, err := pool.Pool.Exec(ctx, insertSQL, insertArgs...)
	if err != nil {
		return id.Nil(), err
	}
	if tag.RowsAffected() > 0 {
		return newID, nil
	}

	var existingID id.ID
	if err := pool.Pool.QueryRow(ctx, selectSQL, code).Scan(&existingID); err != nil {
		return id.Nil(), err
	}
	return existingID, nil
}

// printDevToken emits a short-lived bearer token for exercising the API
// locally. Production tokens come from the identity provider.
func printDevToken(cfg *config.Config, log *logger.Logger) {
	secret := cfg.JWT.Secret
	if secret == "" {
		secret = "dev-secret-change-me"
	}

	jwtService := auth.NewJWTService(auth.DefaultJWTConfig(secret))
	token, expiresAt, err := jwtService.GenerateAccessToken(
		id.New().String(), "dev@procompare.local", []string{"admin"}, true,
	)
	if err != nil {
		log.Warnw("failed to generate dev token", "error", err)
		return
	}

	log.Infow("dev token generated", "expires_at", expiresAt.Format(time.RFC3339))
	fmt.Println(token)
}
