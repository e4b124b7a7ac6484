package main

import (
	"database/sql"
	"flag"
	"log"
	"time"

	_ "github.com/lib/pq"
	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/pkg/utils"
)

type migration struct {
	name       string
	statements []string
}

// activityTable monta o DDL comum de dials, appointments e discoveries
func activityTable(table string, withSalesRep bool) string {
	salesRep := ""
	if withSalesRep {
		salesRep = `
			sales_rep             TEXT,
			sales_rep_crm_user_id TEXT,
			sales_rep_user_id     TEXT REFERENCES users (id),`
	}

	return `CREATE TABLE IF NOT EXISTS ` + table + ` (
			id                 BIGSERIAL PRIMARY KEY,
			account_id         TEXT NOT NULL REFERENCES accounts (id),
			contact_id         BIGINT REFERENCES contacts (id),
			setter             TEXT,
			setter_crm_user_id TEXT,
			setter_user_id     TEXT REFERENCES users (id),` + salesRep + `
			occurred_at        TIMESTAMPTZ NOT NULL,
			outcome            TEXT,
			cash_collected     NUMERIC(14, 2) NOT NULL DEFAULT 0,
			local_date         DATE,
			local_week         DATE,
			local_month        DATE
		)`
}

var migrations = []migration{
	{
		name: "contas, usuários e acessos",
		statements: []string{
			`CREATE TABLE IF NOT EXISTS accounts (
				id                TEXT PRIMARY KEY,
				name              TEXT NOT NULL,
				business_timezone TEXT NOT NULL DEFAULT 'UTC',
				status            TEXT NOT NULL DEFAULT 'ACTIVE'
			)`,
			`CREATE TABLE IF NOT EXISTS users (
				id              TEXT PRIMARY KEY,
				display_name    TEXT NOT NULL,
				email           TEXT NOT NULL UNIQUE,
				is_global_admin BOOLEAN NOT NULL DEFAULT FALSE
			)`,
			`CREATE TABLE IF NOT EXISTS account_access (
				user_id    TEXT NOT NULL REFERENCES users (id),
				account_id TEXT NOT NULL REFERENCES accounts (id),
				role       TEXT NOT NULL CHECK (role IN ('admin', 'moderator', 'setter', 'sales_rep')),
				is_active  BOOLEAN NOT NULL DEFAULT TRUE,
				PRIMARY KEY (user_id, account_id)
			)`,
		},
	},
	{
		name: "usuários do CRM",
		statements: []string{
			`CREATE TABLE IF NOT EXISTS crm_users (
				account_id       TEXT NOT NULL REFERENCES accounts (id),
				crm_user_id      TEXT NOT NULL,
				name             TEXT NOT NULL,
				role             TEXT NOT NULL,
				user_id          TEXT REFERENCES users (id),
				activity_count   BIGINT NOT NULL DEFAULT 0,
				invitation_count INT NOT NULL DEFAULT 0,
				last_invited_at  TIMESTAMPTZ,
				last_activity_at TIMESTAMPTZ,
				PRIMARY KEY (account_id, crm_user_id)
			)`,
		},
	},
	{
		name: "contatos e atividades",
		statements: []string{
			`CREATE TABLE IF NOT EXISTS contacts (
				id                      BIGSERIAL PRIMARY KEY,
				account_id              TEXT NOT NULL REFERENCES accounts (id),
				external_id             TEXT,
				name                    TEXT,
				email                   TEXT,
				phone                   TEXT,
				attribution_source      JSONB,
				last_attribution_source JSONB,
				crm_created_at          TIMESTAMPTZ NOT NULL,
				local_date              DATE,
				local_week              DATE,
				local_month             DATE
			)`,
			activityTable("dials", false),
			activityTable("appointments", true),
			activityTable("discoveries", true),
			`CREATE INDEX IF NOT EXISTS contacts_account_local_date_idx ON contacts (account_id, local_date)`,
			`CREATE INDEX IF NOT EXISTS dials_account_local_date_idx ON dials (account_id, local_date)`,
			`CREATE INDEX IF NOT EXISTS appointments_account_local_date_idx ON appointments (account_id, local_date)`,
			`CREATE INDEX IF NOT EXISTS discoveries_account_local_date_idx ON discoveries (account_id, local_date)`,
		},
	},
	{
		name: "sessões de atribuição",
		statements: []string{
			`CREATE TABLE IF NOT EXISTS attribution_sessions (
				session_id       TEXT PRIMARY KEY,
				account_id       TEXT NOT NULL REFERENCES accounts (id),
				fbclid           TEXT,
				gclid            TEXT,
				fbc              TEXT,
				fbp              TEXT,
				utm_source       TEXT,
				utm_medium       TEXT,
				utm_campaign     TEXT,
				utm_term         TEXT,
				utm_content      TEXT,
				landing_url      TEXT,
				referrer         TEXT,
				quality          TEXT NOT NULL DEFAULT 'none',
				method           TEXT,
				contact_id       BIGINT REFERENCES contacts (id),
				first_visit_at   TIMESTAMPTZ NOT NULL,
				last_activity_at TIMESTAMPTZ NOT NULL,
				expires_at       TIMESTAMPTZ NOT NULL
			)`,
			`CREATE INDEX IF NOT EXISTS attribution_sessions_expires_at_idx ON attribution_sessions (expires_at)`,
			`CREATE INDEX IF NOT EXISTS attribution_sessions_account_idx ON attribution_sessions (account_id)`,
		},
	},
}

func setupLogger() {
	// Configura o logger para incluir data, hora e arquivo
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("Iniciando script de migração...")
}

func generateID() string {
	id, err := utils.GenerateID()
	if err != nil {
		log.Fatalf("ERRO ao gerar identificador: %v", err)
	}
	return id
}

func applyMigrations(db *sql.DB) {
	for _, m := range migrations {
		startTime := time.Now()
		log.Printf("Aplicando migração: %s", m.name)

		tx, err := db.Begin()
		if err != nil {
			log.Fatalf("ERRO ao iniciar transação: %v", err)
		}

		for _, statement := range m.statements {
			if _, err := tx.Exec(statement); err != nil {
				_ = tx.Rollback()
				log.Fatalf("ERRO na migração %q: %v", m.name, err)
			}
		}

		if err := tx.Commit(); err != nil {
			log.Fatalf("ERRO ao confirmar migração %q: %v", m.name, err)
		}

		log.Printf("Migração %q aplicada em %v", m.name, time.Since(startTime))
	}
}

// seedDemo cria uma conta de demonstração com um administrador global
func seedDemo(db *sql.DB, adminEmail string) {
	tx, err := db.Begin()
	if err != nil {
		log.Fatalf("ERRO ao iniciar transação: %v", err)
	}

	accountID := generateID()
	userID := generateID()

	steps := []struct {
		query string
		args  []any
	}{
		{`INSERT INTO accounts (id, name, business_timezone) VALUES ($1, $2, $3)`, []any{accountID, "Conta Demo", "America/Sao_Paulo"}},
		{`INSERT INTO users (id, display_name, email, is_global_admin) VALUES ($1, $2, $3, TRUE)
			ON CONFLICT (email) DO NOTHING`, []any{userID, "Administrador", adminEmail}},
		{`INSERT INTO account_access (user_id, account_id, role)
			SELECT id, $1, 'admin' FROM users WHERE email = $2`, []any{accountID, adminEmail}},
	}

	for _, step := range steps {
		if _, err := tx.Exec(step.query, step.args...); err != nil {
			_ = tx.Rollback()
			log.Fatalf("ERRO ao inserir dados de demonstração: %v", err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Fatalf("ERRO ao confirmar dados de demonstração: %v", err)
	}

	log.Printf("Conta de demonstração %s criada para %s", accountID, adminEmail)
}

func main() {
	seed := flag.Bool("seed", false, "cria uma conta de demonstração após as migrações")
	adminEmail := flag.String("admin-email", "admin@example.com", "e-mail do administrador da conta de demonstração")
	flag.Parse()

	setupLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("ERRO ao carregar configuração: %v", err)
	}

	log.Println("Conectando ao banco de dados...")
	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		log.Fatalf("ERRO ao conectar ao banco de dados: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("ERRO ao verificar conexão com o banco: %v", err)
	}
	log.Println("Conexão com o banco de dados estabelecida com sucesso")

	applyMigrations(db)

	if *seed {
		seedDemo(db, *adminEmail)
	}

	log.Println("Script de migração concluído")
}
