package interp

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/lib/pq"

	"github.com/mindburn-labs/ledgercore/pkg/canonicalize"
)

// SQLStore backs a Resolvers.Contracts/Resolvers.Keys pair with Postgres,
// grounded in Mindburn-Labs-helm/core/pkg/store/ledger's SQLLedger/
// PostgresLedger shape. Resolvers' four functions carry no context or
// error return (spec §4.2), so SQLStore fixes a context at construction
// and logs-and-returns-nil on any query failure, which NeedContractOf/
// NeedKey already treat as "not found".
type SQLStore struct {
	db     *sql.DB
	ctx    context.Context
	logger *slog.Logger
}

// NewSQLStore wraps db. ctx bounds every query issued by the returned
// resolver functions; pass context.Background() for a store with no
// deadline.
func NewSQLStore(db *sql.DB, ctx context.Context, logger *slog.Logger) *SQLStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &SQLStore{db: db, ctx: ctx, logger: logger}
}

const sqlStoreSchema = `
CREATE TABLE IF NOT EXISTS contracts (
	contract_id TEXT PRIMARY KEY,
	template_id TEXT NOT NULL,
	payload JSONB,
	signatories TEXT[] NOT NULL DEFAULT '{}',
	observers TEXT[] NOT NULL DEFAULT '{}'
);

CREATE TABLE IF NOT EXISTS contract_keys (
	template_id TEXT NOT NULL,
	canonical_key TEXT NOT NULL,
	contract_id TEXT NOT NULL,
	PRIMARY KEY (template_id, canonical_key)
);
`

// Init creates the store's tables if they do not already exist.
func (s *SQLStore) Init() error {
	_, err := s.db.ExecContext(s.ctx, sqlStoreSchema)
	return err
}

// Contracts returns a Resolvers.Contracts function backed by this store.
func (s *SQLStore) Contracts() func(ContractID) *ContractInstance {
	return func(cid ContractID) *ContractInstance {
		query := `SELECT contract_id, template_id, payload, signatories, observers FROM contracts WHERE contract_id = $1`
		row := s.db.QueryRowContext(s.ctx, query, string(cid))

		var (
			id, templateID      string
			payloadJSON         []byte
			signatories, observers []string
		)
		err := row.Scan(&id, &templateID, &payloadJSON, pq.Array(&signatories), pq.Array(&observers))
		if err != nil {
			if !errors.Is(err, sql.ErrNoRows) {
				s.logger.Error("resolve contract failed", "contract_id", cid, "error", err)
			}
			return nil
		}

		var payload any
		if len(payloadJSON) > 0 {
			if err := json.Unmarshal(payloadJSON, &payload); err != nil {
				s.logger.Error("corrupt contract payload", "contract_id", cid, "error", err)
				return nil
			}
		}

		return &ContractInstance{
			ContractID:  ContractID(id),
			TemplateID:  templateID,
			Payload:     payload,
			Signatories: toPartySet(signatories),
			Observers:   toPartySet(observers),
		}
	}
}

// Keys returns a Resolvers.Keys function backed by this store. The key's
// JSON is canonicalized (RFC 8785) before lookup so that two structurally
// equal keys serialized in a different field order still collide on the
// same row.
func (s *SQLStore) Keys() func(GlobalKeyWithMaintainers) *ContractID {
	return func(key GlobalKeyWithMaintainers) *ContractID {
		canonicalKey, err := canonicalize.JCS(key.Key)
		if err != nil {
			s.logger.Error("canonicalize key failed", "template_id", key.TemplateID, "error", err)
			return nil
		}

		query := `SELECT contract_id FROM contract_keys WHERE template_id = $1 AND canonical_key = $2`
		row := s.db.QueryRowContext(s.ctx, query, key.TemplateID, string(canonicalKey))

		var contractID string
		if err := row.Scan(&contractID); err != nil {
			if !errors.Is(err, sql.ErrNoRows) {
				s.logger.Error("resolve key failed", "template_id", key.TemplateID, "error", err)
			}
			return nil
		}

		cid := ContractID(contractID)
		return &cid
	}
}

// PutContract inserts or replaces a contract row, used by tests and by the
// demo command to seed the store.
func (s *SQLStore) PutContract(inst ContractInstance) error {
	payloadJSON, err := json.Marshal(inst.Payload)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO contracts (contract_id, template_id, payload, signatories, observers)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (contract_id) DO UPDATE SET
			template_id = EXCLUDED.template_id,
			payload = EXCLUDED.payload,
			signatories = EXCLUDED.signatories,
			observers = EXCLUDED.observers
	`
	_, err = s.db.ExecContext(s.ctx, query,
		string(inst.ContractID), inst.TemplateID, payloadJSON,
		pq.Array(fromPartySet(inst.Signatories)), pq.Array(fromPartySet(inst.Observers)),
	)
	return err
}

func toPartySet(parties []string) map[Party]struct{} {
	set := make(map[Party]struct{}, len(parties))
	for _, p := range parties {
		set[Party(p)] = struct{}{}
	}
	return set
}

func fromPartySet(set map[Party]struct{}) []string {
	out := make([]string, 0, len(set))
	for p := range set {
		out = append(out, string(p))
	}
	return out
}
