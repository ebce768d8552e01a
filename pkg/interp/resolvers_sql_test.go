package interp

import (
	"context"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestSQLStoreContractsFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	store := NewSQLStore(db, context.Background(), nil)

	rows := sqlmock.NewRows([]string{"contract_id", "template_id", "payload", "signatories", "observers"}).
		AddRow("C1", "Iou", []byte(`{"amount":5}`), "{alice}", "{bob}")
	mock.ExpectQuery("SELECT contract_id, template_id, payload, signatories, observers FROM contracts").
		WithArgs("C1").
		WillReturnRows(rows)

	resolve := store.Contracts()
	inst := resolve("C1")
	require.NotNil(t, inst)
	require.Equal(t, ContractID("C1"), inst.ContractID)
	require.Equal(t, "Iou", inst.TemplateID)
	_, ok := inst.Signatories["alice"]
	require.True(t, ok)
}

func TestSQLStoreContractsNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	store := NewSQLStore(db, context.Background(), nil)

	mock.ExpectQuery("SELECT contract_id, template_id, payload, signatories, observers FROM contracts").
		WithArgs("missing").
		WillReturnError(sqlmock.ErrCancelled)

	resolve := store.Contracts()
	require.Nil(t, resolve("missing"))
}

func TestSQLStoreKeysFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	store := NewSQLStore(db, context.Background(), nil)

	rows := sqlmock.NewRows([]string{"contract_id"}).AddRow("C7")
	mock.ExpectQuery("SELECT contract_id FROM contract_keys").
		WithArgs("Iou", `"k"`).
		WillReturnRows(rows)

	resolve := store.Keys()
	cid := resolve(GlobalKeyWithMaintainers{TemplateID: "Iou", Key: "k"})
	require.NotNil(t, cid)
	require.Equal(t, ContractID("C7"), *cid)
}

func TestSQLStorePutContractUsesUpsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	store := NewSQLStore(db, context.Background(), nil)

	mock.ExpectExec("INSERT INTO contracts .* ON CONFLICT").WillReturnResult(sqlmock.NewResult(0, 1))

	err = store.PutContract(ContractInstance{
		ContractID:  "C1",
		TemplateID:  "Iou",
		Payload:     map[string]any{"amount": 5},
		Signatories: map[Party]struct{}{"alice": {}},
	})
	require.NoError(t, err)
}
