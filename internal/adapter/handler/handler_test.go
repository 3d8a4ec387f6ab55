package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcjojos/money-transfers/internal/adapter/storage"
	"github.com/mcjojos/money-transfers/internal/core/domain"
	"github.com/mcjojos/money-transfers/internal/core/ledger"
)

func newTestApp() *fiber.App {
	engine := ledger.NewEngine(storage.NewAccountStore(), nil)
	accountHandler := &AccountHandler{Engine: engine}
	transferHandler := &TransferHandler{Engine: engine}

	app := fiber.New()
	app.Post("/api/accounts", accountHandler.CreateAccount)
	app.Get("/api/accounts/seed", accountHandler.SeedAccounts)
	app.Get("/api/accounts/:id", accountHandler.GetAccount)
	app.Post("/api/transfers", transferHandler.Transfer)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func getJSON(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func createAccount(t *testing.T, app *fiber.App, balance string) int64 {
	t.Helper()
	resp := postJSON(t, app, "/api/accounts", CreateAccountRequest{Balance: balance, Currency: "EUR"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body struct {
		ID int64 `json:"id"`
	}
	decodeBody(t, resp, &body)
	return body.ID
}

func TestCreateAndGetAccount(t *testing.T) {
	app := newTestApp()

	id := createAccount(t, app, "1500.509")

	resp := getJSON(t, app, fmt.Sprintf("/api/accounts/%d", id))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var account domain.Account
	decodeBody(t, resp, &account)
	assert.Equal(t, domain.EUR, account.Currency)
	assert.True(t, account.Balance.Equal(decimal.RequireFromString("1500.51")))
}

func TestCreateAccountRejectsBadInput(t *testing.T) {
	app := newTestApp()

	resp := postJSON(t, app, "/api/accounts", CreateAccountRequest{Balance: "100", Currency: "XYZ"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = postJSON(t, app, "/api/accounts", CreateAccountRequest{Balance: "junk", Currency: "EUR"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetUnknownAccountReturns404(t *testing.T) {
	app := newTestApp()

	resp := getJSON(t, app, "/api/accounts/42")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestTransferEndToEnd(t *testing.T) {
	app := newTestApp()
	fromID := createAccount(t, app, "15099.01")
	toID := createAccount(t, app, "30001.99")

	resp := postJSON(t, app, "/api/transfers", domain.Transfer{
		FromAccountID: fromID, ToAccountID: toID, Amount: "99.01",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Status  string         `json:"status"`
		Receipt domain.Receipt `json:"receipt"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "success", body.Status)
	assert.NotZero(t, body.Receipt.TransferID)

	var from, to domain.Account
	decodeBody(t, getJSON(t, app, fmt.Sprintf("/api/accounts/%d", fromID)), &from)
	decodeBody(t, getJSON(t, app, fmt.Sprintf("/api/accounts/%d", toID)), &to)
	assert.True(t, from.Balance.Equal(decimal.RequireFromString("15000.00")))
	assert.True(t, to.Balance.Equal(decimal.RequireFromString("30101.00")))
}

func TestTransferErrorMapping(t *testing.T) {
	app := newTestApp()
	id := createAccount(t, app, "1000")

	// missing destination
	resp := postJSON(t, app, "/api/transfers", domain.Transfer{FromAccountID: id, ToAccountID: 99, Amount: "10"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// non-positive amount
	otherID := createAccount(t, app, "500")
	resp = postJSON(t, app, "/api/transfers", domain.Transfer{FromAccountID: id, ToAccountID: otherID, Amount: "-1"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSeedAccounts(t *testing.T) {
	app := newTestApp()

	resp := getJSON(t, app, "/api/accounts/seed?count=3")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		IDs []int64 `json:"ids"`
	}
	decodeBody(t, resp, &body)
	assert.Len(t, body.IDs, 3)

	resp = getJSON(t, app, "/api/accounts/seed?count=0")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
