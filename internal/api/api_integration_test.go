// internal/api/api_integration_test.go
package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	app "walletledger/internal"
)

// testApp is the global application instance for testing.
var testApp *app.Application

// testServer is the httptest server.
var testServer *httptest.Server

// TestMain is the special entry point for Go tests, executed once before all tests.
func TestMain(m *testing.M) {
	os.Setenv("LOG_LEVEL", "error")
	os.Setenv("SNAPSHOT_PATH", "")

	testApp = app.NewApplication()
	if err := testApp.Initialize(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize test application: %v\n", err)
		os.Exit(1)
	}

	testServer = httptest.NewServer(testApp.HTTPHandler)
	defer testServer.Close()

	code := m.Run()

	if err := testApp.Shutdown(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to shutdown test application: %v\n", err)
		os.Exit(1)
	}

	os.Exit(code)
}

// postJSON helper: posts a JSON body and decodes the JSON response into out.
func postJSON(t *testing.T, path string, body string, out interface{}) *http.Response {
	t.Helper()
	resp, err := http.Post(testServer.URL+path, "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func TestCreateWalletAndAddTransaction(t *testing.T) {
	var wallet struct {
		ID      int    `json:"id"`
		Name    string `json:"name"`
		Balance string `json:"balance"`
	}
	resp := postJSON(t, "/wallets", `{"name":"Savings","currency_id":"USD","starting_balance":100}`, &wallet)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Savings", wallet.Name)
	assert.Equal(t, "100", wallet.Balance)

	var tx struct {
		ID   int    `json:"id"`
		Date string `json:"date"`
	}
	resp = postJSON(t, fmt.Sprintf("/wallets/%d/transactions", wallet.ID),
		`{"date":"2025-10-15","sum_update":-40,"description":"groceries"}`, &tx)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "2025-10-15", tx.Date)

	var fetched struct {
		Wallet struct {
			Balance string `json:"balance"`
		} `json:"wallet"`
	}
	resp2, err := http.Get(fmt.Sprintf("%s/wallets/%d", testServer.URL, wallet.ID))
	require.NoError(t, err)
	defer resp2.Body.Close()
	require.Equal(t, http.StatusOK, resp2.StatusCode)
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&fetched))
	assert.Equal(t, "60", fetched.Wallet.Balance)
}

func TestCreateWallet_InvalidInput(t *testing.T) {
	resp := postJSON(t, "/wallets", `{"name":"","currency_id":"USD","starting_balance":100}`, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = postJSON(t, "/wallets", `{"name":"Bad","currency_id":"USD","starting_balance":-1}`, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAddTransaction_Rejections(t *testing.T) {
	var wallet struct {
		ID int `json:"id"`
	}
	resp := postJSON(t, "/wallets", `{"name":"Tight","currency_id":"EUR","starting_balance":10}`, &wallet)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	path := fmt.Sprintf("/wallets/%d/transactions", wallet.ID)

	resp = postJSON(t, path, `{"date":"2025-10-15","sum_update":0}`, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = postJSON(t, path, `{"date":"2025-10-15","sum_update":-20}`, nil)
	assert.Equal(t, http.StatusPaymentRequired, resp.StatusCode)

	resp = postJSON(t, "/wallets/99999/transactions", `{"date":"2025-10-15","sum_update":-1}`, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// A back-dated debit that breaks a later day, while a later credit keeps
	// the final balance positive.
	resp = postJSON(t, path, `{"date":"2025-11-05","sum_update":-9}`, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp = postJSON(t, path, `{"date":"2025-11-07","sum_update":50}`, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp = postJSON(t, path, `{"date":"2025-11-01","sum_update":-5}`, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestImport(t *testing.T) {
	resp := postJSON(t, "/import",
		`{"Wallets":[{"Id":1,"Name":"Bad","CurrencyId":"USD","StartingBalance":-5}],"Transactions":[]}`, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var result struct {
		Wallets int `json:"wallets"`
	}
	resp = postJSON(t, "/import",
		`{"Wallets":[{"Id":1,"Name":"Imported","CurrencyId":"USD","StartingBalance":100}],
		  "Transactions":[{"Id":5,"WalletId":1,"Date":"2025-09-01","SumUpdate":-20,"Description":"rent"}]}`, &result)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, result.Wallets)
}

func TestMonthlyReport(t *testing.T) {
	var wallet struct {
		ID int `json:"id"`
	}
	resp := postJSON(t, "/wallets", `{"name":"Report","currency_id":"GBP","starting_balance":1000}`, &wallet)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	path := fmt.Sprintf("/wallets/%d/transactions", wallet.ID)
	for _, body := range []string{
		`{"date":"2031-02-10","sum_update":-30}`,
		`{"date":"2031-02-05","sum_update":200}`,
	} {
		resp = postJSON(t, path, body, nil)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	var report struct {
		IncomesSum  string `json:"incomes_sum"`
		ExpensesSum string `json:"expenses_sum"`
	}
	resp2, err := http.Get(testServer.URL + "/reports/monthly?year=2031&month=2")
	require.NoError(t, err)
	defer resp2.Body.Close()
	require.Equal(t, http.StatusOK, resp2.StatusCode)
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&report))
	assert.Equal(t, "200", report.IncomesSum)
	assert.Equal(t, "30", report.ExpensesSum)

	resp3, err := http.Get(testServer.URL + "/reports/top-expenses?year=2031&month=2")
	require.NoError(t, err)
	defer resp3.Body.Close()
	assert.Equal(t, http.StatusOK, resp3.StatusCode)

	resp4, err := http.Get(testServer.URL + "/reports/monthly?year=2031")
	require.NoError(t, err)
	defer resp4.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp4.StatusCode)
}
