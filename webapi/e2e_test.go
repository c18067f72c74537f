package webapi_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/amirasaad/fintrack/webapi/common"
	"github.com/amirasaad/fintrack/webapi/testutils"
	"github.com/stretchr/testify/suite"
)

type LedgerE2ETestSuite struct {
	testutils.E2ETestSuite
}

func TestLedgerE2E(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e tests in short mode")
	}
	suite.Run(t, new(LedgerE2ETestSuite))
}

func (s *LedgerE2ETestSuite) decodeData(resp *http.Response) map[string]any {
	var response common.Response
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&response))
	data, ok := response.Data.(map[string]any)
	s.Require().True(ok)
	return data
}

func (s *LedgerE2ETestSuite) createAccount(token, name string, balance float64) string {
	body := fmt.Sprintf(`{"account_name":"%s","account_type":"CHECKING","balance":%v,"currency":"USD"}`, name, balance)
	resp := s.MakeRequest("POST", "/account/create", body, token)
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	id, _ := s.decodeData(resp)["id"].(string)
	s.Require().NotEmpty(id)
	return id
}

func (s *LedgerE2ETestSuite) accountBalance(token, id string) float64 {
	resp := s.MakeRequest("GET", "/account/get/"+id, "", token)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	balance, ok := s.decodeData(resp)["balance"].(float64)
	s.Require().True(ok)
	return balance
}

func (s *LedgerE2ETestSuite) systemCategory(token string) string {
	body := fmt.Sprintf(`{"name":"e2e-%d","category_type":"EXPENSE"}`, time.Now().UnixNano())
	resp := s.MakeRequest("POST", "/categories/system", body, token)
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	id, _ := s.decodeData(resp)["id"].(string)
	s.Require().NotEmpty(id)
	return id
}

func (s *LedgerE2ETestSuite) TestLedgerFlow() {
	user := s.RegisterTestUser()
	s.PromoteToAdmin(user)
	token := s.LoginUser(user)

	checking := s.createAccount(token, "checking", 100)
	savings := s.createAccount(token, "savings", 0)
	category := s.systemCategory(token)

	// Income raises the account balance.
	body := fmt.Sprintf(`{"transaction_name":"salary","amount":50,"transaction_type":"INCOME","account_id":"%s","category_id":"%s","transaction_date":"%s"}`,
		checking, category, time.Now().UTC().Format(time.RFC3339))
	resp := s.MakeRequest("POST", "/transaction/create", body, token)
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	s.Equal(150.0, s.accountBalance(token, checking))

	// Transfer moves funds between the two accounts.
	body = fmt.Sprintf(`{"transaction_name":"stash","amount":30,"transaction_type":"TRANSFER","account_id":"%s","to_account_id":"%s","category_id":"%s","transaction_date":"%s"}`,
		checking, savings, category, time.Now().UTC().Format(time.RFC3339))
	resp = s.MakeRequest("POST", "/transaction/create", body, token)
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	transferID, _ := s.decodeData(resp)["id"].(string)
	s.Require().NotEmpty(transferID)
	s.Equal(120.0, s.accountBalance(token, checking))
	s.Equal(30.0, s.accountBalance(token, savings))

	// Overdrawing an asset account is rejected and leaves balances alone.
	body = fmt.Sprintf(`{"transaction_name":"too big","amount":1000,"transaction_type":"EXPENSE","account_id":"%s","category_id":"%s","transaction_date":"%s"}`,
		checking, category, time.Now().UTC().Format(time.RFC3339))
	resp = s.MakeRequest("POST", "/transaction/create", body, token)
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Equal(120.0, s.accountBalance(token, checking))

	// Deleting the transfer reverses its effect on both accounts.
	resp = s.MakeRequest("DELETE", "/transaction/"+transferID, "", token)
	s.Require().Equal(http.StatusNoContent, resp.StatusCode)
	s.Equal(150.0, s.accountBalance(token, checking))
	s.Equal(0.0, s.accountBalance(token, savings))
}

func (s *LedgerE2ETestSuite) TestAccountIsolation() {
	alice := s.RegisterTestUser()
	bob := s.RegisterTestUser()
	aliceToken := s.LoginUser(alice)
	bobToken := s.LoginUser(bob)

	account := s.createAccount(aliceToken, "private", 10)

	resp := s.MakeRequest("GET", "/account/get/"+account, "", bobToken)
	s.Equal(http.StatusNotFound, resp.StatusCode)
}
