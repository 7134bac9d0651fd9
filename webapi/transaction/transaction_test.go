package transaction_test

import (
	"encoding/json"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/emreokt/bankoffice/internal/fixtures/mocks"
	"github.com/emreokt/bankoffice/pkg/domain"
	"github.com/emreokt/bankoffice/pkg/domain/money"
	"github.com/emreokt/bankoffice/pkg/dto"
	"github.com/emreokt/bankoffice/webapi/testutils"
	webapitransaction "github.com/emreokt/bankoffice/webapi/transaction"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TransactionTestSuite struct {
	suite.Suite
	app *fiber.App
	uow *mocks.UnitOfWork
}

func (s *TransactionTestSuite) SetupTest() {
	s.app, s.uow = testutils.SetupTestApp()
}

func TestTransactionTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionTestSuite))
}

func (s *TransactionTestSuite) accountWithBalance(id uuid.UUID, balance float64) *dto.AccountRead {
	return &dto.AccountRead{
		ID:          id,
		IdentityNo:  12345678901,
		FirstName:   "Enes",
		LastName:    "Kumas",
		AccountType: domain.AccountTypeTL,
		Balance:     money.New(balance),
	}
}

func (s *TransactionTestSuite) TestDeposit() {
	s.Run("Deposit successfully", func() {
		id := uuid.New()
		s.uow.AccountRepo.On("GetForUpdate", mock.Anything, id).
			Return(s.accountWithBalance(id, 500), nil).Once()
		s.uow.AccountRepo.On("Update", mock.Anything, id, mock.MatchedBy(func(u dto.AccountUpdate) bool {
			return u.Balance != nil && u.Balance.Equal(money.New(1000))
		})).Return(nil).Once()
		s.uow.TransactionRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

		resp, err := testutils.MakeRequest(s.app, "POST", fmt.Sprintf("/api/v1/transactions/%s/deposit", id), `{"amount":500}`)
		s.Require().NoError(err)
		defer resp.Body.Close() //nolint: errcheck
		s.Assert().Equal(fiber.StatusCreated, resp.StatusCode)

		raw, err := io.ReadAll(resp.Body)
		s.Require().NoError(err)
		s.Assert().Contains(string(raw), `"amount":500.00`)

		var tx webapitransaction.TransactionResponse
		s.Require().NoError(json.Unmarshal(raw, &tx))
		s.Assert().Equal(id.String(), tx.AccountID)
		s.Assert().Equal("DEPOSIT", tx.TransactionType)
		s.uow.AccountRepo.AssertExpectations(s.T())
	})

	s.Run("Deposit to unknown account", func() {
		id := uuid.New()
		s.uow.AccountRepo.On("GetForUpdate", mock.Anything, id).
			Return(nil, domain.ErrAccountNotFound).Once()

		resp, err := testutils.MakeRequest(s.app, "POST", fmt.Sprintf("/api/v1/transactions/%s/deposit", id), `{"amount":500}`)
		s.Require().NoError(err)
		defer resp.Body.Close() //nolint: errcheck
		s.Assert().Equal(fiber.StatusNotFound, resp.StatusCode)
	})

	s.Run("Deposit beyond the balance ceiling", func() {
		s.app, s.uow = testutils.SetupTestApp()
		id := uuid.New()
		s.uow.AccountRepo.On("GetForUpdate", mock.Anything, id).
			Return(s.accountWithBalance(id, 9_999_000), nil).Once()

		resp, err := testutils.MakeRequest(s.app, "POST", fmt.Sprintf("/api/v1/transactions/%s/deposit", id), `{"amount":1500}`)
		s.Require().NoError(err)
		defer resp.Body.Close() //nolint: errcheck
		s.Assert().Equal(fiber.StatusBadRequest, resp.StatusCode)
		s.uow.AccountRepo.AssertNotCalled(s.T(), "Update", mock.Anything, id, mock.Anything)
		s.uow.TransactionRepo.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
	})

	s.Run("Deposit with non-positive amount", func() {
		id := uuid.New()
		resp, err := testutils.MakeRequest(s.app, "POST", fmt.Sprintf("/api/v1/transactions/%s/deposit", id), `{"amount":0}`)
		s.Require().NoError(err)
		defer resp.Body.Close() //nolint: errcheck
		s.Assert().Equal(fiber.StatusBadRequest, resp.StatusCode)
	})

	s.Run("Deposit with malformed account id", func() {
		resp, err := testutils.MakeRequest(s.app, "POST", "/api/v1/transactions/not-a-uuid/deposit", `{"amount":500}`)
		s.Require().NoError(err)
		defer resp.Body.Close() //nolint: errcheck
		s.Assert().Equal(fiber.StatusBadRequest, resp.StatusCode)
	})
}

func (s *TransactionTestSuite) TestWithdraw() {
	s.Run("Withdraw successfully", func() {
		id := uuid.New()
		s.uow.AccountRepo.On("GetForUpdate", mock.Anything, id).
			Return(s.accountWithBalance(id, 500), nil).Once()
		s.uow.AccountRepo.On("Update", mock.Anything, id, mock.MatchedBy(func(u dto.AccountUpdate) bool {
			return u.Balance != nil && u.Balance.Equal(money.New(300))
		})).Return(nil).Once()
		s.uow.TransactionRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

		resp, err := testutils.MakeRequest(s.app, "POST", fmt.Sprintf("/api/v1/transactions/%s/withdraw", id), `{"amount":200}`)
		s.Require().NoError(err)
		defer resp.Body.Close() //nolint: errcheck
		s.Assert().Equal(fiber.StatusCreated, resp.StatusCode)

		var tx webapitransaction.TransactionResponse
		s.Require().NoError(json.NewDecoder(resp.Body).Decode(&tx))
		s.Assert().Equal("WITHDRAW", tx.TransactionType)
		s.Assert().Equal("200.00", tx.Amount.String())
		s.uow.AccountRepo.AssertExpectations(s.T())
	})

	s.Run("Withdraw more than the balance", func() {
		s.app, s.uow = testutils.SetupTestApp()
		id := uuid.New()
		s.uow.AccountRepo.On("GetForUpdate", mock.Anything, id).
			Return(s.accountWithBalance(id, 100), nil).Once()

		resp, err := testutils.MakeRequest(s.app, "POST", fmt.Sprintf("/api/v1/transactions/%s/withdraw", id), `{"amount":200}`)
		s.Require().NoError(err)
		defer resp.Body.Close() //nolint: errcheck
		s.Assert().Equal(fiber.StatusBadRequest, resp.StatusCode)
		s.uow.TransactionRepo.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
	})
}

func (s *TransactionTestSuite) TestListTransactions() {
	s.Run("List account transactions", func() {
		id := uuid.New()
		txs := []*dto.TransactionRead{
			{
				ID:              uuid.New(),
				AccountID:       id,
				TransactionDate: time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC),
				TransactionType: domain.TransactionTypeDeposit,
				Amount:          money.New(100),
			},
		}
		s.uow.TransactionRepo.On("ListByAccount", mock.Anything, id).Return(txs, nil).Once()

		resp, err := testutils.MakeRequest(s.app, "GET", fmt.Sprintf("/api/v1/transactions/%s", id), "")
		s.Require().NoError(err)
		defer resp.Body.Close() //nolint: errcheck
		s.Assert().Equal(fiber.StatusOK, resp.StatusCode)

		raw, err := io.ReadAll(resp.Body)
		s.Require().NoError(err)
		s.Assert().Contains(string(raw), `"transactionDate":"2024-06-01 12:30:00"`)

		var list []webapitransaction.TransactionResponse
		s.Require().NoError(json.Unmarshal(raw, &list))
		s.Require().Len(list, 1)
		s.Assert().Equal("DEPOSIT", list[0].TransactionType)
	})

	s.Run("List unknown account yields empty array", func() {
		id := uuid.New()
		s.uow.TransactionRepo.On("ListByAccount", mock.Anything, id).
			Return([]*dto.TransactionRead{}, nil).Once()

		resp, err := testutils.MakeRequest(s.app, "GET", fmt.Sprintf("/api/v1/transactions/%s", id), "")
		s.Require().NoError(err)
		defer resp.Body.Close() //nolint: errcheck
		s.Assert().Equal(fiber.StatusOK, resp.StatusCode)

		raw, err := io.ReadAll(resp.Body)
		s.Require().NoError(err)
		s.Assert().JSONEq(`[]`, string(raw))
	})
}

func (s *TransactionTestSuite) TestSearch() {
	s.Run("Search with filters", func() {
		accountID := uuid.New()
		content := []*dto.TransactionRead{
			{
				ID:              uuid.New(),
				AccountID:       accountID,
				TransactionDate: time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC),
				TransactionType: domain.TransactionTypeDeposit,
				Amount:          money.New(100),
			},
		}
		s.uow.TransactionRepo.On("Search", mock.Anything, mock.MatchedBy(func(f dto.TransactionFilter) bool {
			return f.AccountID != nil && *f.AccountID == accountID && f.Size == 10
		})).Return(dto.NewPage(content, 25, 0, 10), nil).Once()

		body := fmt.Sprintf(`{"accountId":"%s","transactionType":"DEPOSIT"}`, accountID)
		resp, err := testutils.MakeRequest(s.app, "POST", "/api/v1/transactions/search", body)
		s.Require().NoError(err)
		defer resp.Body.Close() //nolint: errcheck
		s.Assert().Equal(fiber.StatusOK, resp.StatusCode)

		var page struct {
			Content       []webapitransaction.TransactionResponse `json:"content"`
			TotalElements int64                                   `json:"totalElements"`
			TotalPages    int                                     `json:"totalPages"`
			Page          int                                     `json:"page"`
			Size          int                                     `json:"size"`
		}
		s.Require().NoError(json.NewDecoder(resp.Body).Decode(&page))
		s.Assert().Equal(int64(25), page.TotalElements)
		s.Assert().Equal(3, page.TotalPages)
		s.Assert().Equal(0, page.Page)
		s.Assert().Equal(10, page.Size)
		s.Require().Len(page.Content, 1)
		s.Assert().Equal(accountID.String(), page.Content[0].AccountID)
	})

	s.Run("Search with inverted date range", func() {
		s.app, s.uow = testutils.SetupTestApp()
		body := `{"fromDate":"2024-12-31 00:00:00","toDate":"2024-01-01 00:00:00"}`
		resp, err := testutils.MakeRequest(s.app, "POST", "/api/v1/transactions/search", body)
		s.Require().NoError(err)
		defer resp.Body.Close() //nolint: errcheck
		s.Assert().Equal(fiber.StatusBadRequest, resp.StatusCode)
		s.uow.TransactionRepo.AssertNotCalled(s.T(), "Search", mock.Anything, mock.Anything)
	})

	s.Run("Search with inverted amount range", func() {
		body := `{"minAmount":1000,"maxAmount":10}`
		resp, err := testutils.MakeRequest(s.app, "POST", "/api/v1/transactions/search", body)
		s.Require().NoError(err)
		defer resp.Body.Close() //nolint: errcheck
		s.Assert().Equal(fiber.StatusBadRequest, resp.StatusCode)
	})

	s.Run("Search with unknown transaction type", func() {
		body := `{"transactionType":"TRANSFER"}`
		resp, err := testutils.MakeRequest(s.app, "POST", "/api/v1/transactions/search", body)
		s.Require().NoError(err)
		defer resp.Body.Close() //nolint: errcheck
		s.Assert().Equal(fiber.StatusBadRequest, resp.StatusCode)
	})

	s.Run("Search with empty body defaults", func() {
		s.uow.TransactionRepo.On("Search", mock.Anything, mock.MatchedBy(func(f dto.TransactionFilter) bool {
			return f.AccountID == nil && f.Page == 0 && f.Size == dto.DefaultPageSize
		})).Return(dto.NewPage([]*dto.TransactionRead{}, 0, 0, dto.DefaultPageSize), nil).Once()

		resp, err := testutils.MakeRequest(s.app, "POST", "/api/v1/transactions/search", `{}`)
		s.Require().NoError(err)
		defer resp.Body.Close() //nolint: errcheck
		s.Assert().Equal(fiber.StatusOK, resp.StatusCode)
	})
}
