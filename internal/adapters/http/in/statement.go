package in

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	commonHTTP "github.com/ledgercore/ledger-core/common/net/http"
	"github.com/ledgercore/ledger-core/internal/domain/ledger"
	"github.com/ledgercore/ledger-core/internal/domain/money"
	"github.com/ledgercore/ledger-core/internal/ports"
	"github.com/ledgercore/ledger-core/internal/services/query"
)

// QueryHandler serves the two read-only operations: balance and
// statement.
type QueryHandler struct {
	Query *query.Service
}

// GetBalance handles GET /v1/accounts/:account_id/balance.
func (h *QueryHandler) GetBalance(c *fiber.Ctx) error {
	ctx := c.UserContext()

	accountID, err := uuid.Parse(c.Params("account_id"))
	if err != nil {
		return commonHTTP.BadRequest(c, commonHTTP.ValidationKnownFieldsError{
			Code: "0018", Title: "Invalid Account ID", Message: "account_id must be a valid UUID.",
		})
	}

	balance, err := h.Query.GetBalance(ctx, accountID)
	if err != nil {
		return commonHTTP.WithError(c, err)
	}

	return commonHTTP.OK(c, BalanceResponse{AccountID: accountID, Balance: balance})
}

// GetStatement handles GET /v1/accounts/:account_id/statement.
func (h *QueryHandler) GetStatement(c *fiber.Ctx) error {
	ctx := c.UserContext()

	accountID, err := uuid.Parse(c.Params("account_id"))
	if err != nil {
		return commonHTTP.BadRequest(c, commonHTTP.ValidationKnownFieldsError{
			Code: "0018", Title: "Invalid Account ID", Message: "account_id must be a valid UUID.",
		})
	}

	filter, err := parseStatementFilter(c)
	if err != nil {
		return commonHTTP.BadRequest(c, commonHTTP.ValidationKnownFieldsError{
			Code: "0018", Title: "Invalid Statement Filter", Message: err.Error(),
		})
	}

	entries, err := h.Query.GetStatement(ctx, accountID, filter)
	if err != nil {
		return commonHTTP.WithError(c, err)
	}

	out := make([]TransactionResponse, 0, len(entries))
	for _, tx := range entries {
		out = append(out, toTransactionBody(tx))
	}

	return commonHTTP.OK(c, out)
}

// parseStatementFilter reads the date-range/type/amount-range/text-search
// query parameters into a ports.StatementFilter.
func parseStatementFilter(c *fiber.Ctx) (ports.StatementFilter, error) {
	var filter ports.StatementFilter

	if raw := c.Query("from"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filter, err
		}

		filter.From = &t
	}

	if raw := c.Query("to"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filter, err
		}

		filter.To = &t
	}

	if raw := c.Query("op_type"); raw != "" {
		opType := ledger.OperationType(raw)
		filter.OpType = &opType
	}

	if raw := c.Query("min_amount"); raw != "" {
		m, err := money.NewFromString(raw)
		if err != nil {
			return filter, err
		}

		filter.MinAmount = &m
	}

	if raw := c.Query("max_amount"); raw != "" {
		m, err := money.NewFromString(raw)
		if err != nil {
			return filter, err
		}

		filter.MaxAmount = &m
	}

	filter.Search = c.Query("search")
	filter.Cursor = c.Query("cursor")
	filter.Limit = c.QueryInt("limit", 50)

	return filter, nil
}
