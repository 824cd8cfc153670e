package handler

import (
	"net/http"
	"strconv"

	"github.com/syukranDev/mytrackerwallet-v2/internal/dashboard"
	"github.com/syukranDev/mytrackerwallet-v2/internal/util"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

// transactionPageSize is fixed; the client cannot change it.
const transactionPageSize = 10

// TransactionHandler serves the merged, paginated transaction history.
// It reads through the same store interface as the dashboard so both
// surfaces tag and order records identically.
type TransactionHandler struct {
	Store dashboard.Store
}

func NewTransactionHandler(store dashboard.Store) *TransactionHandler {
	return &TransactionHandler{Store: store}
}

func (h *TransactionHandler) GetAllTransactions(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "Not authorized")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	var incomes, expenses []dashboard.Transaction
	g, gctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() (err error) {
		incomes, err = h.Store.FindTransactions(gctx, user.ID, dashboard.KindIncome, 0)
		return err
	})
	g.Go(func() (err error) {
		expenses, err = h.Store.FindTransactions(gctx, user.ID, dashboard.KindExpense, 0)
		return err
	})
	if err := g.Wait(); err != nil {
		util.ServerError(c, err)
		return
	}

	merged := dashboard.MergeByDate(incomes, expenses)

	totalCount := len(merged)
	totalPages := (totalCount + transactionPageSize - 1) / transactionPageSize

	offset := (page - 1) * transactionPageSize
	if offset > totalCount {
		offset = totalCount
	}
	end := offset + transactionPageSize
	if end > totalCount {
		end = totalCount
	}

	c.JSON(http.StatusOK, gin.H{
		"transactions": merged[offset:end],
		"pagination": gin.H{
			"currentPage": page,
			"totalPages":  totalPages,
			"totalCount":  totalCount,
			"limit":       transactionPageSize,
			"hasNextPage": page < totalPages,
			"hasPrevPage": page > 1,
		},
	})
}
