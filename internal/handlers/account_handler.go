package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"budgetapi/internal/services"
)

// AccountHandler handles account-related requests
type AccountHandler struct {
	accountService services.AccountServicer
}

// NewAccountHandler creates a new AccountHandler
func NewAccountHandler(accountService services.AccountServicer) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// CreateAccountRequest represents the request payload for creating an account
type CreateAccountRequest struct {
	Name    string           `json:"name" binding:"required" example:"Cash"`
	Type    string           `json:"type" binding:"required" example:"cash"`
	Balance *decimal.Decimal `json:"balance" swaggertype:"number" example:"0"`
	Icon    string           `json:"icon" example:"Wallet"`
	Color   string           `json:"color" example:"from-slate-400 to-slate-600"`
}

// ListAccounts returns every account
// @Summary     List accounts
// @Description Get all accounts ordered by id
// @Tags        accounts
// @Produce     json
// @Success     200 {array}  models.Account "Accounts"
// @Failure     500 {object} ErrorResponse  "Server error"
// @Router      /accounts [get]
func (h *AccountHandler) ListAccounts(c *gin.Context) {
	accounts, err := h.accountService.ListAccounts(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, accounts)
}

// CreateAccount handles the creation of a new account
// @Summary     Create an account
// @Description Create an account; balance defaults to 0, icon to "Wallet" and color to a slate gradient
// @Tags        accounts
// @Accept      json
// @Produce     json
// @Param       request body CreateAccountRequest true "Account details"
// @Success     201 {object} models.Account "Account created"
// @Failure     400 {object} ErrorResponse  "Invalid input (typed error mode)"
// @Failure     500 {object} ErrorResponse  "Server error"
// @Router      /accounts [post]
func (h *AccountHandler) CreateAccount(c *gin.Context) {
	var req CreateAccountRequest
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	balance := decimal.Zero
	if req.Balance != nil {
		balance = *req.Balance
	}

	account, err := h.accountService.CreateAccount(c.Request.Context(), req.Name, req.Type, balance, req.Icon, req.Color)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, account)
}
