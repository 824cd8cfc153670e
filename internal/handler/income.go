package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/syukranDev/mytrackerwallet-v2/internal/models"
	"github.com/syukranDev/mytrackerwallet-v2/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// IncomeHandler serves the income CRUD surface.
type IncomeHandler struct {
	DB *gorm.DB
}

func NewIncomeHandler(db *gorm.DB) *IncomeHandler {
	return &IncomeHandler{DB: db}
}

type addIncomeReq struct {
	Icon   string          `json:"icon" binding:"required"`
	Amount decimal.Decimal `json:"amount" binding:"required"`
	Source string          `json:"source" binding:"required"`
	To     string          `json:"to"`
}

func (h *IncomeHandler) AddIncome(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "Not authorized")
		return
	}

	var req addIncomeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "All fields are required")
		return
	}
	if err := util.ValidateAmount(req.Amount); err != nil {
		util.Error(c, http.StatusBadRequest, "Invalid amount")
		return
	}

	income := models.Income{
		UserID: user.ID,
		Icon:   req.Icon,
		Amount: req.Amount,
		Source: strings.TrimSpace(req.Source),
		To:     strings.TrimSpace(req.To),
	}
	if err := h.DB.Create(&income).Error; err != nil {
		util.ServerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"income": income})
}

func (h *IncomeHandler) GetAllIncome(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "Not authorized")
		return
	}

	var incomes []models.Income
	if err := h.DB.Where("user_id = ?", user.ID).
		Order("created_at DESC, id DESC").
		Find(&incomes).Error; err != nil {
		util.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"incomes": incomes})
}

func (h *IncomeHandler) DeleteIncome(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "Not authorized")
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, "Invalid id")
		return
	}

	res := h.DB.Where("id = ? AND user_id = ?", id, user.ID).Delete(&models.Income{})
	if res.Error != nil {
		util.ServerError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		util.Error(c, http.StatusNotFound, "Income not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Income deleted successfully"})
}

// DownloadIncomeExcel streams the full income history as an xlsx
// workbook.
func (h *IncomeHandler) DownloadIncomeExcel(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "Not authorized")
		return
	}

	var incomes []models.Income
	if err := h.DB.Where("user_id = ?", user.ID).
		Order("created_at DESC, id DESC").
		Find(&incomes).Error; err != nil {
		util.ServerError(c, err)
		return
	}

	f := excelize.NewFile()
	sheetName := "Incomes"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		util.ServerError(c, err)
		return
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"Icon", "Amount", "Source", "To", "Created At", "Updated At"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}

	for idx, in := range incomes {
		row := idx + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), in.Icon)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), in.Amount.String())
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), in.Source)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), in.To)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), in.CreatedAt.Format("2006-01-02 15:04:05"))
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), in.UpdatedAt.Format("2006-01-02 15:04:05"))
	}

	f.SetColWidth(sheetName, "A", "A", 8)
	f.SetColWidth(sheetName, "B", "B", 12)
	f.SetColWidth(sheetName, "C", "D", 20)
	f.SetColWidth(sheetName, "E", "F", 20)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"incomes_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		util.ServerError(c, err)
	}
}
