package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/syukranDev/mytrackerwallet-v2/internal/models"
	"github.com/syukranDev/mytrackerwallet-v2/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DestinationHandler serves the income destination CRUD surface. A
// destination cannot be renamed or deleted while any income `to` or
// expense `source` still references its current name; the dashboard
// reconciler depends on that rule being enforced here.
type DestinationHandler struct {
	DB *gorm.DB
}

func NewDestinationHandler(db *gorm.DB) *DestinationHandler {
	return &DestinationHandler{DB: db}
}

func (h *DestinationHandler) GetAllDestinations(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "Not authorized")
		return
	}

	var destinations []models.IncomeDestination
	if err := h.DB.Where("user_id = ?", user.ID).
		Order("name ASC").
		Find(&destinations).Error; err != nil {
		util.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"destinations": destinations})
}

type destinationReq struct {
	Name string `json:"name" binding:"required"`
}

func (h *DestinationHandler) AddDestination(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "Not authorized")
		return
	}

	var req destinationReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		util.Error(c, http.StatusBadRequest, "Destination name is required")
		return
	}
	name := strings.TrimSpace(req.Name)

	var count int64
	if err := h.DB.Model(&models.IncomeDestination{}).
		Where("user_id = ? AND name = ?", user.ID, name).
		Count(&count).Error; err != nil {
		util.ServerError(c, err)
		return
	}
	if count > 0 {
		util.Error(c, http.StatusBadRequest, "Destination already exists")
		return
	}

	destination := models.IncomeDestination{
		UserID: user.ID,
		Name:   name,
	}
	if err := h.DB.Create(&destination).Error; err != nil {
		util.ServerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"destination": destination})
}

func (h *DestinationHandler) UpdateDestination(c *gin.Context) {
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

	var req destinationReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		util.Error(c, http.StatusBadRequest, "Destination name is required")
		return
	}
	newName := strings.TrimSpace(req.Name)

	var destination models.IncomeDestination
	if err := h.DB.Where("id = ? AND user_id = ?", id, user.ID).
		First(&destination).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, "Destination not found")
		} else {
			util.ServerError(c, err)
		}
		return
	}

	if destination.Name == newName {
		c.JSON(http.StatusOK, gin.H{"destination": destination})
		return
	}

	if msg, blocked, err := h.referenceMessage(user.ID, destination.Name, "edit"); err != nil {
		util.ServerError(c, err)
		return
	} else if blocked {
		util.Error(c, http.StatusBadRequest, msg)
		return
	}

	var count int64
	if err := h.DB.Model(&models.IncomeDestination{}).
		Where("user_id = ? AND name = ? AND id <> ?", user.ID, newName, destination.ID).
		Count(&count).Error; err != nil {
		util.ServerError(c, err)
		return
	}
	if count > 0 {
		util.Error(c, http.StatusBadRequest, "Destination name already exists")
		return
	}

	destination.Name = newName
	if err := h.DB.Save(&destination).Error; err != nil {
		util.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"destination": destination})
}

func (h *DestinationHandler) DeleteDestination(c *gin.Context) {
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

	var destination models.IncomeDestination
	if err := h.DB.Where("id = ? AND user_id = ?", id, user.ID).
		First(&destination).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, "Destination not found")
		} else {
			util.ServerError(c, err)
		}
		return
	}

	if msg, blocked, err := h.referenceMessage(user.ID, destination.Name, "delete"); err != nil {
		util.ServerError(c, err)
		return
	} else if blocked {
		util.Error(c, http.StatusBadRequest, msg)
		return
	}

	if err := h.DB.Delete(&destination).Error; err != nil {
		util.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Destination deleted successfully"})
}

// referenceMessage counts the transactions still referencing the
// destination name and, when any exist, builds the rejection message
// reporting them.
func (h *DestinationHandler) referenceMessage(userID, name, action string) (string, bool, error) {
	var incomeCount int64
	if err := h.DB.Model(&models.Income{}).
		Where(map[string]interface{}{"user_id": userID, "to": name}).
		Count(&incomeCount).Error; err != nil {
		return "", false, fmt.Errorf("count income references: %w", err)
	}

	var expenseCount int64
	if err := h.DB.Model(&models.Expense{}).
		Where("user_id = ? AND source = ?", userID, name).
		Count(&expenseCount).Error; err != nil {
		return "", false, fmt.Errorf("count expense references: %w", err)
	}

	if incomeCount == 0 && expenseCount == 0 {
		return "", false, nil
	}

	var usedIn []string
	if incomeCount > 0 {
		usedIn = append(usedIn, fmt.Sprintf("%d income transaction(s)", incomeCount))
	}
	if expenseCount > 0 {
		usedIn = append(usedIn, fmt.Sprintf("%d expense transaction(s)", expenseCount))
	}

	msg := fmt.Sprintf("Cannot %s destination %q because it is being used in %s. Please delete or update those transactions first.",
		action, name, strings.Join(usedIn, " and "))
	return msg, true, nil
}
