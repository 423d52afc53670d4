// controllers/user.go
package controllers

import (
	"net/http"
	"strconv"
	"time"

	"sikap-api/config"
	"sikap-api/models"
	"sikap-api/utils"

	"github.com/gin-gonic/gin"
)

// ===== USER MANAGEMENT (admin) =====

// GetUsers returns dashboard accounts.
func GetUsers(c *gin.Context) {
	var users []models.User
	if err := config.DB.Preload("Role").
		Where("delete_at IS NULL").
		Order("full_name ASC").
		Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"users":   users,
		"total":   len(users),
	})
}

// CreateUser creates a dashboard account.
func CreateUser(c *gin.Context) {
	type createUserRequest struct {
		FullName string  `json:"full_name" binding:"required"`
		Email    string  `json:"email" binding:"required,email"`
		Password string  `json:"password" binding:"required,min=8"`
		RoleID   int     `json:"role_id" binding:"required"`
		Phone    *string `json:"phone"`
	}

	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if ok, message := utils.ValidatePassword(req.Password); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": message})
		return
	}

	var existing int64
	config.DB.Model(&models.User{}).
		Where("email = ? AND delete_at IS NULL", req.Email).
		Count(&existing)
	if existing > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
		return
	}

	hashedPassword, err := HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	now := time.Now()
	user := models.User{
		FullName: req.FullName,
		Email:    req.Email,
		Password: hashedPassword,
		RoleID:   req.RoleID,
		Phone:    req.Phone,
		IsActive: true,
		CreateAt: &now,
		UpdateAt: &now,
	}

	if err := config.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    user,
		"message": "User created successfully",
	})
}

// UpdateUser updates account details (not the password; see ChangePassword).
func UpdateUser(c *gin.Context) {
	userID := c.Param("id")

	var user models.User
	if err := config.DB.Where("user_id = ? AND delete_at IS NULL", userID).
		First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	type updateUserRequest struct {
		FullName *string `json:"full_name"`
		RoleID   *int    `json:"role_id"`
		Phone    *string `json:"phone"`
		IsActive *bool   `json:"is_active"`
	}

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.RoleID != nil {
		user.RoleID = *req.RoleID
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	now := time.Now()
	user.UpdateAt = &now

	if err := config.DB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    user,
		"message": "User updated successfully",
	})
}

// DeleteUser soft deletes an account.
func DeleteUser(c *gin.Context) {
	userID := c.Param("id")

	currentUserID, _ := c.Get("userID")
	if id, ok := currentUserID.(int); ok && userID == strconv.Itoa(id) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot delete your own account"})
		return
	}

	var user models.User
	if err := config.DB.Where("user_id = ? AND delete_at IS NULL", userID).
		First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	now := time.Now()
	user.DeleteAt = &now

	if err := config.DB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User deleted successfully",
	})
}
