package db

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/taskboard-io/taskboard/internal/models"
)

// CreateUser registers a new responsible party.
func CreateUser(name, role string) (*models.User, error) {
	if name == "" {
		return nil, fmt.Errorf("user name is required")
	}

	user := models.User{Name: name, Role: role}
	if err := DB.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByID retrieves a user by ID. Returns nil without error when the
// user does not exist.
func GetUserByID(id uint) (*models.User, error) {
	var user models.User
	err := DB.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUsers returns all users ordered by ID.
func GetUsers() ([]models.User, error) {
	var users []models.User
	if err := DB.Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// DeleteUser removes a user and clears the responsible reference on every
// task they owned. Returns whether the user existed.
func DeleteUser(id uint) (bool, error) {
	res := DB.Delete(&models.User{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, nil
	}

	if _, err := ClearResponsibleUser(id); err != nil {
		return false, err
	}
	return true, nil
}
