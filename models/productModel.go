package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ValidCategories = []string{"men", "women", "watches", "bags", "accessories"}

type Product struct {
	gorm.Model
	Title          string         `json:"title" binding:"required"`
	Price          float64        `json:"price" binding:"required,gt=0"`
	Description    string         `json:"description" binding:"required"`
	Category       string         `json:"category" binding:"required,oneof=men women watches bags accessories"`
	Subcategory    string         `json:"subcategory" binding:"required"`
	Brand          string         `json:"brand" binding:"required"`
	Image          string         `json:"image" binding:"required"`
	Sizes          datatypes.JSON `json:"sizes"`
	AvailableSizes datatypes.JSON `json:"availableSizes"`
	Material       string         `json:"material"`
	Care           string         `json:"care"`
	Stock          int            `json:"stock" gorm:"default:0"`
}
