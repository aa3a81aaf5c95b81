package controllers

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/fashionstore/fashionstore-api/initializers"
	"github.com/fashionstore/fashionstore-api/middlewares"
	"github.com/fashionstore/fashionstore-api/models"
	"github.com/fashionstore/fashionstore-api/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	// Standard response messages
	msgInvalidInput          = "invalid input"
	msgUserAlreadyExists     = "user already exists"
	msgFailedToHashPassword  = "failed to hash password"
	msgInvalidCredentials    = "invalid email or password"
	msgFailedToGenerateToken = "failed to generate token"
	msgInternalServerError   = "Internal server error"
	msgUserNotFound          = "user not found"
)

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"message": message})
}

func generateJWT(user models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(time.Hour * 24 * 30).Unix(),
	})

	jwtSecret := os.Getenv("JWT_SECRET")
	return token.SignedString([]byte(jwtSecret))
}

func checkUserExists(email string) (bool, error) {
	var existingUser models.User
	result := initializers.DB.Where("email = ?", email).Find(&existingUser)
	return result.RowsAffected > 0, result.Error
}

func findUserByEmail(email string) (models.User, error) {
	var user models.User
	result := initializers.DB.Where("email = ?", email).First(&user)
	return user, result.Error
}

// Register handles user registration and issues a token right away.
func Register(ctx *gin.Context) {
	var registerData models.RegisterData
	if err := ctx.ShouldBindJSON(&registerData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	email := models.NormalizeEmail(registerData.Email)

	exists, err := checkUserExists(email)
	if err != nil {
		log.Println("Database error during user check:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	if exists {
		sendErrorResponse(ctx, http.StatusBadRequest, msgUserAlreadyExists)
		return
	}

	hashedPassword, err := utils.HashPassword(registerData.Password)
	if err != nil {
		log.Println("Password hashing error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToHashPassword)
		return
	}

	user := models.User{
		Name:     registerData.Name,
		Email:    email,
		Password: hashedPassword,
		Role:     models.RoleUser,
	}

	if result := initializers.DB.Create(&user); result.Error != nil {
		log.Println("User creation error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	tokenString, err := generateJWT(user)
	if err != nil {
		log.Println("JWT generation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToGenerateToken)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"success": true,
		"token":   tokenString,
		"user":    user,
	})
}

// Login handles user authentication
func Login(ctx *gin.Context) {
	var loginData models.LoginData
	if err := ctx.ShouldBindJSON(&loginData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	user, err := findUserByEmail(models.NormalizeEmail(loginData.Email))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidCredentials)
		return
	}

	if err := utils.ComparePasswords(user.Password, loginData.Password); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidCredentials)
		return
	}

	tokenString, err := generateJWT(user)
	if err != nil {
		log.Println("JWT generation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToGenerateToken)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success": true,
		"token":   tokenString,
		"user":    user,
	})
}

// GetCurrentUser returns the authenticated user's profile.
func GetCurrentUser(ctx *gin.Context) {
	userID, ok := middlewares.AuthUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	var user models.User
	if result := initializers.DB.First(&user, userID); result.Error != nil {
		sendErrorResponse(ctx, http.StatusNotFound, msgUserNotFound)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"user": user})
}

// UpdateProfile updates name, email and optionally the password of the
// authenticated user.
func UpdateProfile(ctx *gin.Context) {
	type ProfileData struct {
		Name     string `json:"name"`
		Email    string `json:"email" binding:"omitempty,email"`
		Password string `json:"password" binding:"omitempty,min=6"`
	}

	var profileData ProfileData
	if err := ctx.ShouldBindJSON(&profileData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	userID, ok := middlewares.AuthUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	var user models.User
	if result := initializers.DB.First(&user, userID); result.Error != nil {
		sendErrorResponse(ctx, http.StatusNotFound, msgUserNotFound)
		return
	}

	if profileData.Name != "" {
		user.Name = profileData.Name
	}
	if profileData.Email != "" {
		email := models.NormalizeEmail(profileData.Email)
		if email != user.Email {
			exists, err := checkUserExists(email)
			if err != nil {
				log.Println("Database error during user check:", err)
				sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
				return
			}
			if exists {
				sendErrorResponse(ctx, http.StatusBadRequest, msgUserAlreadyExists)
				return
			}
			user.Email = email
		}
	}
	if profileData.Password != "" {
		hashedPassword, err := utils.HashPassword(profileData.Password)
		if err != nil {
			log.Println("Password hashing error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToHashPassword)
			return
		}
		user.Password = hashedPassword
	}

	if result := initializers.DB.Save(&user); result.Error != nil {
		log.Println("Profile update error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"user": user})
}
