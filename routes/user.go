package routes

import (
	"context"
	"errors"
	"strings"

	"booking-clone-server/models"
	"booking-clone-server/storage"
	"booking-clone-server/utils"

	"github.com/kataras/iris/v12"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func Register(ctx iris.Context) {
	var input RegisterInput
	err := ctx.ReadJSON(&input)
	if err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if !utils.ValidateName(input.Name) {
		utils.CreateError(iris.StatusUnprocessableEntity, utils.ErrKindValidation,
			"name must be at least two characters (letters, spaces and hyphens only)", ctx)
		return
	}
	if !utils.ValidatePassword(input.Password) {
		utils.CreateError(iris.StatusUnprocessableEntity, utils.ErrKindValidation,
			"password must be at least 8 characters and contain upper case, lower case and a digit", ctx)
		return
	}

	var existing models.User
	userExists, userExistsErr := getAndHandleUserExists(ctx.Request().Context(), &existing, input.Email)
	if userExistsErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if userExists {
		utils.CreateError(iris.StatusConflict, utils.ErrKindValidation, "email already registered", ctx)
		return
	}

	hashedPassword, hashErr := hashAndSaltPassword(input.Password)
	if hashErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	newUser := models.User{
		Name:     input.Name,
		Email:    strings.ToLower(input.Email),
		Password: hashedPassword,
	}
	if err := storage.DB.WithContext(ctx.Request().Context()).Create(&newUser).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(&newUser)
}

func Login(ctx iris.Context) {
	var input LoginInput
	err := ctx.ReadJSON(&input)
	if err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var user models.User
	userExists, userExistsErr := getAndHandleUserExists(ctx.Request().Context(), &user, input.Email)
	if userExistsErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if !userExists {
		utils.CreateError(iris.StatusNotFound, utils.ErrKindNotFound, "user not found", ctx)
		return
	}

	passwordErr := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password))
	if passwordErr != nil {
		utils.CreateError(iris.StatusUnprocessableEntity, utils.ErrKindCredentials, "pass not ok", ctx)
		return
	}

	token, tokenErr := utils.IssueSessionToken(user.ID, user.Email)
	if tokenErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.SetCookieKV(utils.SessionCookieName, token,
		iris.CookieHTTPOnly(true),
		iris.CookiePath("/"),
	)
	ctx.JSON(&user)
}

// Profile treats a missing cookie as "no session" and answers null; only a
// present-but-forged token is an error.
func Profile(ctx iris.Context) {
	raw := ctx.GetCookie(utils.SessionCookieName)
	if raw == "" {
		ctx.JSON(nil)
		return
	}

	claims, err := utils.VerifySessionToken(raw)
	if err != nil {
		utils.CreateError(iris.StatusUnauthorized, utils.ErrKindAuthentication, "invalid session token", ctx)
		return
	}

	var user models.User
	result := storage.DB.WithContext(ctx.Request().Context()).First(&user, claims.ID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			utils.CreateNotFound(ctx)
			return
		}
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{
		"name":  user.Name,
		"email": user.Email,
		"_id":   user.ID,
	})
}

func Logout(ctx iris.Context) {
	ctx.RemoveCookie(utils.SessionCookieName)
	ctx.JSON(true)
}

func getAndHandleUserExists(reqCtx context.Context, user *models.User, email string) (exists bool, err error) {
	userExistsQuery := storage.DB.WithContext(reqCtx).Where("email = ?", strings.ToLower(email)).Limit(1).Find(user)

	if userExistsQuery.Error != nil {
		return false, userExistsQuery.Error
	}

	return userExistsQuery.RowsAffected > 0, nil
}

func hashAndSaltPassword(password string) (hashedPassword string, err error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(bytes), nil
}

type RegisterInput struct {
	Name     string `json:"name" validate:"required,max=256"`
	Email    string `json:"email" validate:"required,max=256,email"`
	Password string `json:"password" validate:"required,max=256"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
