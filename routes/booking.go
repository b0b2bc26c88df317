package routes

import (
	"time"

	"booking-clone-server/models"
	"booking-clone-server/storage"
	"booking-clone-server/utils"

	"github.com/kataras/iris/v12"
)

func CreateBooking(ctx iris.Context) {
	claims := utils.SessionClaims(ctx)

	var input CreateBookingInput
	err := ctx.ReadJSON(&input)
	if err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if !utils.ValidateDate(input.CheckIn) || !utils.ValidateDate(input.CheckOut) {
		utils.CreateError(iris.StatusUnprocessableEntity, utils.ErrKindValidation,
			"checkIn and checkOut must be ISO dates (YYYY-MM-DD)", ctx)
		return
	}
	if !utils.ValidateName(input.Name) {
		utils.CreateError(iris.StatusUnprocessableEntity, utils.ErrKindValidation,
			"contact name must be at least two characters (letters, spaces and hyphens only)", ctx)
		return
	}
	if !utils.ValidatePhone(input.Phone) {
		utils.CreateError(iris.StatusUnprocessableEntity, utils.ErrKindValidation,
			"phone may only contain digits, spaces, parentheses and hyphens", ctx)
		return
	}

	checkIn, _ := time.Parse("2006-01-02", input.CheckIn)
	checkOut, _ := time.Parse("2006-01-02", input.CheckOut)
	if !checkOut.After(checkIn) {
		utils.CreateError(iris.StatusUnprocessableEntity, utils.ErrKindValidation,
			"checkOut must be after checkIn", ctx)
		return
	}

	var place models.Place
	placeQuery := storage.DB.WithContext(ctx.Request().Context()).Limit(1).Find(&place, input.Place)
	if placeQuery.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if placeQuery.RowsAffected == 0 {
		utils.CreateError(iris.StatusUnprocessableEntity, utils.ErrKindValidation, "unknown place", ctx)
		return
	}

	booking := models.Booking{
		PlaceID:        place.ID,
		UserID:         claims.ID,
		CheckIn:        checkIn,
		CheckOut:       checkOut,
		NumberOfGuests: input.NumberOfGuests,
		Name:           input.Name,
		Phone:          input.Phone,
		Price:          input.Price,
	}
	if err := storage.DB.WithContext(ctx.Request().Context()).Create(&booking).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(&booking)
}

// GetBookings lists the caller's bookings, each with its place expanded.
func GetBookings(ctx iris.Context) {
	claims := utils.SessionClaims(ctx)

	var bookings []models.Booking
	if err := storage.DB.WithContext(ctx.Request().Context()).
		Preload("Place").
		Where("user_id = ?", claims.ID).
		Find(&bookings).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(bookings)
}

type CreateBookingInput struct {
	Place          uint    `json:"place" validate:"required"`
	CheckIn        string  `json:"checkIn" validate:"required"`
	CheckOut       string  `json:"checkOut" validate:"required"`
	NumberOfGuests int     `json:"numberOfGuests" validate:"required,min=1"`
	Name           string  `json:"name" validate:"required,max=256"`
	Phone          string  `json:"phone" validate:"required,max=32"`
	Price          float32 `json:"price" validate:"min=0"`
}
