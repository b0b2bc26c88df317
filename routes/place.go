package routes

import (
	"encoding/json"
	"errors"

	"booking-clone-server/models"
	"booking-clone-server/storage"
	"booking-clone-server/utils"

	"github.com/kataras/iris/v12"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func CreatePlace(ctx iris.Context) {
	claims := utils.SessionClaims(ctx)

	var input UpsertPlaceInput
	err := ctx.ReadJSON(&input)
	if err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	place := models.Place{
		OwnerID:     claims.ID,
		Title:       input.Title,
		Address:     input.Address,
		Photos:      toJSONArray(input.AddedPhotos),
		Description: input.Description,
		Perks:       toJSONArray(input.Perks),
		ExtraInfo:   input.ExtraInfo,
		CheckIn:     input.CheckIn,
		CheckOut:    input.CheckOut,
		MaxGuests:   input.MaxGuests,
		Price:       input.Price,
	}

	if err := storage.DB.WithContext(ctx.Request().Context()).Create(&place).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	storage.InvalidatePlacesFeed(ctx.Request().Context())
	ctx.JSON(&place)
}

// UpdatePlace rejects an ownership mismatch with an explicit 403 rather
// than silently dropping the write.
func UpdatePlace(ctx iris.Context) {
	claims := utils.SessionClaims(ctx)

	var input UpsertPlaceInput
	err := ctx.ReadJSON(&input)
	if err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}
	if input.ID == 0 {
		utils.CreateError(iris.StatusUnprocessableEntity, utils.ErrKindValidation, "place id is required", ctx)
		return
	}

	var place models.Place
	result := storage.DB.WithContext(ctx.Request().Context()).First(&place, input.ID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			utils.CreateNotFound(ctx)
			return
		}
		utils.CreateInternalServerError(ctx)
		return
	}

	if place.OwnerID != claims.ID {
		utils.CreateForbidden(ctx)
		return
	}

	place.Title = input.Title
	place.Address = input.Address
	place.Photos = toJSONArray(input.AddedPhotos)
	place.Description = input.Description
	place.Perks = toJSONArray(input.Perks)
	place.ExtraInfo = input.ExtraInfo
	place.CheckIn = input.CheckIn
	place.CheckOut = input.CheckOut
	place.MaxGuests = input.MaxGuests
	place.Price = input.Price

	if err := storage.DB.WithContext(ctx.Request().Context()).Save(&place).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	storage.InvalidatePlacesFeed(ctx.Request().Context())
	ctx.JSON(&place)
}

// GetPlaces returns the public feed of every listing, served from the
// Redis cache when fresh.
func GetPlaces(ctx iris.Context) {
	reqCtx := ctx.Request().Context()

	if payload, ok := storage.CachedPlacesFeed(reqCtx); ok {
		ctx.ContentType("application/json")
		ctx.Write(payload)
		return
	}

	var places []models.Place
	if err := storage.DB.WithContext(reqCtx).Find(&places).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	if payload, err := json.Marshal(places); err == nil {
		storage.CachePlacesFeed(reqCtx, payload)
	}

	ctx.JSON(places)
}

func GetPlace(ctx iris.Context) {
	id := ctx.Params().Get("id")

	var place models.Place
	result := storage.DB.WithContext(ctx.Request().Context()).First(&place, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			utils.CreateNotFound(ctx)
			return
		}
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(&place)
}

func GetUserPlaces(ctx iris.Context) {
	claims := utils.SessionClaims(ctx)

	var places []models.Place
	if err := storage.DB.WithContext(ctx.Request().Context()).
		Where("owner_id = ?", claims.ID).Find(&places).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(places)
}

// toJSONArray stores string slices as JSON columns, never null.
func toJSONArray(values []string) datatypes.JSON {
	if values == nil {
		values = []string{}
	}
	payload, _ := json.Marshal(values)
	return datatypes.JSON(payload)
}

type UpsertPlaceInput struct {
	ID          uint     `json:"id"`
	Title       string   `json:"title" validate:"required,max=256"`
	Address     string   `json:"address" validate:"required,max=512"`
	AddedPhotos []string `json:"addedPhotos"`
	Description string   `json:"description"`
	Perks       []string `json:"perks"`
	ExtraInfo   string   `json:"extraInfo"`
	CheckIn     string   `json:"checkIn"`
	CheckOut    string   `json:"checkOut"`
	MaxGuests   int      `json:"maxGuests" validate:"required,min=1"`
	Price       float32  `json:"price" validate:"min=0"`
}
