package routes

import (
	"errors"
	"fmt"

	"booking-clone-server/storage"
	"booking-clone-server/utils"

	"github.com/kataras/iris/v12"
)

const maxUploadMemory = 32 << 20

// UploadByLink fetches a remote image and stores it through the configured
// backend. The temporary copy never outlives the request.
func UploadByLink(ctx iris.Context) {
	var input UploadByLinkInput
	err := ctx.ReadJSON(&input)
	if err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	url, storeErr := storage.Uploads.StoreLink(ctx.Request().Context(), input.Link)
	if storeErr != nil {
		if errors.Is(storeErr, storage.ErrFetchLink) {
			utils.CreateError(iris.StatusUnprocessableEntity, utils.ErrKindValidation,
				storeErr.Error(), ctx)
			return
		}
		utils.CreateError(iris.StatusInternalServerError, utils.ErrKindUpstream,
			"storing the image failed", ctx)
		return
	}

	ctx.JSON(url)
}

// UploadPhotos stores each multipart "photos" file in order. A mid-batch
// failure reports the file that failed together with the URLs already
// stored instead of discarding the whole result.
func UploadPhotos(ctx iris.Context) {
	if err := ctx.Request().ParseMultipartForm(maxUploadMemory); err != nil {
		utils.CreateError(iris.StatusUnprocessableEntity, utils.ErrKindValidation,
			"invalid multipart form", ctx)
		return
	}

	files := ctx.Request().MultipartForm.File["photos"]
	if len(files) == 0 {
		utils.CreateError(iris.StatusUnprocessableEntity, utils.ErrKindValidation,
			"no photos in request", ctx)
		return
	}

	urls := make([]string, 0, len(files))
	for _, file := range files {
		url, err := storage.Uploads.StoreFile(ctx.Request().Context(), file)
		if err != nil {
			ctx.StopWithJSON(iris.StatusInternalServerError, iris.Map{
				"error":    utils.ErrKindUpstream,
				"message":  fmt.Sprintf("storing %q failed", file.Filename),
				"uploaded": urls,
			})
			return
		}
		urls = append(urls, url)
	}

	ctx.JSON(urls)
}

type UploadByLinkInput struct {
	Link string `json:"link" validate:"required,url"`
}
