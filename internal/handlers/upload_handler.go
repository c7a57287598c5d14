package handlers

import (
	"io"
	"log"
	"strings"

	"github.com/PhotofineColorLab/Sarathi/pkg/imagehost"

	"github.com/gofiber/fiber/v2"
)

// maxImageSize caps proxied uploads at 2 MiB.
const maxImageSize = 2 * 1024 * 1024

// UploadHandler proxies image uploads to the third-party image host.
type UploadHandler struct {
	client *imagehost.Client
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(client *imagehost.Client) *UploadHandler {
	return &UploadHandler{
		client: client,
	}
}

// RegisterRoutes registers the upload routes with the Fiber app.
func (h *UploadHandler) RegisterRoutes(router fiber.Router) {
	uploadRoutes := router.Group("/upload")
	uploadRoutes.Post("/image", h.HandleUploadImage)
	uploadRoutes.Delete("/image/:publicId", h.HandleDeleteImage)
}

// HandleUploadImage accepts a multipart field named "image" and forwards
// it to the image host. Rejected outright when the field is absent, the
// content type is not an image type, or the payload exceeds 2 MiB.
func (h *UploadHandler) HandleUploadImage(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "No image file uploaded",
		})
	}

	if !strings.HasPrefix(fileHeader.Header.Get("Content-Type"), "image") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "File must be an image",
		})
	}

	if fileHeader.Size > maxImageSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Image size must be less than 2MB",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("Error opening uploaded file: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to read uploaded image",
		})
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Printf("Error reading uploaded file: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to read uploaded image",
		})
	}

	result, err := h.client.Upload(c.UserContext(), fileHeader.Filename, data)
	if err != nil {
		log.Printf("Error uploading image to host: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to upload image",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Image uploaded successfully",
		"data": fiber.Map{
			"imageUrl": result.URL,
			"publicId": result.PublicID,
		},
	})
}

// HandleDeleteImage removes a previously uploaded image by its provider
// identifier.
func (h *UploadHandler) HandleDeleteImage(c *fiber.Ctx) error {
	publicID := c.Params("publicId")
	if publicID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Public ID is required",
		})
	}

	if err := h.client.Delete(c.UserContext(), publicID); err != nil {
		log.Printf("Error deleting image %s: %v", publicID, err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Failed to delete image",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Image deleted successfully",
	})
}
